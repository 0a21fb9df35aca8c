package persistence_test

import (
	"errors"
	"testing"

	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"github.com/jackyeh168/ecommerce/src/internal/infrastructure/persistence"
	customerpersistence "github.com/jackyeh168/ecommerce/src/internal/infrastructure/persistence/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ===========================
// TransactionManager Integration Tests
// ===========================
//
// 驗證 TransactionManager 的核心保證：
// 1. 錯誤時回滾，成功時提交
// 2. panic 時回滾並重新拋出
// 3. 多個操作在同一事務中原子提交

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := persistence.Open(":memory:", logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = persistence.Close(db) })

	require.NoError(t, customerpersistence.Migrate(db))
	return db
}

func newCustomer(t *testing.T, id string) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, "Customer "+id)
	require.NoError(t, err)
	return c
}

// TestRollbackOnError_DoesNotCommit fn 返回錯誤時回滾
func TestRollbackOnError_DoesNotCommit(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := customerpersistence.NewCustomerRepository(db)

	// Act
	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		require.NoError(t, repo.Create(ctx, newCustomer(t, "123")))
		return errors.New("simulated error - trigger rollback")
	})

	// Assert
	require.Error(t, err)
	assert.Equal(t, "simulated error - trigger rollback", err.Error())

	_, err = repo.Find(nil, "123")
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound, "customer should not exist after rollback")
}

// TestCommitOnSuccess_SavesData fn 返回 nil 時提交
func TestCommitOnSuccess_SavesData(t *testing.T) {
	db := setupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := customerpersistence.NewCustomerRepository(db)

	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return repo.Create(ctx, newCustomer(t, "123"))
	})

	require.NoError(t, err)
	found, err := repo.Find(nil, "123")
	require.NoError(t, err, "customer should exist after commit")
	assert.Equal(t, "Customer 123", found.Name())
}

// TestPanicRecovery_RollsBackAndRepanics panic 時回滾並重新拋出
func TestPanicRecovery_RollsBackAndRepanics(t *testing.T) {
	db := setupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := customerpersistence.NewCustomerRepository(db)

	assert.PanicsWithValue(t, "simulated panic - should rollback", func() {
		_ = txManager.InTransaction(func(ctx shared.TransactionContext) error {
			require.NoError(t, repo.Create(ctx, newCustomer(t, "123")))
			panic("simulated panic - should rollback")
		})
	})

	_, err := repo.Find(nil, "123")
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound, "customer should not exist after panic rollback")
}

// TestMultipleOperations_AtomicRollback 多個操作一起回滾
func TestMultipleOperations_AtomicRollback(t *testing.T) {
	db := setupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := customerpersistence.NewCustomerRepository(db)

	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if err := repo.Create(ctx, newCustomer(t, "1")); err != nil {
			return err
		}
		if err := repo.Create(ctx, newCustomer(t, "2")); err != nil {
			return err
		}
		return errors.New("second operation failed")
	})

	require.Error(t, err)
	all, err := repo.FindAll(nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}

// TestMultipleOperations_AtomicCommit 多個操作一起提交
func TestMultipleOperations_AtomicCommit(t *testing.T) {
	db := setupTestDB(t)
	txManager := persistence.NewGORMTransactionManager(db)
	repo := customerpersistence.NewCustomerRepository(db)

	err := txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if err := repo.Create(ctx, newCustomer(t, "1")); err != nil {
			return err
		}
		return repo.Create(ctx, newCustomer(t, "2"))
	})

	require.NoError(t, err)
	all, err := repo.FindAll(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// TestDB_FallsBackWithoutGORMContext nil 或非 GORM 上下文使用預設 DB
func TestDB_FallsBackWithoutGORMContext(t *testing.T) {
	db := setupTestDB(t)
	tx := db.Session(&gorm.Session{})

	assert.Same(t, db, persistence.DB(nil, db))
	assert.Same(t, tx, persistence.DB(persistence.NewGORMTransactionContext(tx), db))

	var other struct{ shared.TransactionContext }
	assert.Same(t, db, persistence.DB(other, db))
}

// TestIsMemoryDSN
func TestIsMemoryDSN(t *testing.T) {
	assert.True(t, persistence.IsMemoryDSN(":memory:"))
	assert.True(t, persistence.IsMemoryDSN("file::memory:?cache=shared"))
	assert.True(t, persistence.IsMemoryDSN("file:test?mode=memory&cache=shared"))
	assert.False(t, persistence.IsMemoryDSN("shop.db"))
}
