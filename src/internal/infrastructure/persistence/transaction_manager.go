package persistence

import (
	"fmt"

	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionManager 實作
// ===========================

// GORMTransactionManager 以 GORM 實作 shared.TransactionManager
//
// 行為：
// - fn 返回 nil → Commit
// - fn 返回錯誤 → Rollback，原樣返回 fn 的錯誤
// - fn panic → Rollback 後重新 panic
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在單一資料庫事務中執行 fn
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) (err error) {
	tx := m.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(NewGORMTransactionContext(tx)); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
