package checkout

import (
	"errors"

	"github.com/jackyeh168/ecommerce/src/internal/domain/checkout"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"github.com/jackyeh168/ecommerce/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// ===========================
// OrderRepositoryImpl
// ===========================

// OrderRepositoryImpl 訂單倉儲實現（GORM）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 創建新的訂單倉儲實例
func NewOrderRepository(db *gorm.DB) checkout.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 新增訂單與其項目
func (r *OrderRepositoryImpl) Create(ctx shared.TransactionContext, o *checkout.Order) error {
	db := persistence.DB(ctx, r.db)

	if err := db.Create(toGORM(o)).Error; err != nil {
		return mapError(err, o.ID())
	}
	return nil
}

// Update 以訂單目前的項目取代資料庫中的項目
//
// 在同一事務中執行（ctx 已在事務中時使用 SAVEPOINT）：
// 1. 更新 orders.total，訂單不存在時返回 ErrOrderNotFound
// 2. 刪除舊項目
// 3. 批次寫入新項目
func (r *OrderRepositoryImpl) Update(ctx shared.TransactionContext, o *checkout.Order) error {
	db := persistence.DB(ctx, r.db)

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderGORM{}).
			Where("id = ?", o.ID()).
			Updates(map[string]interface{}{
				"customer_id": o.CustomerID(),
				"total":       o.Total(),
			})
		if result.Error != nil {
			return mapError(result.Error, o.ID())
		}
		if result.RowsAffected == 0 {
			return checkout.ErrOrderNotFound.WithContext("order_id", o.ID())
		}

		if err := tx.Where("order_id = ?", o.ID()).Delete(&OrderItemGORM{}).Error; err != nil {
			return mapError(err, o.ID())
		}

		items := toItemsGORM(o)
		if err := tx.Create(&items).Error; err != nil {
			return mapError(err, o.ID())
		}
		return nil
	})
}

// Find 根據 ID 查找訂單（預載項目）
func (r *OrderRepositoryImpl) Find(ctx shared.TransactionContext, id string) (*checkout.Order, error) {
	db := persistence.DB(ctx, r.db)

	var model OrderGORM
	err := db.Preload("Items", orderItemsByID).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		return nil, mapError(err, id)
	}
	return model.toDomain()
}

// FindAll 依 ID 排序返回所有訂單（預載項目）
func (r *OrderRepositoryImpl) FindAll(ctx shared.TransactionContext) ([]*checkout.Order, error) {
	db := persistence.DB(ctx, r.db)

	var models []OrderGORM
	if err := db.Preload("Items", orderItemsByID).Order("id").Find(&models).Error; err != nil {
		return nil, mapError(err, "")
	}

	orders := make([]*checkout.Order, 0, len(models))
	for i := range models {
		o, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

func mapError(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return checkout.ErrOrderNotFound.WithContext("order_id", id)
	}
	return checkout.ErrRepositoryError.WithContext(
		"order_id", id,
		"database_error", err.Error(),
	)
}
