package customer

import (
	"errors"

	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"github.com/jackyeh168/ecommerce/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// ===========================
// CustomerRepositoryImpl
// ===========================

// CustomerRepositoryImpl 客戶倉儲實現（GORM）
type CustomerRepositoryImpl struct {
	db *gorm.DB
}

// NewCustomerRepository 創建新的客戶倉儲實例
func NewCustomerRepository(db *gorm.DB) customer.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

// Create 新增客戶
func (r *CustomerRepositoryImpl) Create(ctx shared.TransactionContext, c *customer.Customer) error {
	db := persistence.DB(ctx, r.db)

	if err := db.Create(toGORM(c)).Error; err != nil {
		return mapError(err, c.ID())
	}
	return nil
}

// Update 更新客戶所有欄位
//
// 使用 map 更新，確保 active=false、reward_points=0 等零值也會寫入。
// 記錄不存在時返回 ErrCustomerNotFound。
func (r *CustomerRepositoryImpl) Update(ctx shared.TransactionContext, c *customer.Customer) error {
	db := persistence.DB(ctx, r.db)
	model := toGORM(c)

	result := db.Model(&CustomerGORM{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"street":        model.Street,
			"number":        model.Number,
			"zipcode":       model.Zip,
			"city":          model.City,
			"active":        model.Active,
			"reward_points": model.RewardPoints,
		})
	if result.Error != nil {
		return mapError(result.Error, c.ID())
	}
	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound.WithContext("customer_id", c.ID())
	}
	return nil
}

// Find 根據 ID 查找客戶
func (r *CustomerRepositoryImpl) Find(ctx shared.TransactionContext, id string) (*customer.Customer, error) {
	db := persistence.DB(ctx, r.db)

	var model CustomerGORM
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, mapError(err, id)
	}
	return model.toDomain()
}

// FindAll 依 ID 排序返回所有客戶
func (r *CustomerRepositoryImpl) FindAll(ctx shared.TransactionContext) ([]*customer.Customer, error) {
	db := persistence.DB(ctx, r.db)

	var models []CustomerGORM
	if err := db.Order("id").Find(&models).Error; err != nil {
		return nil, mapError(err, "")
	}

	customers := make([]*customer.Customer, 0, len(models))
	for i := range models {
		c, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// mapError 映射 GORM 錯誤到 Domain 錯誤
//
// - gorm.ErrRecordNotFound → customer.ErrCustomerNotFound
// - 其他錯誤              → customer.ErrRepositoryError
func mapError(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return customer.ErrCustomerNotFound.WithContext("customer_id", id)
	}
	return customer.ErrRepositoryError.WithContext(
		"customer_id", id,
		"database_error", err.Error(),
	)
}
