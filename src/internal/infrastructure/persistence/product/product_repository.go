package product

import (
	"errors"

	"github.com/jackyeh168/ecommerce/src/internal/domain/product"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"github.com/jackyeh168/ecommerce/src/internal/infrastructure/persistence"
	"gorm.io/gorm"
)

// ProductRepositoryImpl 商品倉儲實現（GORM）
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository 創建新的商品倉儲實例
func NewProductRepository(db *gorm.DB) product.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Create 新增商品
func (r *ProductRepositoryImpl) Create(ctx shared.TransactionContext, p *product.Product) error {
	db := persistence.DB(ctx, r.db)

	if err := db.Create(toGORM(p)).Error; err != nil {
		return mapError(err, p.ID())
	}
	return nil
}

// Update 更新名稱與價格
func (r *ProductRepositoryImpl) Update(ctx shared.TransactionContext, p *product.Product) error {
	db := persistence.DB(ctx, r.db)
	model := toGORM(p)

	result := db.Model(&ProductGORM{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":  model.Name,
			"price": model.Price,
		})
	if result.Error != nil {
		return mapError(result.Error, p.ID())
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound.WithContext("product_id", p.ID())
	}
	return nil
}

// Find 根據 ID 查找商品
func (r *ProductRepositoryImpl) Find(ctx shared.TransactionContext, id string) (*product.Product, error) {
	db := persistence.DB(ctx, r.db)

	var model ProductGORM
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		return nil, mapError(err, id)
	}
	return model.toDomain()
}

// FindAll 依 ID 排序返回所有商品
func (r *ProductRepositoryImpl) FindAll(ctx shared.TransactionContext) ([]*product.Product, error) {
	db := persistence.DB(ctx, r.db)

	var models []ProductGORM
	if err := db.Order("id").Find(&models).Error; err != nil {
		return nil, mapError(err, "")
	}

	products := make([]*product.Product, 0, len(models))
	for i := range models {
		p, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func mapError(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product.ErrProductNotFound.WithContext("product_id", id)
	}
	return product.ErrRepositoryError.WithContext(
		"product_id", id,
		"database_error", err.Error(),
	)
}
