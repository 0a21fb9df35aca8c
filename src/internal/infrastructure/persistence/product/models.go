package product

import (
	"time"

	"github.com/jackyeh168/ecommerce/src/internal/domain/product"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductGORM 商品資料表模型
//
// price 以字串型態保存（decimal.Decimal 實作 driver.Valuer / sql.Scanner），
// 避免 SQLite 的 NUMERIC affinity 轉成浮點數。
type ProductGORM struct {
	ID        string          `gorm:"column:id;type:varchar(64);primaryKey"`
	Name      string          `gorm:"column:name;type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"column:price;type:varchar(32);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt time.Time       `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (ProductGORM) TableName() string {
	return "products"
}

// Migrate 建立 products 資料表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ProductGORM{})
}

func (m *ProductGORM) toDomain() (*product.Product, error) {
	return product.ReconstructProduct(m.ID, m.Name, m.Price)
}

func toGORM(p *product.Product) *ProductGORM {
	return &ProductGORM{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}
