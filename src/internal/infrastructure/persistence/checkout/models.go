package checkout

import (
	"time"

	"github.com/jackyeh168/ecommerce/src/internal/domain/checkout"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ===========================
// GORM Models
// ===========================

// OrderGORM 訂單資料表模型
//
// total 為冗餘欄位，每次 Create / Update 以 Order.Total() 重新寫入。
type OrderGORM struct {
	ID         string          `gorm:"column:id;type:varchar(64);primaryKey"`
	CustomerID string          `gorm:"column:customer_id;type:varchar(64);not null;index"`
	Total      decimal.Decimal `gorm:"column:total;type:varchar(32);not null"`
	Items      []OrderItemGORM `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt  time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (OrderGORM) TableName() string {
	return "orders"
}

// OrderItemGORM 訂單項目資料表模型
//
// 主鍵為 (id, order_id)：項目 ID 只在同一訂單內唯一。
type OrderItemGORM struct {
	ID        string          `gorm:"column:id;type:varchar(64);primaryKey"`
	OrderID   string          `gorm:"column:order_id;type:varchar(64);primaryKey"`
	ProductID string          `gorm:"column:product_id;type:varchar(64);not null"`
	Name      string          `gorm:"column:name;type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"column:price;type:varchar(32);not null"`
	Quantity  int             `gorm:"column:quantity;not null"`
}

// TableName 指定資料表名稱
func (OrderItemGORM) TableName() string {
	return "order_items"
}

// Migrate 建立 orders 與 order_items 資料表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderGORM{}, &OrderItemGORM{})
}

// ===========================
// Mapper Functions
// ===========================

func (m *OrderGORM) toDomain() (*checkout.Order, error) {
	items := make([]checkout.OrderItem, 0, len(m.Items))
	for _, it := range m.Items {
		item, err := checkout.NewOrderItem(it.ID, it.Name, it.Price, it.ProductID, it.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return checkout.NewOrder(m.ID, m.CustomerID, items)
}

func toGORM(o *checkout.Order) *OrderGORM {
	return &OrderGORM{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Total:      o.Total(),
		Items:      toItemsGORM(o),
	}
}

func toItemsGORM(o *checkout.Order) []OrderItemGORM {
	items := make([]OrderItemGORM, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemGORM{
			ID:        item.ID(),
			OrderID:   o.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}
	return items
}
