package customer

import (
	"time"

	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"gorm.io/gorm"
)

// ===========================
// GORM Models
// ===========================

// CustomerGORM 客戶資料表模型
//
// 地址攤平為 street / number / zip / city 四個欄位；
// street 為空字串代表尚未設定地址。
type CustomerGORM struct {
	ID           string    `gorm:"column:id;type:varchar(64);primaryKey"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	Street       string    `gorm:"column:street;type:varchar(255);not null;default:''"`
	Number       int       `gorm:"column:number;not null;default:0"`
	Zip          string    `gorm:"column:zipcode;type:varchar(32);not null;default:''"`
	City         string    `gorm:"column:city;type:varchar(255);not null;default:''"`
	Active       bool      `gorm:"column:active;not null;default:false"`
	RewardPoints int       `gorm:"column:reward_points;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (CustomerGORM) TableName() string {
	return "customers"
}

// Migrate 建立 customers 資料表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CustomerGORM{})
}

// ===========================
// Mapper Functions
// ===========================

// toDomain 以 ReconstructCustomer 重建聚合（不產生事件）
func (m *CustomerGORM) toDomain() (*customer.Customer, error) {
	var address customer.Address
	if m.Street != "" {
		var err error
		address, err = customer.NewAddress(m.Street, m.Number, m.Zip, m.City)
		if err != nil {
			return nil, err
		}
	}

	return customer.ReconstructCustomer(m.ID, m.Name, address, m.Active, m.RewardPoints)
}

func toGORM(c *customer.Customer) *CustomerGORM {
	address := c.Address()
	return &CustomerGORM{
		ID:           c.ID(),
		Name:         c.Name(),
		Street:       address.Street(),
		Number:       address.Number(),
		Zip:          address.Zip(),
		City:         address.City(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
}
