package product

import (
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// Product Aggregate Root
// ===========================

// Product 商品聚合根
//
// 不變量：
// 1. ID、名稱不能為空
// 2. 價格 >= 0（使用 decimal 避免浮點誤差）
type Product struct {
	id    string
	name  string
	price decimal.Decimal

	events []shared.Event
}

// NewProduct 創建新商品並記錄 ProductCreated 事件
func NewProduct(id, name string, price decimal.Decimal) (*Product, error) {
	p := &Product{id: id, name: name, price: price}
	if err := p.validate(); err != nil {
		return nil, err
	}

	p.events = append(p.events, newProductCreatedEvent(p))
	return p, nil
}

// ReconstructProduct 從持久化資料重建商品（不發布事件）
func ReconstructProduct(id, name string, price decimal.Decimal) (*Product, error) {
	p := &Product{id: id, name: name, price: price}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) validate() error {
	if p.id == "" {
		return ErrProductIDRequired
	}
	if p.name == "" {
		return ErrProductNameRequired.WithContext("product_id", p.id)
	}
	if p.price.IsNegative() {
		return ErrNegativePrice.WithContext("product_id", p.id, "price", p.price.String())
	}
	return nil
}

// ChangeName 修改商品名稱
func (p *Product) ChangeName(name string) error {
	if name == "" {
		return ErrProductNameRequired.WithContext("product_id", p.id)
	}
	p.name = name
	return nil
}

// ChangePrice 修改商品價格
func (p *Product) ChangePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice.WithContext("product_id", p.id, "price", price.String())
	}
	p.price = price
	return nil
}

// ID 返回商品 ID
func (p *Product) ID() string { return p.id }

// Name 返回商品名稱
func (p *Product) Name() string { return p.name }

// Price 返回商品價格
func (p *Product) Price() decimal.Decimal { return p.price }

// PullEvents 取出並清空待發布的領域事件
func (p *Product) PullEvents() []shared.Event {
	events := p.events
	p.events = nil
	return events
}
