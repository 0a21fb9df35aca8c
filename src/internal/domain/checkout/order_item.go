package checkout

import "github.com/shopspring/decimal"

// ===========================
// OrderItem Entity
// ===========================

// OrderItem 訂單項目（Order 聚合內部實體）
//
// 不變量：
// - id、name、productID 不能為空
// - price >= 0
// - quantity > 0
type OrderItem struct {
	id        string
	name      string
	price     decimal.Decimal
	productID string
	quantity  int
}

// NewOrderItem 創建訂單項目
func NewOrderItem(id, name string, price decimal.Decimal, productID string, quantity int) (OrderItem, error) {
	if id == "" || name == "" || productID == "" {
		return OrderItem{}, ErrInvalidOrderItem.WithContext(
			"item_id", id, "name", name, "product_id", productID,
		)
	}
	if price.IsNegative() {
		return OrderItem{}, ErrNegativePrice.WithContext("item_id", id, "price", price.String())
	}
	if quantity <= 0 {
		return OrderItem{}, ErrInvalidQuantity.WithContext("item_id", id, "quantity", quantity)
	}

	return OrderItem{
		id:        id,
		name:      name,
		price:     price,
		productID: productID,
		quantity:  quantity,
	}, nil
}

// ID 返回項目 ID
func (i OrderItem) ID() string { return i.id }

// Name 返回項目名稱
func (i OrderItem) Name() string { return i.name }

// Price 返回單價
func (i OrderItem) Price() decimal.Decimal { return i.price }

// ProductID 返回商品 ID
func (i OrderItem) ProductID() string { return i.productID }

// Quantity 返回數量
func (i OrderItem) Quantity() int { return i.quantity }

// Total 單價 × 數量
func (i OrderItem) Total() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// ChangeName 返回修改名稱後的項目
func (i OrderItem) ChangeName(name string) (OrderItem, error) {
	if name == "" {
		return i, ErrInvalidOrderItem.WithContext("item_id", i.id, "reason", "name is required")
	}
	i.name = name
	return i, nil
}

// ChangePrice 返回修改單價後的項目
func (i OrderItem) ChangePrice(price decimal.Decimal) (OrderItem, error) {
	if price.IsNegative() {
		return i, ErrNegativePrice.WithContext("item_id", i.id, "price", price.String())
	}
	i.price = price
	return i, nil
}

// ChangeQuantity 返回修改數量後的項目
func (i OrderItem) ChangeQuantity(quantity int) (OrderItem, error) {
	if quantity <= 0 {
		return i, ErrInvalidQuantity.WithContext("item_id", i.id, "quantity", quantity)
	}
	i.quantity = quantity
	return i, nil
}
