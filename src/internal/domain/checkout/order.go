package checkout

import (
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// Order Aggregate Root
// ===========================

// Order 訂單聚合根
//
// 不變量：
// 1. id、customerID 不能為空
// 2. 至少一個項目
// 3. Total() 永遠等於項目小計之和
type Order struct {
	id         string
	customerID string
	items      []OrderItem

	events []shared.Event
}

// NewOrder 創建訂單
func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	o := &Order{
		id:         id,
		customerID: customerID,
		items:      append([]OrderItem(nil), items...),
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) validate() error {
	if o.id == "" {
		return ErrOrderIDRequired
	}
	if o.customerID == "" {
		return ErrCustomerIDRequired.WithContext("order_id", o.id)
	}
	if len(o.items) == 0 {
		return ErrItemsRequired.WithContext("order_id", o.id)
	}
	return nil
}

// ReplaceItems 以新的項目列表取代現有項目
func (o *Order) ReplaceItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsRequired.WithContext("order_id", o.id)
	}
	o.items = append([]OrderItem(nil), items...)
	return nil
}

// ID 返回訂單 ID
func (o *Order) ID() string { return o.id }

// CustomerID 返回客戶 ID
func (o *Order) CustomerID() string { return o.customerID }

// Items 返回項目副本
func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

// Total 訂單總額
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

// PullEvents 取出並清空待發布的領域事件
func (o *Order) PullEvents() []shared.Event {
	events := o.events
	o.events = nil
	return events
}
