package checkout

import (
	"github.com/google/uuid"
	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/shopspring/decimal"
)

// ===========================
// OrderService 領域服務
// ===========================

// OrderService 跨聚合的訂單計算（Customer + Order）
//
// 無狀態。ID 產生器可替換以便測試。
type OrderService struct {
	newID func() string
}

// NewOrderService 創建訂單領域服務（訂單 ID 使用 UUID v4）
func NewOrderService() *OrderService {
	return &OrderService{newID: func() string { return uuid.New().String() }}
}

// NewOrderServiceWithIDGenerator 使用自訂 ID 產生器
func NewOrderServiceWithIDGenerator(newID func() string) *OrderService {
	return &OrderService{newID: newID}
}

// Total 多筆訂單總額
func (s *OrderService) Total(orders []*Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total())
	}
	return total
}

// PlaceOrder 為客戶下單
//
// 業務規則：獎勵積分 = floor(訂單總額 / 2)
// 成功時訂單記錄 OrderPlaced 事件。
func (s *OrderService) PlaceOrder(c *customer.Customer, items []OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsRequired.WithContext("customer_id", c.ID())
	}

	order, err := NewOrder(s.newID(), c.ID(), items)
	if err != nil {
		return nil, err
	}

	points := RewardPointsFor(order.Total())
	if err := c.AddRewardPoints(points); err != nil {
		return nil, err
	}

	order.events = append(order.events, newOrderPlacedEvent(order, points))
	return order, nil
}

// RewardPointsFor 訂單總額對應的獎勵積分
func RewardPointsFor(total decimal.Decimal) int {
	if total.IsNegative() {
		return 0
	}
	return int(total.Div(decimal.NewFromInt(2)).Floor().IntPart())
}
