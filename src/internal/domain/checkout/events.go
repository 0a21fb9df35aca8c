package checkout

import "github.com/jackyeh168/ecommerce/src/internal/domain/shared"

// EventTypeOrderPlaced 下單事件類型名稱
const EventTypeOrderPlaced = "OrderPlaced"

// newOrderPlacedEvent payload: id, customer_id, total, reward_points
func newOrderPlacedEvent(o *Order, rewardPoints int) shared.Event {
	return shared.MustNewEvent(EventTypeOrderPlaced, map[string]any{
		"id":            o.id,
		"customer_id":   o.customerID,
		"total":         o.Total().StringFixed(2),
		"reward_points": rewardPoints,
	})
}
