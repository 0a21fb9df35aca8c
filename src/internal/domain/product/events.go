package product

import "github.com/jackyeh168/ecommerce/src/internal/domain/shared"

// EventTypeProductCreated 商品建立事件類型名稱
const EventTypeProductCreated = "ProductCreated"

// newProductCreatedEvent payload: id, name, price（decimal 字串）
func newProductCreatedEvent(p *Product) shared.Event {
	return shared.MustNewEvent(EventTypeProductCreated, map[string]any{
		"id":    p.id,
		"name":  p.name,
		"price": p.price.StringFixed(2),
	})
}
