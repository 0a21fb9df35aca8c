package customer

import "github.com/jackyeh168/ecommerce/src/internal/domain/shared"

// Customer 領域事件類型名稱
const (
	EventTypeCustomerCreated        = "CustomerCreated"
	EventTypeCustomerAddressChanged = "CustomerAddressChanged"
)

// newCustomerCreatedEvent payload: id, name
func newCustomerCreatedEvent(c *Customer) shared.Event {
	return shared.MustNewEvent(EventTypeCustomerCreated, map[string]any{
		"id":   c.id,
		"name": c.name,
	})
}

// newCustomerAddressChangedEvent payload: id, name, address 以及地址各欄位
func newCustomerAddressChangedEvent(c *Customer) shared.Event {
	return shared.MustNewEvent(EventTypeCustomerAddressChanged, map[string]any{
		"id":      c.id,
		"name":    c.name,
		"address": c.address.String(),
		"street":  c.address.Street(),
		"number":  c.address.Number(),
		"zip":     c.address.Zip(),
		"city":    c.address.City(),
	})
}
