package product

import (
	"fmt"

	"github.com/jackyeh168/ecommerce/src/internal/domain/product"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
)

// SendEmailWhenProductIsCreatedHandler 商品建立時寄出通知信
//
// Mailer 返回的錯誤原樣返回給分派器，後續處理器不再執行。
type SendEmailWhenProductIsCreatedHandler struct {
	mailer    product.Mailer
	recipient string
}

// NewSendEmailWhenProductIsCreatedHandler 創建處理器
func NewSendEmailWhenProductIsCreatedHandler(mailer product.Mailer, recipient string) *SendEmailWhenProductIsCreatedHandler {
	return &SendEmailWhenProductIsCreatedHandler{
		mailer:    mailer,
		recipient: recipient,
	}
}

// Handle 實作 shared.EventHandler
func (h *SendEmailWhenProductIsCreatedHandler) Handle(event shared.Event) error {
	id, _ := event.Get("id")
	name, _ := event.Get("name")
	price, _ := event.Get("price")

	subject := fmt.Sprintf("New product: %v", name)
	body := fmt.Sprintf("Product %v (%v) is now available for %v.", name, id, price)

	if err := h.mailer.Send(h.recipient, subject, body); err != nil {
		return fmt.Errorf("send product created email: %w", err)
	}
	return nil
}

// RegisterEventHandlers 將 Product 事件處理器註冊到分派器
func RegisterEventHandlers(dispatcher shared.EventDispatcher, mailer product.Mailer, recipient string) error {
	return dispatcher.Register(
		product.EventTypeProductCreated,
		NewSendEmailWhenProductIsCreatedHandler(mailer, recipient),
	)
}
