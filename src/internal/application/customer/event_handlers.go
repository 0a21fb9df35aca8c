package customer

import (
	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ===========================
// Customer 事件處理器
// ===========================

// LogWhenCustomerIsCreatedHandler 客戶建立時寫入第一筆日誌
type LogWhenCustomerIsCreatedHandler struct {
	logger *zap.Logger
}

// NewLogWhenCustomerIsCreatedHandler 創建處理器
func NewLogWhenCustomerIsCreatedHandler(logger *zap.Logger) *LogWhenCustomerIsCreatedHandler {
	return &LogWhenCustomerIsCreatedHandler{logger: orNop(logger)}
}

// Handle 實作 shared.EventHandler
func (h *LogWhenCustomerIsCreatedHandler) Handle(event shared.Event) error {
	h.logger.Info("customer_created_first_handler",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID()),
	)
	return nil
}

// LogWhenCustomerIsCreatedSecondHandler 客戶建立時寫入第二筆日誌
type LogWhenCustomerIsCreatedSecondHandler struct {
	logger *zap.Logger
}

// NewLogWhenCustomerIsCreatedSecondHandler 創建處理器
func NewLogWhenCustomerIsCreatedSecondHandler(logger *zap.Logger) *LogWhenCustomerIsCreatedSecondHandler {
	return &LogWhenCustomerIsCreatedSecondHandler{logger: orNop(logger)}
}

// Handle 實作 shared.EventHandler
func (h *LogWhenCustomerIsCreatedSecondHandler) Handle(event shared.Event) error {
	h.logger.Info("customer_created_second_handler",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID()),
	)
	return nil
}

// LogWhenCustomerAddressIsChangedHandler 客戶地址變更時記錄 id、名稱與新地址
type LogWhenCustomerAddressIsChangedHandler struct {
	logger *zap.Logger
}

// NewLogWhenCustomerAddressIsChangedHandler 創建處理器
func NewLogWhenCustomerAddressIsChangedHandler(logger *zap.Logger) *LogWhenCustomerAddressIsChangedHandler {
	return &LogWhenCustomerAddressIsChangedHandler{logger: orNop(logger)}
}

// Handle 實作 shared.EventHandler
func (h *LogWhenCustomerAddressIsChangedHandler) Handle(event shared.Event) error {
	id, _ := event.Get("id")
	name, _ := event.Get("name")
	address, _ := event.Get("address")

	h.logger.Info("customer_address_changed",
		zap.Any("customer_id", id),
		zap.Any("name", name),
		zap.Any("address", address),
		zap.String("event_id", event.EventID()),
	)
	return nil
}

// RegisterEventHandlers 將 Customer 事件處理器註冊到分派器
func RegisterEventHandlers(dispatcher shared.EventDispatcher, logger *zap.Logger) error {
	registrations := []struct {
		eventType string
		handler   shared.EventHandler
	}{
		{customer.EventTypeCustomerCreated, NewLogWhenCustomerIsCreatedHandler(logger)},
		{customer.EventTypeCustomerCreated, NewLogWhenCustomerIsCreatedSecondHandler(logger)},
		{customer.EventTypeCustomerAddressChanged, NewLogWhenCustomerAddressIsChangedHandler(logger)},
	}

	for _, r := range registrations {
		if err := dispatcher.Register(r.eventType, r.handler); err != nil {
			return err
		}
	}
	return nil
}

// orNop nil 日誌記錄器以 zap.NewNop() 取代
func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
