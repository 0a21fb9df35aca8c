package checkout

import (
	"github.com/jackyeh168/ecommerce/src/internal/domain/checkout"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"go.uber.org/zap"
)

// LogWhenOrderIsPlacedHandler 下單後記錄訂單總額與獎勵積分
type LogWhenOrderIsPlacedHandler struct {
	logger *zap.Logger
}

// NewLogWhenOrderIsPlacedHandler 創建處理器
func NewLogWhenOrderIsPlacedHandler(logger *zap.Logger) *LogWhenOrderIsPlacedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogWhenOrderIsPlacedHandler{logger: logger}
}

// Handle 實作 shared.EventHandler
func (h *LogWhenOrderIsPlacedHandler) Handle(event shared.Event) error {
	payload := event.Payload()
	h.logger.Info("order_placed",
		zap.Any("order_id", payload["id"]),
		zap.Any("customer_id", payload["customer_id"]),
		zap.Any("total", payload["total"]),
		zap.Any("reward_points", payload["reward_points"]),
	)
	return nil
}

// RegisterEventHandlers 將 Checkout 事件處理器註冊到分派器
func RegisterEventHandlers(dispatcher shared.EventDispatcher, logger *zap.Logger) error {
	return dispatcher.Register(checkout.EventTypeOrderPlaced, NewLogWhenOrderIsPlacedHandler(logger))
}
