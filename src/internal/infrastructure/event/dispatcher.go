package event

import (
	"fmt"
	"sync"

	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ===========================
// Dispatcher 同步事件分派器
// ===========================

// Dispatcher 行程內的同步事件分派器
//
// 註冊表：事件類型名稱 → 有序的處理器列表。鍵有三種狀態：
//   - 未註冊：沒有鍵（初始狀態，或 UnregisterAll 之後）
//   - 已註冊但為空：有鍵，處理器數為 0（Unregister 移除最後一個處理器之後）
//   - 已註冊：有鍵，處理器數 > 0
//
// 並發：註冊表由 RWMutex 保護。Notify 在讀鎖下複製處理器列表，
// 釋放鎖之後才呼叫處理器，因此處理器在 Handle 中註冊或取消註冊
// 只會影響之後的 Notify，不會影響進行中的分派。
//
// 每個 bounded context 應自行建立並持有 Dispatcher，不使用全域實例。
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler

	logger  *zap.Logger
	metrics *Metrics
}

var _ shared.EventDispatcher = (*Dispatcher)(nil)

// Option 設定 Dispatcher
type Option func(*Dispatcher)

// WithLogger 設定日誌記錄器（預設為 zap.NewNop()）
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger.With(zap.String("component", "event_dispatcher"))
		}
	}
}

// WithMetrics 設定 Prometheus 指標
func WithMetrics(metrics *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = metrics
	}
}

// NewDispatcher 創建空的事件分派器
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string][]shared.EventHandler),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register 將處理器追加到事件類型的列表尾端
//
// 不去重：同一個處理器註冊兩次會收到兩次事件。
//
// 錯誤：
// - ErrInvalidEventType: eventType 為空
// - ErrInvalidHandler: handler 為 nil 或不是指標
func (d *Dispatcher) Register(eventType string, handler shared.EventHandler) error {
	if eventType == "" {
		return shared.ErrInvalidEventType.WithContext(
			"reason", "event type cannot be empty",
		)
	}
	if err := shared.ValidateHandler(handler); err != nil {
		return fmt.Errorf("register handler for %q: %w", eventType, err)
	}

	d.mu.Lock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	count := len(d.handlers[eventType])
	d.mu.Unlock()

	d.logger.Debug("event_handler_registered",
		zap.String("event_type", eventType),
		zap.String("handler", fmt.Sprintf("%T", handler)),
		zap.Int("handlers", count),
	)
	return nil
}

// Unregister 移除第一個身分相同的處理器
//
// 其餘處理器保持原順序。事件類型不存在或找不到處理器時為 no-op。
// 列表被清空時鍵仍然保留（與 UnregisterAll 不同）。
func (d *Dispatcher) Unregister(eventType string, handler shared.EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list, ok := d.handlers[eventType]
	if !ok {
		return
	}

	for i, h := range list {
		if shared.SameHandler(h, handler) {
			// 建立新的底層陣列，不影響已經取出的列表
			d.handlers[eventType] = append(list[:i:i], list[i+1:]...)
			d.logger.Debug("event_handler_unregistered",
				zap.String("event_type", eventType),
				zap.Int("position", i),
				zap.Int("handlers", len(list)-1),
			)
			return
		}
	}
}

// UnregisterAll 清空註冊表，移除所有事件類型
func (d *Dispatcher) UnregisterAll() {
	d.mu.Lock()
	clear(d.handlers)
	d.mu.Unlock()

	d.logger.Debug("event_handlers_cleared")
}

// Notify 依註冊順序同步呼叫事件類型的所有處理器
//
// - 事件類型未註冊：no-op，返回 nil
// - 處理器返回錯誤：停止分派，返回包裝了 ErrHandlerFailed 與原始錯誤的錯誤，
//   後續處理器不會被呼叫
// - 處理器 panic：不攔截，直接向上傳遞
func (d *Dispatcher) Notify(event shared.Event) error {
	eventType := event.EventType()

	d.mu.RLock()
	registered, ok := d.handlers[eventType]
	handlers := append([]shared.EventHandler(nil), registered...)
	d.mu.RUnlock()

	logger := d.logger.With(
		zap.String("event_type", eventType),
		zap.String("event_id", event.EventID()),
	)

	d.metrics.observeNotify(eventType)

	if !ok || len(handlers) == 0 {
		logger.Debug("event_dropped_no_handler")
		return nil
	}

	for i, h := range handlers {
		d.metrics.observeHandled(eventType)
		if err := h.Handle(event); err != nil {
			d.metrics.observeFailure(eventType)
			logger.Warn("event_handler_failed",
				zap.Int("position", i),
				zap.String("handler", fmt.Sprintf("%T", h)),
				zap.Int("skipped", len(handlers)-i-1),
				zap.Error(err),
			)
			return fmt.Errorf("%w: %w", shared.ErrHandlerFailed.WithContext(
				"event_type", eventType,
				"position", i,
			), err)
		}
	}

	logger.Debug("event_fanned_out", zap.Int("handlers", len(handlers)))
	return nil
}

// ===========================
// 查詢方法
// ===========================

// EventHandlers 返回呼叫當下註冊表的副本
//
// 每次呼叫都反映目前狀態；修改返回值不影響註冊表。
func (d *Dispatcher) EventHandlers() map[string][]shared.EventHandler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string][]shared.EventHandler, len(d.handlers))
	for eventType, list := range d.handlers {
		out[eventType] = append(make([]shared.EventHandler, 0, len(list)), list...)
	}
	return out
}

// Handlers 返回事件類型的處理器列表副本
//
// 第二個返回值表示鍵是否存在：
// 已註冊但為空 → (空列表, true)；未註冊 → (nil, false)
func (d *Dispatcher) Handlers(eventType string) ([]shared.EventHandler, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	list, ok := d.handlers[eventType]
	if !ok {
		return nil, false
	}
	return append(make([]shared.EventHandler, 0, len(list)), list...), true
}

// HasEventType 判斷事件類型是否存在於註冊表
func (d *Dispatcher) HasEventType(eventType string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.handlers[eventType]
	return ok
}
