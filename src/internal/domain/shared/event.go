package shared

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// ===========================
// Event 領域事件
// ===========================

// Event 領域事件（不可變值）
//
// 組成：
// - eventType: 事件類型名稱（例如 "CustomerCreated"），分派時的唯一查找鍵
// - payload: 事件資料，建構時複製，之後不可修改
// - occurredAt: 建構時間
//
// Event 以值傳遞。同一次 Notify 中所有處理器收到的是同一個事件，
// 由於沒有任何修改方法，處理器之間看到的 payload 永遠一致。
// 注意：payload 只做淺層複製，放入 map/slice 的呼叫者不應再修改它們。
type Event struct {
	eventID    string
	eventType  string
	payload    map[string]any
	occurredAt time.Time
}

// NewEvent 創建領域事件
//
// 錯誤：eventType 為空時返回 ErrInvalidEventType
func NewEvent(eventType string, payload map[string]any) (Event, error) {
	if eventType == "" {
		return Event{}, ErrInvalidEventType.WithContext(
			"reason", "event type cannot be empty",
		)
	}

	return Event{
		eventID:    uuid.New().String(),
		eventType:  eventType,
		payload:    copyPayload(payload),
		occurredAt: time.Now(),
	}, nil
}

// MustNewEvent 與 NewEvent 相同，但在事件類型無效時 panic
//
// 僅供事件類型為常數的領域程式碼使用。
func MustNewEvent(eventType string, payload map[string]any) Event {
	event, err := NewEvent(eventType, payload)
	if err != nil {
		panic(err)
	}
	return event
}

// EventID 事件唯一標識（UUID v4）
func (e Event) EventID() string {
	return e.eventID
}

// EventType 事件類型名稱
func (e Event) EventType() string {
	return e.eventType
}

// OccurredAt 事件發生時間
func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}

// Payload 返回事件資料的副本
func (e Event) Payload() map[string]any {
	return copyPayload(e.payload)
}

// Get 讀取單一事件資料
func (e Event) Get(key string) (any, bool) {
	v, ok := e.payload[key]
	return v, ok
}

// IsZero 判斷是否為零值事件（未經 NewEvent 建構）
func (e Event) IsZero() bool {
	return e.eventType == ""
}

func copyPayload(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = v
	}
	return out
}

// ===========================
// EventHandler 事件處理器
// ===========================

// EventHandler 事件處理器介面
//
// 處理器由應用層提供（日誌、寄信等），註冊到一個或多個事件類型。
// Handle 返回錯誤時，分派器停止呼叫同一事件的後續處理器。
// 處理器不得在 Handle 中修改分派器的註冊表以外的共享狀態。
type EventHandler interface {
	Handle(event Event) error
}

type handlerFunc struct {
	fn func(Event) error
}

func (h *handlerFunc) Handle(event Event) error {
	return h.fn(event)
}

// HandlerFunc 將函數轉換為 EventHandler
//
// 每次呼叫都返回新的指標，因此兩個 HandlerFunc 即使包裝同一個函數，
// 取消註冊時也被視為不同的處理器。fn 為 nil 時返回 nil。
func HandlerFunc(fn func(Event) error) EventHandler {
	if fn == nil {
		return nil
	}
	return &handlerFunc{fn: fn}
}

// ValidateHandler 驗證處理器可以被註冊
//
// 處理器以指標身分（identity）比對，因此必須是非 nil 的指標。
// 值類型的處理器會以結構相等比較，無法區分兩個內容相同的實例。
func ValidateHandler(handler EventHandler) error {
	if handler == nil {
		return ErrInvalidHandler.WithContext("reason", "handler is nil")
	}

	v := reflect.ValueOf(handler)
	if v.Kind() != reflect.Pointer {
		return ErrInvalidHandler.WithContext(
			"reason", "handler must be a pointer",
			"handler_type", fmt.Sprintf("%T", handler),
		)
	}
	if v.IsNil() {
		return ErrInvalidHandler.WithContext(
			"reason", "handler is a nil pointer",
			"handler_type", fmt.Sprintf("%T", handler),
		)
	}
	return nil
}

// SameHandler 以身分比較兩個處理器
//
// 已註冊的處理器必定是指標，介面比較即為指標比較；
// 動態類型不同時直接返回 false，不會因不可比較的類型 panic。
func SameHandler(a, b EventHandler) bool {
	return a == b
}
