package shared

import "fmt"

// ===========================
// DomainError 結構
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// DomainError 領域錯誤
//
// 各 bounded context（customer, product, checkout）以自己的 ErrorCode
// 宣告錯誤實例；errors.Is 只比較 Code，因此 WithContext 產生的副本
// 仍然可以與原始錯誤實例比對。
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例）
//
// 使用範例：
//
//	return ErrInvalidEventType.WithContext("reason", "event type cannot be empty")
func (e *DomainError) WithContext(keyValues ...interface{}) *DomainError {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（以錯誤代碼判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ===========================
// 事件分派相關錯誤
// ===========================

const (
	ErrCodeInvalidEventType ErrorCode = "EVENT_TYPE_INVALID"
	ErrCodeInvalidHandler   ErrorCode = "EVENT_HANDLER_INVALID"
	ErrCodeHandlerFailed    ErrorCode = "EVENT_HANDLER_FAILED"
)

var (
	// ErrInvalidEventType 事件類型名稱為空
	ErrInvalidEventType = &DomainError{
		Code:    ErrCodeInvalidEventType,
		Message: "事件類型不能為空",
	}

	// ErrInvalidHandler 事件處理器為 nil 或不是指標
	ErrInvalidHandler = &DomainError{
		Code:    ErrCodeInvalidHandler,
		Message: "無效的事件處理器",
	}

	// ErrHandlerFailed 事件處理器執行失敗，後續處理器不會被呼叫
	ErrHandlerFailed = &DomainError{
		Code:    ErrCodeHandlerFailed,
		Message: "事件處理器執行失敗",
	}
)
