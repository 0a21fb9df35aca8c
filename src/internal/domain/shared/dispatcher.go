package shared

// ===========================
// EventDispatcher 介面
// ===========================

// EventNotifier 事件通知介面
//
// 應用層只需要通知事件，不需要管理註冊表。
type EventNotifier interface {
	Notify(event Event) error
}

// EventDispatcher 事件分派器介面
//
// 註冊表：事件類型名稱 → 有序的處理器列表。
// - Register 追加處理器，不去重；同一處理器可重複註冊
// - Unregister 移除第一個身分相同的處理器；列表清空後鍵仍存在
// - UnregisterAll 移除所有鍵
// - Notify 依註冊順序同步呼叫處理器，未註冊的事件類型為 no-op
//
// 介面定義在 Domain Layer，實作在 infrastructure/event。
type EventDispatcher interface {
	EventNotifier

	Register(eventType string, handler EventHandler) error
	Unregister(eventType string, handler EventHandler)
	UnregisterAll()

	// EventHandlers 返回呼叫當下註冊表的副本
	EventHandlers() map[string][]EventHandler
}

// NotifyAll 依序通知多個事件，遇到第一個錯誤即停止
func NotifyAll(notifier EventNotifier, events []Event) error {
	for _, event := range events {
		if err := notifier.Notify(event); err != nil {
			return err
		}
	}
	return nil
}
