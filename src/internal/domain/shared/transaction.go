package shared

// TransactionContext 事務上下文介面
//
// 行為約定：
// - ctx != nil: 在調用者的事務中執行（事務傳播）
// - ctx == nil: 使用 auto-commit 模式（適用於單一讀操作）
//
// Repository 方法約束：
// - Create / Update 應在 TransactionManager.InTransaction 中呼叫
// - Find / FindAll 可傳入 nil
//
// 這是一個標記介面，具體實作（GORM）在 Infrastructure Layer。
//
// 範例：
//
//	txManager.InTransaction(func(ctx TransactionContext) error {
//	    c, _ := customerRepo.Find(ctx, id)
//	    c.ChangeAddress(address)
//	    return customerRepo.Update(ctx, c)
//	})
type TransactionContext interface {
	// 標記介面：僅用於傳遞上下文，不暴露方法
}

// TransactionManager 事務管理器介面
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
