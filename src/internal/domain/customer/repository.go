package customer

import "github.com/jackyeh168/ecommerce/src/internal/domain/shared"

// CustomerRepository 客戶倉儲介面
//
// 事務策略：
// - Create / Update: ctx 應為 non-nil（在 TransactionManager 中呼叫）
// - Find / FindAll: ctx 可為 nil（auto-commit）
//
// 找不到時返回 ErrCustomerNotFound；其他資料庫錯誤映射為 ErrRepositoryError。
type CustomerRepository interface {
	Create(ctx shared.TransactionContext, customer *Customer) error
	Update(ctx shared.TransactionContext, customer *Customer) error
	Find(ctx shared.TransactionContext, id string) (*Customer, error)
	FindAll(ctx shared.TransactionContext) ([]*Customer, error)
}
