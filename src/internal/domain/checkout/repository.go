package checkout

import "github.com/jackyeh168/ecommerce/src/internal/domain/shared"

// OrderRepository 訂單倉儲介面
//
// Update 在同一事務中：刪除舊項目 → 批次寫入新項目 → 更新總額。
// FindAll 依 ID 排序並預載項目。
type OrderRepository interface {
	Create(ctx shared.TransactionContext, order *Order) error
	Update(ctx shared.TransactionContext, order *Order) error
	Find(ctx shared.TransactionContext, id string) (*Order, error)
	FindAll(ctx shared.TransactionContext) ([]*Order, error)
}
