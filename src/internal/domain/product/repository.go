package product

import "github.com/jackyeh168/ecommerce/src/internal/domain/shared"

// ProductRepository 商品倉儲介面
//
// 找不到時返回 ErrProductNotFound。
type ProductRepository interface {
	Create(ctx shared.TransactionContext, product *Product) error
	Update(ctx shared.TransactionContext, product *Product) error
	Find(ctx shared.TransactionContext, id string) (*Product, error)
	FindAll(ctx shared.TransactionContext) ([]*Product, error)
}

// Mailer 郵件發送埠（Port）
//
// 實作位於 infrastructure/notification。
type Mailer interface {
	Send(to, subject, body string) error
}
