package product

import (
	"fmt"

	"github.com/jackyeh168/ecommerce/src/internal/domain/product"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ===========================
// CreateProduct Use Case
// ===========================

// CreateProductCommand 建立商品指令
//
// Price 為十進位字串（例如 "10.50"），由 Use Case 解析為 decimal。
type CreateProductCommand struct {
	ProductID string
	Name      string
	Price     string
}

// CreateProductResult 建立商品結果
type CreateProductResult struct {
	ProductID string
	Name      string
	Price     string
}

// CreateProductUseCase 建立商品
type CreateProductUseCase struct {
	productRepo product.ProductRepository
	txManager   shared.TransactionManager
	notifier    shared.EventNotifier
}

// NewCreateProductUseCase 創建 Use Case 實例
func NewCreateProductUseCase(
	productRepo product.ProductRepository,
	txManager shared.TransactionManager,
	notifier shared.EventNotifier,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		txManager:   txManager,
		notifier:    notifier,
	}
}

// Execute 執行建立商品，提交後分派 ProductCreated
func (uc *CreateProductUseCase) Execute(cmd CreateProductCommand) (*CreateProductResult, error) {
	price, err := decimal.NewFromString(cmd.Price)
	if err != nil {
		return nil, product.ErrNegativePrice.WithContext(
			"product_id", cmd.ProductID,
			"price", cmd.Price,
			"reason", "price is not a decimal number",
		)
	}

	p, err := product.NewProduct(cmd.ProductID, cmd.Name, price)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.productRepo.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	if err := shared.NotifyAll(uc.notifier, p.PullEvents()); err != nil {
		return nil, fmt.Errorf("product %s created, notify events: %w", p.ID(), err)
	}

	return &CreateProductResult{
		ProductID: p.ID(),
		Name:      p.Name(),
		Price:     p.Price().StringFixed(2),
	}, nil
}
