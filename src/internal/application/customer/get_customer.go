package customer

import (
	"fmt"

	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
)

// GetCustomerQuery 查詢客戶
type GetCustomerQuery struct {
	CustomerID string
}

// GetCustomerResult 查詢客戶結果
type GetCustomerResult struct {
	CustomerID   string
	Name         string
	Address      string
	Active       bool
	RewardPoints int
}

// GetCustomerUseCase 查詢客戶 Use Case
type GetCustomerUseCase struct {
	customerRepo customer.CustomerRepository
}

// NewGetCustomerUseCase 創建 Use Case 實例
func NewGetCustomerUseCase(repo customer.CustomerRepository) *GetCustomerUseCase {
	return &GetCustomerUseCase{customerRepo: repo}
}

// Execute 執行查詢（auto-commit）
func (uc *GetCustomerUseCase) Execute(query GetCustomerQuery) (*GetCustomerResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢，ctx 可為 nil
//
// 錯誤以 %w 包裝，呼叫者可用 errors.Is(err, customer.ErrCustomerNotFound) 判斷。
func (uc *GetCustomerUseCase) ExecuteWithContext(ctx shared.TransactionContext, query GetCustomerQuery) (*GetCustomerResult, error) {
	c, err := uc.customerRepo.Find(ctx, query.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return &GetCustomerResult{
		CustomerID:   c.ID(),
		Name:         c.Name(),
		Address:      c.Address().String(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}, nil
}
