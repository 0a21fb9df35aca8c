package customer

import (
	"fmt"

	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
)

// ===========================
// CreateCustomer Use Case
// ===========================

// CreateCustomerCommand 建立客戶指令（Input DTO）
type CreateCustomerCommand struct {
	CustomerID string
	Name       string
}

// CreateCustomerResult 建立客戶結果（Output DTO）
type CreateCustomerResult struct {
	CustomerID string
	Name       string
}

// CreateCustomerUseCase 建立客戶 Use Case 接口
type CreateCustomerUseCase interface {
	Execute(cmd CreateCustomerCommand) (*CreateCustomerResult, error)
}

// CreateCustomerUseCaseImpl 建立客戶 Use Case 實作
//
// 職責：
// 1. 呼叫 customer.NewCustomer（記錄 CustomerCreated）
// 2. 在事務中保存
// 3. 事務提交後分派聚合的待發布事件
type CreateCustomerUseCaseImpl struct {
	customerRepo customer.CustomerRepository
	txManager    shared.TransactionManager
	notifier     shared.EventNotifier
}

// NewCreateCustomerUseCase 創建 CreateCustomerUseCase 實例
func NewCreateCustomerUseCase(
	customerRepo customer.CustomerRepository,
	txManager shared.TransactionManager,
	notifier shared.EventNotifier,
) CreateCustomerUseCase {
	return &CreateCustomerUseCaseImpl{
		customerRepo: customerRepo,
		txManager:    txManager,
		notifier:     notifier,
	}
}

// Execute 執行建立客戶
//
// 錯誤處理：
// - 輸入無效 → customer.ErrCustomerIDRequired / ErrCustomerNameRequired
// - 保存失敗 → 倉儲錯誤（事務回滾，不分派事件）
// - 處理器失敗 → 包裝後返回；資料已提交
func (uc *CreateCustomerUseCaseImpl) Execute(cmd CreateCustomerCommand) (*CreateCustomerResult, error) {
	c, err := customer.NewCustomer(cmd.CustomerID, cmd.Name)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.customerRepo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}

	if err := shared.NotifyAll(uc.notifier, c.PullEvents()); err != nil {
		return nil, fmt.Errorf("customer %s created, notify events: %w", c.ID(), err)
	}

	return &CreateCustomerResult{
		CustomerID: c.ID(),
		Name:       c.Name(),
	}, nil
}
