package customer

import (
	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
)

// ActivateCustomerCommand 啟用 / 停用客戶指令
type ActivateCustomerCommand struct {
	CustomerID string
	Active     bool
}

// ActivateCustomerUseCase 啟用或停用客戶
//
// 啟用需要客戶已設定地址（customer.ErrAddressRequired）。
type ActivateCustomerUseCase struct {
	customerRepo customer.CustomerRepository
	txManager    shared.TransactionManager
}

// NewActivateCustomerUseCase 創建 Use Case 實例
func NewActivateCustomerUseCase(
	customerRepo customer.CustomerRepository,
	txManager shared.TransactionManager,
) *ActivateCustomerUseCase {
	return &ActivateCustomerUseCase{
		customerRepo: customerRepo,
		txManager:    txManager,
	}
}

// Execute 執行啟用 / 停用
func (uc *ActivateCustomerUseCase) Execute(cmd ActivateCustomerCommand) error {
	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		c, err := uc.customerRepo.Find(ctx, cmd.CustomerID)
		if err != nil {
			return err
		}

		if cmd.Active {
			if err := c.Activate(); err != nil {
				return err
			}
		} else {
			c.Deactivate()
		}
		return uc.customerRepo.Update(ctx, c)
	})
}
