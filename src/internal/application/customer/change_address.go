package customer

import (
	"fmt"

	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
)

// ===========================
// ChangeAddress Use Case
// ===========================

// ChangeAddressCommand 修改客戶地址指令
type ChangeAddressCommand struct {
	CustomerID string
	Street     string
	Number     int
	Zip        string
	City       string
}

// ChangeAddressUseCase 修改客戶地址
//
// 流程：驗證地址 → 事務中 Find / ChangeAddress / Update → 提交後分派
// CustomerAddressChanged。
type ChangeAddressUseCase struct {
	customerRepo customer.CustomerRepository
	txManager    shared.TransactionManager
	notifier     shared.EventNotifier
}

// NewChangeAddressUseCase 創建 Use Case 實例
func NewChangeAddressUseCase(
	customerRepo customer.CustomerRepository,
	txManager shared.TransactionManager,
	notifier shared.EventNotifier,
) *ChangeAddressUseCase {
	return &ChangeAddressUseCase{
		customerRepo: customerRepo,
		txManager:    txManager,
		notifier:     notifier,
	}
}

// Execute 執行修改地址，返回新地址的字串表示
func (uc *ChangeAddressUseCase) Execute(cmd ChangeAddressCommand) (string, error) {
	address, err := customer.NewAddress(cmd.Street, cmd.Number, cmd.Zip, cmd.City)
	if err != nil {
		return "", err
	}

	var events []shared.Event
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		c, err := uc.customerRepo.Find(ctx, cmd.CustomerID)
		if err != nil {
			return err
		}
		if err := c.ChangeAddress(address); err != nil {
			return err
		}
		if err := uc.customerRepo.Update(ctx, c); err != nil {
			return err
		}
		events = c.PullEvents()
		return nil
	})
	if err != nil {
		return "", err
	}

	if err := shared.NotifyAll(uc.notifier, events); err != nil {
		return "", fmt.Errorf("customer %s address changed, notify events: %w", cmd.CustomerID, err)
	}
	return address.String(), nil
}
