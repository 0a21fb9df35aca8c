package checkout

import (
	"fmt"
	"strconv"

	"github.com/jackyeh168/ecommerce/src/internal/domain/checkout"
	"github.com/jackyeh168/ecommerce/src/internal/domain/customer"
	"github.com/jackyeh168/ecommerce/src/internal/domain/product"
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
)

// ===========================
// PlaceOrder Use Case
// ===========================

// PlaceOrderLine 下單明細（商品 + 數量）
type PlaceOrderLine struct {
	ProductID string
	Quantity  int
}

// PlaceOrderCommand 下單指令
type PlaceOrderCommand struct {
	CustomerID string
	Lines      []PlaceOrderLine
}

// PlaceOrderResult 下單結果
type PlaceOrderResult struct {
	OrderID      string
	Total        string
	RewardPoints int
}

// PlaceOrderUseCase 下單
//
// 在同一事務中：
// 1. 載入客戶與商品
// 2. 以商品目前的名稱與價格建立訂單項目（項目 ID 依序為 "1", "2", ...）
// 3. OrderService.PlaceOrder 建立訂單並累加獎勵積分
// 4. 保存訂單與客戶
//
// 提交後分派訂單與客戶的待發布事件。
type PlaceOrderUseCase struct {
	customerRepo customer.CustomerRepository
	productRepo  product.ProductRepository
	orderRepo    checkout.OrderRepository
	orderService *checkout.OrderService
	txManager    shared.TransactionManager
	notifier     shared.EventNotifier
}

// NewPlaceOrderUseCase 創建 Use Case 實例
func NewPlaceOrderUseCase(
	customerRepo customer.CustomerRepository,
	productRepo product.ProductRepository,
	orderRepo checkout.OrderRepository,
	orderService *checkout.OrderService,
	txManager shared.TransactionManager,
	notifier shared.EventNotifier,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		orderService: orderService,
		txManager:    txManager,
		notifier:     notifier,
	}
}

// Execute 執行下單
//
// 錯誤處理：
// - 沒有明細 → checkout.ErrItemsRequired
// - 客戶 / 商品不存在 → customer.ErrCustomerNotFound / product.ErrProductNotFound
// - 數量無效 → checkout.ErrInvalidQuantity
// - 處理器失敗 → 包裝後返回；訂單已提交
func (uc *PlaceOrderUseCase) Execute(cmd PlaceOrderCommand) (*PlaceOrderResult, error) {
	if len(cmd.Lines) == 0 {
		return nil, checkout.ErrItemsRequired.WithContext("customer_id", cmd.CustomerID)
	}

	var (
		order  *checkout.Order
		events []shared.Event
	)

	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		c, err := uc.customerRepo.Find(ctx, cmd.CustomerID)
		if err != nil {
			return err
		}

		items, err := uc.buildItems(ctx, cmd.Lines)
		if err != nil {
			return err
		}

		order, err = uc.orderService.PlaceOrder(c, items)
		if err != nil {
			return err
		}

		if err := uc.orderRepo.Create(ctx, order); err != nil {
			return err
		}
		if err := uc.customerRepo.Update(ctx, c); err != nil {
			return err
		}

		events = append(order.PullEvents(), c.PullEvents()...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &PlaceOrderResult{
		OrderID:      order.ID(),
		Total:        order.Total().StringFixed(2),
		RewardPoints: checkout.RewardPointsFor(order.Total()),
	}

	if err := shared.NotifyAll(uc.notifier, events); err != nil {
		return nil, fmt.Errorf("order %s placed, notify events: %w", order.ID(), err)
	}
	return result, nil
}

func (uc *PlaceOrderUseCase) buildItems(ctx shared.TransactionContext, lines []PlaceOrderLine) ([]checkout.OrderItem, error) {
	items := make([]checkout.OrderItem, 0, len(lines))
	for i, line := range lines {
		p, err := uc.productRepo.Find(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := checkout.NewOrderItem(strconv.Itoa(i+1), p.Name(), p.Price(), p.ID(), line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
