package checkout

import (
	"fmt"

	"github.com/jackyeh168/ecommerce/src/internal/domain/checkout"
)

// OrderSummary 單筆訂單摘要
type OrderSummary struct {
	OrderID    string
	CustomerID string
	ItemCount  int
	Total      string
}

// ListOrdersResult 訂單列表與總額
type ListOrdersResult struct {
	Orders     []OrderSummary
	GrandTotal string
}

// ListOrdersUseCase 列出所有訂單並以 OrderService.Total 計算總額
type ListOrdersUseCase struct {
	orderRepo    checkout.OrderRepository
	orderService *checkout.OrderService
}

// NewListOrdersUseCase 創建 Use Case 實例
func NewListOrdersUseCase(orderRepo checkout.OrderRepository, orderService *checkout.OrderService) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo:    orderRepo,
		orderService: orderService,
	}
}

// Execute 執行查詢（auto-commit）
func (uc *ListOrdersUseCase) Execute() (*ListOrdersResult, error) {
	orders, err := uc.orderRepo.FindAll(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, OrderSummary{
			OrderID:    o.ID(),
			CustomerID: o.CustomerID(),
			ItemCount:  len(o.Items()),
			Total:      o.Total().StringFixed(2),
		})
	}

	return &ListOrdersResult{
		Orders:     summaries,
		GrandTotal: uc.orderService.Total(orders).StringFixed(2),
	}, nil
}
