package checkout

import "github.com/jackyeh168/ecommerce/src/internal/domain/shared"

// ===========================
// Checkout Domain 錯誤定義
// ===========================

const (
	ErrCodeOrderIDRequired       shared.ErrorCode = "ORDER_ID_REQUIRED"
	ErrCodeOrderCustomerRequired shared.ErrorCode = "ORDER_CUSTOMER_REQUIRED"
	ErrCodeOrderItemsRequired    shared.ErrorCode = "ORDER_ITEMS_REQUIRED"
	ErrCodeInvalidOrderItem      shared.ErrorCode = "INVALID_ORDER_ITEM"
	ErrCodeInvalidQuantity       shared.ErrorCode = "INVALID_QUANTITY"
	ErrCodeNegativePrice         shared.ErrorCode = "ORDER_ITEM_PRICE_NEGATIVE"
	ErrCodeOrderNotFound         shared.ErrorCode = "ORDER_NOT_FOUND"
	ErrCodeRepositoryError       shared.ErrorCode = "ORDER_REPOSITORY_ERROR"
)

var (
	// ErrOrderIDRequired 訂單 ID 為空
	ErrOrderIDRequired = &shared.DomainError{
		Code:    ErrCodeOrderIDRequired,
		Message: "Id is required",
	}

	// ErrCustomerIDRequired 訂單缺少客戶 ID
	ErrCustomerIDRequired = &shared.DomainError{
		Code:    ErrCodeOrderCustomerRequired,
		Message: "CustomerId is required",
	}

	// ErrItemsRequired 訂單至少需要一個項目
	ErrItemsRequired = &shared.DomainError{
		Code:    ErrCodeOrderItemsRequired,
		Message: "Items are required",
	}

	// ErrInvalidOrderItem 訂單項目缺少 ID、名稱或商品 ID
	ErrInvalidOrderItem = &shared.DomainError{
		Code:    ErrCodeInvalidOrderItem,
		Message: "無效的訂單項目",
	}

	// ErrInvalidQuantity 數量必須大於 0
	ErrInvalidQuantity = &shared.DomainError{
		Code:    ErrCodeInvalidQuantity,
		Message: "數量必須大於 0",
	}

	// ErrNegativePrice 單價不能為負數
	ErrNegativePrice = &shared.DomainError{
		Code:    ErrCodeNegativePrice,
		Message: "單價不能為負數",
	}

	// ErrOrderNotFound 訂單不存在
	ErrOrderNotFound = &shared.DomainError{
		Code:    ErrCodeOrderNotFound,
		Message: "訂單不存在",
	}

	// ErrRepositoryError 倉儲操作錯誤（通用）
	ErrRepositoryError = &shared.DomainError{
		Code:    ErrCodeRepositoryError,
		Message: "訂單倉儲操作失敗",
	}
)
