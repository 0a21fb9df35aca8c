package product

import "github.com/jackyeh168/ecommerce/src/internal/domain/shared"

// ===========================
// Product Domain 錯誤定義
// ===========================

const (
	ErrCodeProductIDRequired   shared.ErrorCode = "PRODUCT_ID_REQUIRED"
	ErrCodeProductNameRequired shared.ErrorCode = "PRODUCT_NAME_REQUIRED"
	ErrCodeProductPriceInvalid shared.ErrorCode = "PRODUCT_PRICE_NEGATIVE"
	ErrCodeProductNotFound     shared.ErrorCode = "PRODUCT_NOT_FOUND"
	ErrCodeRepositoryError     shared.ErrorCode = "PRODUCT_REPOSITORY_ERROR"
)

var (
	// ErrProductIDRequired 商品 ID 為空
	ErrProductIDRequired = &shared.DomainError{
		Code:    ErrCodeProductIDRequired,
		Message: "商品 ID 不能為空",
	}

	// ErrProductNameRequired 商品名稱為空
	ErrProductNameRequired = &shared.DomainError{
		Code:    ErrCodeProductNameRequired,
		Message: "商品名稱不能為空",
	}

	// ErrNegativePrice 商品價格不能為負數
	ErrNegativePrice = &shared.DomainError{
		Code:    ErrCodeProductPriceInvalid,
		Message: "商品價格不能為負數",
	}

	// ErrProductNotFound 商品不存在
	ErrProductNotFound = &shared.DomainError{
		Code:    ErrCodeProductNotFound,
		Message: "商品不存在",
	}

	// ErrRepositoryError 倉儲操作錯誤（通用）
	ErrRepositoryError = &shared.DomainError{
		Code:    ErrCodeRepositoryError,
		Message: "商品倉儲操作失敗",
	}
)
