package customer

import "github.com/jackyeh168/ecommerce/src/internal/domain/shared"

// ===========================
// Customer Domain 錯誤定義
// ===========================

// Customer Domain 錯誤代碼常量
const (
	ErrCodeCustomerIDRequired   shared.ErrorCode = "CUSTOMER_ID_REQUIRED"
	ErrCodeCustomerNameRequired shared.ErrorCode = "CUSTOMER_NAME_REQUIRED"
	ErrCodeAddressRequired      shared.ErrorCode = "ADDRESS_REQUIRED"
	ErrCodeInvalidAddress       shared.ErrorCode = "INVALID_ADDRESS"
	ErrCodeInvalidRewardPoints  shared.ErrorCode = "INVALID_REWARD_POINTS"
	ErrCodeCustomerNotFound     shared.ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodeRepositoryError      shared.ErrorCode = "CUSTOMER_REPOSITORY_ERROR"
)

var (
	// ErrCustomerIDRequired 客戶 ID 為空
	ErrCustomerIDRequired = &shared.DomainError{
		Code:    ErrCodeCustomerIDRequired,
		Message: "客戶 ID 不能為空",
	}

	// ErrCustomerNameRequired 客戶名稱為空
	ErrCustomerNameRequired = &shared.DomainError{
		Code:    ErrCodeCustomerNameRequired,
		Message: "客戶名稱不能為空",
	}

	// ErrAddressRequired 啟用客戶前必須設定地址
	ErrAddressRequired = &shared.DomainError{
		Code:    ErrCodeAddressRequired,
		Message: "啟用客戶前必須設定地址",
	}

	// ErrInvalidAddress 地址欄位無效
	//
	// 觸發條件：
	// - street / zip / city 為空
	// - number <= 0
	ErrInvalidAddress = &shared.DomainError{
		Code:    ErrCodeInvalidAddress,
		Message: "地址格式無效",
	}

	// ErrInvalidRewardPoints 獎勵積分為負數
	ErrInvalidRewardPoints = &shared.DomainError{
		Code:    ErrCodeInvalidRewardPoints,
		Message: "獎勵積分不能為負數",
	}

	// ErrCustomerNotFound 客戶不存在
	ErrCustomerNotFound = &shared.DomainError{
		Code:    ErrCodeCustomerNotFound,
		Message: "客戶不存在",
	}

	// ErrRepositoryError 倉儲操作錯誤（通用）
	ErrRepositoryError = &shared.DomainError{
		Code:    ErrCodeRepositoryError,
		Message: "客戶倉儲操作失敗",
	}
)
