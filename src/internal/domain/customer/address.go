package customer

import "fmt"

// ===========================
// Address Value Object
// ===========================

// Address 客戶地址值對象
//
// 業務規則：
// 1. street, zip, city 不能為空
// 2. number 必須大於 0
//
// 零值 Address 表示「尚未設定地址」。
type Address struct {
	street string
	number int
	zip    string
	city   string
}

// NewAddress 創建地址（Checked Constructor）
func NewAddress(street string, number int, zip, city string) (Address, error) {
	switch {
	case street == "":
		return Address{}, ErrInvalidAddress.WithContext("field", "street", "reason", "street is required")
	case number <= 0:
		return Address{}, ErrInvalidAddress.WithContext("field", "number", "reason", "number must be greater than zero")
	case zip == "":
		return Address{}, ErrInvalidAddress.WithContext("field", "zip", "reason", "zip is required")
	case city == "":
		return Address{}, ErrInvalidAddress.WithContext("field", "city", "reason", "city is required")
	}

	return Address{street: street, number: number, zip: zip, city: city}, nil
}

// Street 返回街道
func (a Address) Street() string { return a.street }

// Number 返回門牌號碼
func (a Address) Number() int { return a.number }

// Zip 返回郵遞區號
func (a Address) Zip() string { return a.zip }

// City 返回城市
func (a Address) City() string { return a.city }

// IsZero 檢查是否為零值（未設定地址）
func (a Address) IsZero() bool {
	return a == Address{}
}

// Equals 值相等比較
func (a Address) Equals(other Address) bool {
	return a == other
}

// String 格式："Street 1, 1, Zipcode 1 City 1"
func (a Address) String() string {
	if a.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s, %d, %s %s", a.street, a.number, a.zip, a.city)
}
