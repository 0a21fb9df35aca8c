package persistence

import (
	"github.com/jackyeh168/ecommerce/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionContext 實作
// ===========================

// GORMTransactionContext 攜帶 *gorm.DB 的事務上下文
//
// 實作 shared.TransactionContext（標記介面），Domain Layer 看不到 GORM。
// 各 Repository 透過 DB() 取出事務中的連線。
type GORMTransactionContext interface {
	shared.TransactionContext
	GetDB() *gorm.DB
}

type gormTransactionContext struct {
	db *gorm.DB
}

// NewGORMTransactionContext 將 *gorm.DB 包裝為事務上下文
func NewGORMTransactionContext(db *gorm.DB) shared.TransactionContext {
	return &gormTransactionContext{db: db}
}

// GetDB 僅供 Infrastructure Layer 使用
func (ctx *gormTransactionContext) GetDB() *gorm.DB {
	return ctx.db
}

// DB 從事務上下文取出 *gorm.DB
//
// ctx 為 nil 或不是 GORM 實作時返回 fallback（auto-commit 模式）。
func DB(ctx shared.TransactionContext, fallback *gorm.DB) *gorm.DB {
	if gormCtx, ok := ctx.(GORMTransactionContext); ok {
		return gormCtx.GetDB()
	}
	return fallback
}
