package persistence

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 開啟 SQLite 資料庫
//
// in-memory DSN 限制為單一連線：SQLite 的 :memory: 資料庫綁定在連線上，
// 多條連線會看到各自獨立的空資料庫。
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if IsMemoryDSN(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// IsMemoryDSN 判斷 DSN 是否為 SQLite in-memory 資料庫
func IsMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// Close 關閉底層連線
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
