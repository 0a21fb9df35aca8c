package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix 所有環境變數的前綴（SHOP_APP_ENV, SHOP_DATABASE_DSN, ...）
const Prefix = "SHOP"

// Config 應用程式設定
type Config struct {
	AppEnv        string `envconfig:"APP_ENV" default:"development"`
	ServiceName   string `envconfig:"SERVICE_NAME" default:"shop"`
	DatabaseDSN   string `envconfig:"DATABASE_DSN" default:"file::memory:?cache=shared"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	MetricsAddr   string `envconfig:"METRICS_ADDR"`
	MailRecipient string `envconfig:"MAIL_RECIPIENT" default:"sales@example.com"`
}

// Load 讀取設定
//
// 先載入 envFiles（預設 .env；檔案不存在時略過，已存在的環境變數不會被覆蓋），
// 再以 envconfig 解析 SHOP_ 前綴的環境變數。
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 檢查必要欄位
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("config: SHOP_DATABASE_DSN must not be empty")
	}
	if c.ServiceName == "" {
		return errors.New("config: SHOP_SERVICE_NAME must not be empty")
	}
	return nil
}

// MetricsEnabled 是否開啟 /metrics 端點
func (c *Config) MetricsEnabled() bool {
	return c.MetricsAddr != ""
}
