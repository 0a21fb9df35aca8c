package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Arrange
	missing := filepath.Join(t.TempDir(), "missing.env")

	// Act
	cfg, err := Load(missing)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "shop", cfg.ServiceName)
	assert.Equal(t, "file::memory:?cache=shared", cfg.DatabaseDSN)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "sales@example.com", cfg.MailRecipient)
	assert.False(t, cfg.MetricsEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SHOP_APP_ENV", "production")
	t.Setenv("SHOP_DATABASE_DSN", "shop.db")
	t.Setenv("SHOP_LOG_LEVEL", "debug")
	t.Setenv("SHOP_METRICS_ADDR", ":9090")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "shop.db", cfg.DatabaseDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.MetricsEnabled())
}

func TestLoad_FromEnvFile_DoesNotOverrideEnvironment(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SHOP_SERVICE_NAME=from-file\nSHOP_LOG_LEVEL=warn\n"), 0o600))
	t.Setenv("SHOP_LOG_LEVEL", "error")
	// godotenv.Load 會寫入行程環境；先以 t.Setenv 註冊還原
	t.Setenv("SHOP_SERVICE_NAME", "")
	require.NoError(t, os.Unsetenv("SHOP_SERVICE_NAME"))

	// Act
	cfg, err := Load(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.ServiceName)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestValidate_EmptyDSN(t *testing.T) {
	cfg := &Config{ServiceName: "shop"}

	assert.Error(t, cfg.Validate())
}
