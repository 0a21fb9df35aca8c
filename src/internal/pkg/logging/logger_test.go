package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Test 1: 無效的日誌等級返回錯誤
func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger("shop", "test", "loud")

	assert.Error(t, err)
	assert.Panics(t, func() { MustNewLogger("shop", "test", "loud") })
}

// Test 2: LOG_FILE 收到 JSON 日誌，低於等級的日誌被過濾
func TestNewLogger_WritesJSONToLogFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "logs", "shop.log")
	t.Setenv("LOG_FILE", path)

	logger, err := NewLogger("shop", "test", "info")
	require.NoError(t, err)

	// Act
	logger.Debug("hidden")
	logger.Info("customer_created", zap.String("customer_id", "123"))
	_ = logger.Sync()

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1, "debug entries are below the configured level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "customer_created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "shop", entry["service"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, "123", entry["customer_id"])
	assert.Contains(t, entry, "ts")
}
