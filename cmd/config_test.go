package cmd_test

import (
	"testing"
	"time"

	"ordering/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "CATALOG_HTTP_PORT", "DB_HOST", "CATALOG_SERVICE_URL", "CATALOG_TIMEOUT",
		"CATALOG_SEED", "KAFKA_HOST", "KAFKA_ORDER_CHANGED_TOPIC", "ORDER_STATS_SCHEDULE",
		"SHUTDOWN_TIMEOUT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	config, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "8081", config.CatalogHTTPPort)
	assert.Equal(t, "localhost", config.DBHost)
	assert.Equal(t, "http://localhost:8081", config.CatalogServiceURL)
	assert.Equal(t, 5*time.Second, config.CatalogTimeout)
	assert.True(t, config.CatalogSeed)
	assert.Empty(t, config.KafkaHost)
	assert.Equal(t, "order.changed", config.KafkaOrderChangedTopic)
	assert.Equal(t, "*/30 * * * * *", config.OrderStatsSchedule)
	assert.Equal(t, 10*time.Second, config.ShutdownTimeout)
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_TIMEOUT", "250ms")
	t.Setenv("CATALOG_SEED", "false")
	t.Setenv("KAFKA_HOST", "kafka:9092")
	t.Setenv("DB_NAME", "orders")

	config, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, 250*time.Millisecond, config.CatalogTimeout)
	assert.False(t, config.CatalogSeed)
	assert.Equal(t, "kafka:9092", config.KafkaHost)
	assert.Contains(t, config.DSN(), "dbname=orders")
}

func TestLoadConfig_MalformedValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "CATALOG_TIMEOUT", value: "five seconds"},
		{key: "CATALOG_TIMEOUT", value: "-1s"},
		{key: "SHUTDOWN_TIMEOUT", value: "0s"},
		{key: "CATALOG_SEED", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := cmd.LoadConfig()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
