package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	t.Setenv("QUOTE_MAPS_API_KEY", "key-123")

	cfg, err := fromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, ":8004", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "key-123", cfg.Maps.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Maps.Timeout)
	assert.Equal(t, "ug", cfg.Maps.Region)
	assert.Equal(t, 2000.0, cfg.Pricing.DefaultFeePerKm)
	assert.Equal(t, 5.0, cfg.Pricing.FreeDeliveryKm)
	assert.False(t, cfg.DBConfig.Enabled())
	assert.Empty(t, cfg.KafkaConfig.Brokers)
	assert.Empty(t, cfg.RedisConfig.Addr)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_Overrides(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "fallback-key")
	t.Setenv("QUOTE_SERVICE_PORT", "9090")
	t.Setenv("QUOTE_MAPS_TIMEOUT", "3s")
	t.Setenv("QUOTE_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("QUOTE_DB_HOST", "db")
	t.Setenv("QUOTE_DB_PASSWORD", "secret")
	t.Setenv("QUOTE_FREE_DELIVERY_KM", "2.5")

	cfg, err := fromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, "fallback-key", cfg.Maps.APIKey)
	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.Maps.Timeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaConfig.Brokers)
	assert.True(t, cfg.DBConfig.Enabled())
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=quote sslmode=disable", cfg.DBConfig.DSN())
	assert.Equal(t, 2.5, cfg.Pricing.FreeDeliveryKm)
}

func TestFromViper_Invalid(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		t.Setenv("QUOTE_MAPS_API_KEY", "")
		t.Setenv("GOOGLE_MAPS_API_KEY", "")
		_, err := fromViper(newViper())
		assert.Error(t, err)
	})

	t.Run("non-positive fee", func(t *testing.T) {
		t.Setenv("QUOTE_MAPS_API_KEY", "k")
		t.Setenv("QUOTE_DEFAULT_FEE_PER_KM", "0")
		_, err := fromViper(newViper())
		assert.Error(t, err)
	})
}
