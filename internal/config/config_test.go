package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "RELAY_TIMEOUT", "KAFKA_BROKERS", "ORDER_RATE_LIMIT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Second, cfg.RelayTimeout)
	assert.Equal(t, 10, cfg.OrderRateLimit)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.SinkConfigured())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100")
	t.Setenv("RELAY_TIMEOUT", "2s")
	t.Setenv("KAFKA_BROKERS", "k1:9092, ,k2:9092")
	t.Setenv("ORDER_RATE_LIMIT", "bogus")

	cfg := Load()
	assert.True(t, cfg.SinkConfigured())
	assert.Equal(t, 2*time.Second, cfg.RelayTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 10, cfg.OrderRateLimit)
}

func TestSinkConfigured_NeedsBoth(t *testing.T) {
	assert.False(t, Config{TelegramBotToken: "x"}.SinkConfigured())
	assert.False(t, Config{TelegramChatID: "y"}.SinkConfigured())
}
