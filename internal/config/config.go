package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr    string
	ServiceName string

	// Messaging sink. Empty token or chat id switches the relay to simulated mode.
	TelegramBotToken string
	TelegramChatID   string
	TelegramAPIURL   string
	RelayTimeout     time.Duration

	// Optional infrastructure; empty values disable the component.
	PostgresDSN    string
	RedisAddr      string
	OrderRateLimit int // submissions per client IP per minute
	KafkaBrokers   []string

	OrderFeedGroup   string
	OrderFeedWorkers int

	StorefrontAPIURL string
	StorefrontLang   string
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8081"),
		ServiceName: getenv("SERVICE_NAME", "order-relay"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		TelegramAPIURL:   getenv("TELEGRAM_API_URL", "https://api.telegram.org"),
		RelayTimeout:     getduration("RELAY_TIMEOUT", 5*time.Second),

		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		OrderRateLimit: getint("ORDER_RATE_LIMIT", 10),
		KafkaBrokers:   splitCSV(os.Getenv("KAFKA_BROKERS")),

		OrderFeedGroup:   getenv("ORDERFEED_GROUP", "orderfeed"),
		OrderFeedWorkers: getint("ORDERFEED_WORKERS", 2),

		StorefrontAPIURL: getenv("STOREFRONT_API_URL", "http://localhost:8081"),
		StorefrontLang:   getenv("STOREFRONT_LANG", "km"),
	}
}

// SinkConfigured reports whether both Telegram credentials are present.
func (c Config) SinkConfigured() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
