// Package notify implements the order message sinks.
package notify

import (
	"context"
	"log"
	"time"

	"github.com/misoniwath/Omega-coffee-order/internal/orders"
)

// LogSink is the simulated sink used when Telegram credentials are missing.
// Messages are logged and reported as delivered.
type LogSink struct{}

func (LogSink) Send(_ context.Context, text string) (orders.Delivery, error) {
	log.Printf("telegram credentials missing, simulating order:\n%s", text)
	return orders.Delivery{Simulated: true}, nil
}

// New picks the sink: Telegram when both token and chat id are set, LogSink otherwise.
func New(apiURL, token, chatID string, timeout time.Duration) orders.MessageSink {
	if token == "" || chatID == "" {
		return LogSink{}
	}
	return NewTelegramSink(apiURL, token, chatID, timeout)
}
