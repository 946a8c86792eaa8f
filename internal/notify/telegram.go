package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/misoniwath/Omega-coffee-order/internal/orders"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type sendMessageReq struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResp struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// rejectedError is a definitive answer from the API (4xx). It fails the order
// but does not count against the breaker.
type rejectedError struct {
	status int
	desc   string
}

func (e *rejectedError) Error() string {
	return fmt.Sprintf("telegram rejected message: status %d: %s", e.status, e.desc)
}

// TelegramSink posts order messages to a chat through the Bot API sendMessage method.
type TelegramSink struct {
	endpoint string
	chatID   string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker[orders.Delivery]
}

func NewTelegramSink(apiURL, token, chatID string, timeout time.Duration) *TelegramSink {
	if timeout <= 0 {
		timeout = orders.DefaultRelayTimeout
	}
	return &TelegramSink{
		endpoint: strings.TrimRight(apiURL, "/") + "/bot" + token + "/sendMessage",
		chatID:   chatID,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: gobreaker.NewCircuitBreaker[orders.Delivery](gobreaker.Settings{
			Name:        "telegram",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(c gobreaker.Counts) bool {
				return c.ConsecutiveFailures >= 5
			},
			IsSuccessful: func(err error) bool {
				var rej *rejectedError
				return err == nil || errors.As(err, &rej)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Printf("breaker %s: %s -> %s", name, from, to)
			},
		}),
	}
}

func (s *TelegramSink) Send(ctx context.Context, text string) (orders.Delivery, error) {
	d, err := s.breaker.Execute(func() (orders.Delivery, error) {
		return s.post(ctx, text)
	})
	if err == nil {
		return d, nil
	}
	if errors.Is(err, orders.ErrDelivery) {
		return orders.Delivery{}, err
	}
	// breaker open / half-open saturation
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return orders.Delivery{}, fmt.Errorf("%w: %w", orders.ErrDelivery, err)
	}
	return orders.Delivery{}, err
}

func (s *TelegramSink) post(ctx context.Context, text string) (orders.Delivery, error) {
	body, err := json.Marshal(sendMessageReq{ChatID: s.chatID, Text: text, ParseMode: "Markdown"})
	if err != nil {
		return orders.Delivery{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return orders.Delivery{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// jangan sampai token bot ikut ke log
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = "telegram sendMessage"
		}
		return orders.Delivery{}, fmt.Errorf("%w: %w", orders.ErrDelivery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ar apiResp
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		if json.Unmarshal(b, &ar) != nil || ar.Description == "" {
			ar.Description = http.StatusText(resp.StatusCode)
		}
		log.Printf("telegram API error: status=%d description=%q", resp.StatusCode, ar.Description)
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return orders.Delivery{}, fmt.Errorf("%w: %w", orders.ErrDelivery, &rejectedError{status: resp.StatusCode, desc: ar.Description})
		}
		return orders.Delivery{}, fmt.Errorf("%w: telegram status %d: %s", orders.ErrDelivery, resp.StatusCode, ar.Description)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return orders.Delivery{}, nil
}
