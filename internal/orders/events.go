package orders

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const EventOrderRelayed = "OrderRelayed"

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // EventOrderRelayed
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"` // e.g., "order-relay"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order ref
	Payload       json.RawMessage `json:"payload"`
}

// OrderRelayedPayload is a notification of a relayed order, not a record of it:
// nothing reads it back and no consumer is required.
type OrderRelayedPayload struct {
	OrderRef      string          `json:"order_ref"`
	Customer      string          `json:"customer"`
	Location      string          `json:"location"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Notes         string          `json:"notes,omitempty"`
	Items         []Item          `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Simulated     bool            `json:"simulated"`
}
