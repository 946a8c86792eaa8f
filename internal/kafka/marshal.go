package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/misoniwath/Omega-coffee-order/internal/orders"
)

// MustMarshal is for values we build ourselves (envelopes, payloads); a failure is a bug.
func MustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// UnwrapPayload memudahkan decode payload spesifik
func UnwrapPayload[T any](payload json.RawMessage) (T, error) {
	var t T
	if err := json.Unmarshal(payload, &t); err != nil {
		return t, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}

// DecodeEvent reads an envelope from a message value and returns its payload when the
// event type matches. ok is false for other event types, which consumers skip.
func DecodeEvent[T any](value []byte, eventType string) (payload T, ok bool, err error) {
	var env orders.Envelope
	if err = json.Unmarshal(value, &env); err != nil {
		return payload, false, fmt.Errorf("decode envelope: %w", err)
	}
	if env.EventType != eventType {
		return payload, false, nil
	}
	if env.EventVersion > 1 {
		return payload, false, fmt.Errorf("%s version %d not supported", eventType, env.EventVersion)
	}
	payload, err = UnwrapPayload[T](env.Payload)
	if err != nil {
		return payload, false, err
	}
	return payload, true, nil
}
