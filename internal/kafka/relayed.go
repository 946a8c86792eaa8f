package kafka

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/misoniwath/Omega-coffee-order/internal/orders"
	"github.com/segmentio/kafka-go"
)

// RelayedPublisher emits an OrderRelayed envelope for every relayed order.
// Publishing is best effort: a full buffer drops the event.
type RelayedPublisher struct {
	Producer *Producer
	Service  string
}

func (p *RelayedPublisher) PublishRelayed(ctx context.Context, ev orders.OrderRelayedPayload) {
	env := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderRelayed,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      p.Service,
		TraceID:       traceID(ctx),
		CorrelationID: ev.OrderRef,
		Payload:       MustMarshal(ev),
	}
	ok := p.Producer.Publish(orders.PartitionKey(ev.OrderRef), MustMarshal(env),
		kafka.Header{Key: "x-event-type", Value: []byte(orders.EventOrderRelayed)},
		kafka.Header{Key: "x-event-version", Value: []byte("1")},
	)
	if !ok {
		log.Printf("order %s: producer full or closed, %s dropped", ev.OrderRef, orders.EventOrderRelayed)
	}
}

type traceKey struct{}

// WithTraceID attaches the request id carried into event envelopes.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

func traceID(ctx context.Context) string {
	s, _ := ctx.Value(traceKey{}).(string)
	return s
}
