package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/misoniwath/Omega-coffee-order/internal/orders"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	closed bool
}

func (w *memWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *memWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func TestProducer_FlushesOnClose(t *testing.T) {
	w := &memWriter{}
	p := NewProducerWithWriter(w, 8)
	p.Start()

	assert.True(t, p.Publish([]byte("k1"), []byte("v1")))
	assert.True(t, p.Publish([]byte("k2"), []byte("v2")))
	p.Close()
	p.WaitClosed()

	require.Len(t, w.msgs, 2)
	assert.Equal(t, "v2", string(w.msgs[1].Value))
	assert.True(t, w.closed)
}

func TestProducer_PublishDoesNotBlockWhenFull(t *testing.T) {
	p := NewProducerWithWriter(&memWriter{}, 1) // not started

	assert.True(t, p.Publish(nil, []byte("a")))
	assert.False(t, p.Publish(nil, []byte("b")))
}

func TestProducer_PublishAfterCloseDropped(t *testing.T) {
	w := &memWriter{}
	p := NewProducerWithWriter(w, 4)
	p.Start()
	p.Close()
	p.WaitClosed()

	assert.NotPanics(t, func() {
		assert.False(t, p.Publish([]byte("k"), []byte("late")))
		(&RelayedPublisher{Producer: p, Service: "order-relay"}).
			PublishRelayed(context.Background(), orders.OrderRelayedPayload{OrderRef: "late"})
		p.Close()
	})
	assert.Empty(t, w.msgs)
}

func TestDecodeEvent(t *testing.T) {
	env := orders.Envelope{
		EventType: orders.EventOrderRelayed,
		Payload:   MustMarshal(orders.OrderRelayedPayload{OrderRef: "ref-9", Customer: "Dara"}),
	}
	p, ok, err := DecodeEvent[orders.OrderRelayedPayload](MustMarshal(env), orders.EventOrderRelayed)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ref-9", p.OrderRef)

	_, ok, err = DecodeEvent[orders.OrderRelayedPayload](MustMarshal(env), "SomethingElse")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = DecodeEvent[orders.OrderRelayedPayload]([]byte("{"), orders.EventOrderRelayed)
	assert.Error(t, err)

	bad := orders.Envelope{EventType: orders.EventOrderRelayed, Payload: []byte(`"oops"`)}
	_, _, err = DecodeEvent[orders.OrderRelayedPayload](MustMarshal(bad), orders.EventOrderRelayed)
	assert.Error(t, err)
}

func TestRelayedPublisher_Envelope(t *testing.T) {
	w := &memWriter{}
	prod := NewProducerWithWriter(w, 4)
	prod.Start()

	pub := &RelayedPublisher{Producer: prod, Service: "order-relay"}
	ctx := WithTraceID(context.Background(), "req-1")
	pub.PublishRelayed(ctx, orders.OrderRelayedPayload{
		OrderRef: "ref-1",
		Customer: "Dara",
		Items:    []orders.Item{{Name: "Latte", Price: decimal.RequireFromString("1.25"), Quantity: 2}},
		Total:    decimal.RequireFromString("2.50"),
	})
	prod.Close()
	prod.WaitClosed()

	require.Len(t, w.msgs, 1)
	m := w.msgs[0]
	assert.Equal(t, "ref-1", string(m.Key))
	assert.Equal(t, "x-event-type", m.Headers[0].Key)

	var env orders.Envelope
	require.NoError(t, json.Unmarshal(m.Value, &env))
	assert.Equal(t, orders.EventOrderRelayed, env.EventType)
	assert.Equal(t, "order-relay", env.Producer)
	assert.Equal(t, "req-1", env.TraceID)
	assert.Equal(t, "ref-1", env.CorrelationID)

	p, err := UnwrapPayload[orders.OrderRelayedPayload](env.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Dara", p.Customer)
	assert.Equal(t, "2.50", p.Total.StringFixed(2))
}

type memReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []int64
	closed    bool
}

func (r *memReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.msgs) > 0 {
		m := r.msgs[0]
		r.msgs = r.msgs[1:]
		r.mu.Unlock()
		return m, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *memReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *memReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func TestConsumer_CommitsOnlyHandled(t *testing.T) {
	r := &memReader{msgs: []kafka.Message{{Offset: 1}, {Offset: 2}, {Offset: 3}}}
	c := NewConsumerWithReader(r, 2)

	var mu sync.Mutex
	seen := 0
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Start(ctx, func(_ context.Context, m kafka.Message) error {
			mu.Lock()
			seen++
			mu.Unlock()
			if m.Offset == 2 {
				return errors.New("bad message")
			}
			return nil
		})
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen == 3
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.ElementsMatch(t, []int64{1, 3}, r.committed)
	assert.True(t, r.closed)
}
