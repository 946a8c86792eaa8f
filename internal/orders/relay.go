package orders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const DefaultRelayTimeout = 5 * time.Second

// Delivery reports how a sink handled a message.
type Delivery struct {
	Simulated bool
}

// MessageSink delivers one formatted order message to the shop operator.
// Delivery failures must wrap ErrDelivery.
type MessageSink interface {
	Send(ctx context.Context, text string) (Delivery, error)
}

// Publisher receives a notification after every successful relay.
type Publisher interface {
	PublishRelayed(ctx context.Context, ev OrderRelayedPayload)
}

type Result struct {
	OrderRef  string
	Simulated bool
}

// Relay is stateless; one instance serves all requests.
type Relay struct {
	Sink    MessageSink
	Events  Publisher     // optional
	Timeout time.Duration // bound on the sink call, DefaultRelayTimeout if zero
}

func (r *Relay) Submit(ctx context.Context, p Payload) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	ref := uuid.NewString()
	msg := FormatMessage(p)

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultRelayTimeout
	}
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	d, err := r.send(sendCtx, msg)
	if err != nil {
		if errors.Is(err, ErrDelivery) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Result{}, &RelayError{Err: err}
		}
		return Result{}, &InternalError{Err: err}
	}
	log.Printf("order %s relayed (simulated=%t, items=%d, total=%s)", ref, d.Simulated, len(p.Items), p.Total().StringFixed(2))

	if r.Events != nil {
		r.Events.PublishRelayed(ctx, OrderRelayedPayload{
			OrderRef:      ref,
			Customer:      p.Name,
			Location:      p.Location,
			PaymentStatus: p.PaymentStatus,
			Notes:         p.Notes,
			Items:         p.Items,
			Total:         p.Total(),
			Simulated:     d.Simulated,
		})
	}
	return Result{OrderRef: ref, Simulated: d.Simulated}, nil
}

func (r *Relay) send(ctx context.Context, msg string) (d Delivery, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("sink panic: %v", rec)
		}
	}()
	if r.Sink == nil {
		return Delivery{}, errors.New("no message sink configured")
	}
	return r.Sink.Send(ctx, msg)
}
