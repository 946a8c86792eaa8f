package main

import (
	"context"
	"testing"

	kafkax "github.com/misoniwath/Omega-coffee-order/internal/kafka"
	"github.com/misoniwath/Omega-coffee-order/internal/orders"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTicket(t *testing.T) {
	s := ticket(orders.OrderRelayedPayload{
		OrderRef:      "ref-1",
		Customer:      "Dara",
		Location:      "Street 51",
		PaymentStatus: orders.PaymentPaid,
		Notes:         "less ice",
		Items:         []orders.Item{{Name: "Ice Latte", Price: decimal.RequireFromString("1.50"), Quantity: 3}},
		Total:         decimal.RequireFromString("4.5"),
		Simulated:     true,
	})

	assert.Contains(t, s, "order ref-1")
	assert.Contains(t, s, " 3 x Ice Latte")
	assert.Contains(t, s, "total $4.50")
	assert.Contains(t, s, "(simulated)")
	assert.Contains(t, s, "note: less ice")
}

func TestPrintTicket(t *testing.T) {
	env := orders.Envelope{EventType: orders.EventOrderRelayed, Payload: kafkax.MustMarshal(orders.OrderRelayedPayload{OrderRef: "x"})}
	assert.NoError(t, printTicket(context.Background(), kafkago.Message{Value: kafkax.MustMarshal(env)}))

	other := orders.Envelope{EventType: "Something", Payload: []byte(`"ignored"`)}
	assert.NoError(t, printTicket(context.Background(), kafkago.Message{Value: kafkax.MustMarshal(other)}))

	assert.Error(t, printTicket(context.Background(), kafkago.Message{Value: []byte("not json")}))
}
