// Command orderfeed prints a ticket for every relayed order published on Kafka,
// e.g. for a bar-side screen or printer.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/misoniwath/Omega-coffee-order/internal/config"
	kafkax "github.com/misoniwath/Omega-coffee-order/internal/kafka"
	"github.com/misoniwath/Omega-coffee-order/internal/orders"
	kafkago "github.com/segmentio/kafka-go"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.OrderFeedGroup, orders.TopicOrderRelayed, cfg.OrderFeedWorkers)
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Printf("orderfeed started: group=%s topic=%s workers=%d", cfg.OrderFeedGroup, orders.TopicOrderRelayed, cfg.OrderFeedWorkers)
		if err := cons.Start(ctx, printTicket); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Println("shutting down consumer...")
	cancel()
	<-done
}

func printTicket(_ context.Context, m kafkago.Message) error {
	p, ok, err := kafkax.DecodeEvent[orders.OrderRelayedPayload](m.Value, orders.EventOrderRelayed)
	if err != nil || !ok {
		return err
	}
	log.Print(ticket(p))
	return nil
}

func ticket(p orders.OrderRelayedPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "---- order %s ----\n", p.OrderRef)
	fmt.Fprintf(&b, "%s @ %s\n", p.Customer, p.Location)
	for _, it := range p.Items {
		fmt.Fprintf(&b, "  %2d x %s\n", it.Quantity, it.Name)
	}
	fmt.Fprintf(&b, "total $%s  %s", p.Total.StringFixed(2), orders.PaymentLabel(p.PaymentStatus))
	if p.Simulated {
		b.WriteString("  (simulated)")
	}
	if p.Notes != "" {
		fmt.Fprintf(&b, "\nnote: %s", p.Notes)
	}
	return b.String()
}
