package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/misoniwath/Omega-coffee-order/internal/catalog"
	"github.com/misoniwath/Omega-coffee-order/internal/config"
	"github.com/misoniwath/Omega-coffee-order/internal/httpx"
	kafkax "github.com/misoniwath/Omega-coffee-order/internal/kafka"
	"github.com/misoniwath/Omega-coffee-order/internal/notify"
	"github.com/misoniwath/Omega-coffee-order/internal/orders"
	"github.com/misoniwath/Omega-coffee-order/internal/postgres"
	"github.com/misoniwath/Omega-coffee-order/internal/redisx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalog: DB kalau ada, kalau tidak pakai menu bawaan
	cat := catalog.Default()
	if cfg.PostgresDSN != "" {
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		cat, err = (&catalog.Repo{DB: db}).Load(ctx)
		db.Close()
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
	}
	log.Printf("catalog: %d categories, %d products", len(cat.Categories()), len(cat.Products()))

	// Sink
	sink := notify.New(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.TelegramChatID, cfg.RelayTimeout)
	if !cfg.SinkConfigured() {
		log.Println("TELEGRAM_BOT_TOKEN/TELEGRAM_CHAT_ID not set: orders will be simulated")
	}
	relay := &orders.Relay{Sink: sink, Timeout: cfg.RelayTimeout}

	// Kafka (optional)
	var prod *kafkax.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod = kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderRelayed, 1024)
		prod.Start()
		relay.Events = &kafkax.RelayedPublisher{Producer: prod, Service: cfg.ServiceName}
	}

	// Redis (optional)
	oh := &httpx.OrdersHandler{Relay: relay}
	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		if err := redisx.Ping(ctx, rdb); err != nil {
			log.Printf("redis %s unreachable, rate limit fails open: %v", cfg.RedisAddr, err)
		}
		oh.Limiter = redisx.NewOrderLimiter(rdb, cfg.OrderRateLimit)
	}

	router := httpx.NewRouter()
	oh.Register(router)
	(&httpx.CatalogHandler{Catalog: cat}).Register(router)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      otelhttp.NewHandler(router, cfg.ServiceName),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if prod != nil {
		prod.Close()
		prod.WaitClosed()
	}
}
