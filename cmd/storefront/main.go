// Command storefront is a terminal ordering client for the relay API.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/misoniwath/Omega-coffee-order/internal/catalog"
	"github.com/misoniwath/Omega-coffee-order/internal/config"
	"github.com/misoniwath/Omega-coffee-order/internal/storefront"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := storefront.NewClient(cfg.StorefrontAPIURL, cfg.RelayTimeout*2)

	cat, err := client.FetchCatalog(ctx)
	if err != nil {
		log.Printf("fetch catalog from %s: %v (using built-in menu)", cfg.StorefrontAPIURL, err)
		cat = catalog.Default()
	}

	lang, _ := catalog.ParseLanguage(cfg.StorefrontLang)
	session := storefront.NewSession(cat, client, lang)

	if err := storefront.NewShell(session, os.Stdin, os.Stdout).Run(ctx); err != nil {
		log.Fatalf("storefront: %v", err)
	}
}
