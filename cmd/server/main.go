package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pbtc21/token-health/api"
	"github.com/pbtc21/token-health/cache"
	"github.com/pbtc21/token-health/clients"
	"github.com/pbtc21/token-health/config"
)

func main() {
	cfg := config.Load()

	if cfg.PaymentAddress == "" {
		log.Fatal("PAYMENT_ADDRESS is required")
	}

	// Prefer the shared SQL cache when a database is configured, fall back
	// to the in-process cache otherwise.
	var responseCache cache.Cache = cache.NewMemory()
	if cfg.DatabaseURL != "" {
		// Back the "postgres" driver name the cache opens with using pgx
		sql.Register("postgres", stdlib.GetDefaultDriver())
		sqlCache, err := cache.NewSQL(cfg.DatabaseURL)
		if err != nil {
			log.Printf("warning: sql cache unavailable, using memory cache: %v", err)
		} else {
			defer sqlCache.Close()
			responseCache = sqlCache
		}
	}

	provider := clients.NewTeneroClient(cfg.TeneroBaseURL)
	srv := api.New(cfg, provider, responseCache)

	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	errCh := make(chan error, 1)
	go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
	log.Printf("listening on %s (network=%s)", cfg.ListenAddr, cfg.PaymentNetwork)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
	case err := <-errCh:
		log.Fatal(fmt.Errorf("server error: %w", err))
	}
}
