package config

import (
	"testing"

	"github.com/pbtc21/token-health/types"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.PaymentNetwork != types.NetworkMainnet {
		t.Errorf("PaymentNetwork = %q, want mainnet", cfg.PaymentNetwork)
	}
	if cfg.PaymentAmountSTX != 0.01 {
		t.Errorf("PaymentAmountSTX = %v, want 0.01", cfg.PaymentAmountSTX)
	}
	if cfg.PaymentAmountSBTC != 0.00000001 {
		t.Errorf("PaymentAmountSBTC = %v, want 1 sat", cfg.PaymentAmountSBTC)
	}
	if cfg.ExpirationSeconds != 300 || cfg.CacheTTLSeconds != 300 {
		t.Errorf("windows = %d/%d, want 300/300", cfg.ExpirationSeconds, cfg.CacheTTLSeconds)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("PAYMENT_NETWORK", "testnet")
	t.Setenv("PAYMENT_AMOUNT_STX", "0.5")
	t.Setenv("PAYMENT_EXPIRATION_SECONDS", "60")
	t.Setenv("DATABASE_URL", "postgres://localhost/cache")

	cfg := Load()

	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.PaymentNetwork != types.NetworkTestnet {
		t.Errorf("PaymentNetwork = %q, want testnet", cfg.PaymentNetwork)
	}
	if cfg.PaymentAmountSTX != 0.5 {
		t.Errorf("PaymentAmountSTX = %v", cfg.PaymentAmountSTX)
	}
	if cfg.ExpirationSeconds != 60 {
		t.Errorf("ExpirationSeconds = %d", cfg.ExpirationSeconds)
	}
	if cfg.DatabaseURL == "" {
		t.Error("DatabaseURL not read")
	}
}

func TestLoadMalformedNumbersFallBack(t *testing.T) {
	t.Setenv("PAYMENT_AMOUNT_STX", "lots")
	t.Setenv("CACHE_TTL_SECONDS", "soon")

	cfg := Load()

	if cfg.PaymentAmountSTX != 0.01 {
		t.Errorf("PaymentAmountSTX = %v, want default", cfg.PaymentAmountSTX)
	}
	if cfg.CacheTTLSeconds != 300 {
		t.Errorf("CacheTTLSeconds = %d, want default", cfg.CacheTTLSeconds)
	}
}
