// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pbtc21/token-health/types"
)

type Config struct {
	ListenAddr string

	// Payment gating
	PaymentAddress    string
	PaymentNetwork    types.Network
	PaymentAmountSTX  float64
	PaymentAmountSBTC float64
	ExpirationSeconds int

	// Response cache
	CacheTTLSeconds int
	DatabaseURL     string

	// Upstream data provider
	TeneroBaseURL string
}

// Load reads the configuration from the environment, loading a .env file
// first if one is present.
func Load() *Config {
	_ = godotenv.Load()

	network := types.NetworkMainnet
	if os.Getenv("PAYMENT_NETWORK") == string(types.NetworkTestnet) {
		network = types.NetworkTestnet
	}

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),

		PaymentAddress:    os.Getenv("PAYMENT_ADDRESS"),
		PaymentNetwork:    network,
		PaymentAmountSTX:  getEnvFloat("PAYMENT_AMOUNT_STX", 0.01),
		PaymentAmountSBTC: getEnvFloat("PAYMENT_AMOUNT_SBTC", 0.00000001),
		ExpirationSeconds: getEnvInt("PAYMENT_EXPIRATION_SECONDS", 300),

		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 300),
		DatabaseURL:     os.Getenv("DATABASE_URL"),

		TeneroBaseURL: os.Getenv("TENERO_API_URL"),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
