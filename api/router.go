// Package api wires the HTTP surface of the token health service.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pbtc21/token-health/cache"
	"github.com/pbtc21/token-health/config"
	"github.com/pbtc21/token-health/core"
	"github.com/pbtc21/token-health/gateway"
)

// tokenAddressPattern matches a Stacks fungible token principal, e.g.
// SP1AY6K3PQV5MRT6R4S671NWW2FRVPKM0BR162CT6.leo-token.
var tokenAddressPattern = regexp.MustCompile(`(?i)^SP[A-Z0-9]+\.[a-z0-9-]+$`)

// Server holds the handler dependencies.
type Server struct {
	cfg      *config.Config
	provider core.DataProvider
	cache    cache.Cache
}

// New creates a new API server.
func New(cfg *config.Config, provider core.DataProvider, c cache.Cache) *Server {
	return &Server{cfg: cfg, provider: provider, cache: c}
}

// gatewayConfig builds the payment gateway configuration from the service
// configuration.
func (s *Server) gatewayConfig() gateway.Config {
	return gateway.Config{
		PayTo:             s.cfg.PaymentAddress,
		Network:           s.cfg.PaymentNetwork,
		AmountSTX:         s.cfg.PaymentAmountSTX,
		AmountSBTC:        s.cfg.PaymentAmountSBTC,
		ExpirationSeconds: s.cfg.ExpirationSeconds,
	}
}

// cacheTTL returns the report cache TTL.
func (s *Server) cacheTTL() time.Duration {
	return time.Duration(s.cfg.CacheTTLSeconds) * time.Second
}

// Routes builds the router: open descriptor and discovery endpoints plus the
// payment-gated health resource.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-PAYMENT-RESPONSE"},
	}))

	r.Get("/", s.Index)
	r.Get("/.well-known/x402", s.Discovery)

	r.Route("/health/{tokenAddress}", func(r chi.Router) {
		// Address validation runs before the payment gate so malformed
		// input is rejected without issuing a challenge.
		r.Use(s.validateTokenAddress)
		r.Use(gateway.PaymentRequired(s.gatewayConfig()))
		r.Get("/", s.GetHealth)
	})

	return r
}

// validateTokenAddress rejects malformed token addresses with a 400.
func (s *Server) validateTokenAddress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenAddress := chi.URLParam(r, "tokenAddress")
		if !tokenAddressPattern.MatchString(tokenAddress) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "Invalid token address format",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Header already written so we log the error
		log.Printf("failed to write response: %v", err)
	}
}
