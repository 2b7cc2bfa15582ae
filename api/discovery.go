package api

import (
	"net/http"

	"github.com/pbtc21/token-health/gateway"
	"github.com/pbtc21/token-health/types"
)

// resourceTemplate is the protected resource path advertised to crawlers.
const resourceTemplate = "/health/{tokenAddress}"

// Discovery serves the machine-readable /.well-known/x402 document listing
// one accepted-payment descriptor per settlement asset.
func (s *Server) Discovery(w http.ResponseWriter, r *http.Request) {
	gc := s.gatewayConfig()

	expiration := int64(gc.ExpirationSeconds)
	if expiration <= 0 {
		expiration = gateway.DefaultExpirationSeconds
	}

	accepts := make([]types.PaymentRequirements, 0, 2)
	for _, tokenType := range []types.TokenType{types.TokenTypeSTX, types.TokenTypeSBTC} {
		accepts = append(accepts, types.PaymentRequirements{
			Scheme:            types.SchemeExact,
			Network:           gc.Network,
			MaxAmountRequired: gateway.RequiredAmount(gc, tokenType),
			Resource:          resourceTemplate,
			Description:       "Health score (0-100) for any Stacks token: holder concentration, fresh wallet ratio, activity, volume trends, and risk flags.",
			MimeType:          "application/json",
			PayTo:             gc.PayTo,
			MaxTimeoutSeconds: expiration,
			TokenType:         tokenType,
			TokenContract:     gateway.TokenContract(gc.Network, tokenType),
			InputSchema:       healthInputSchema(),
			OutputSchema:      healthOutputSchema(),
		})
	}

	writeJSON(w, http.StatusOK, types.DiscoveryDocument{
		X402Version: types.X402Version1,
		Accepts:     accepts,
	})
}

// healthInputSchema describes the request shape of the protected resource.
func healthInputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tokenAddress": map[string]any{
				"type":        "string",
				"pattern":     "^SP[A-Z0-9]+\\.[a-z0-9-]+$",
				"description": "Stacks fungible token principal",
			},
		},
		"required": []string{"tokenAddress"},
	}
}

// healthOutputSchema mirrors the HealthReport JSON shape.
func healthOutputSchema() map[string]any {
	factor := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":  map[string]any{"type": "integer"},
			"weight": map[string]any{"type": "number"},
		},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"token": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"address":        map[string]any{"type": "string"},
					"name":           map[string]any{"type": "string"},
					"symbol":         map[string]any{"type": "string"},
					"price_usd":      map[string]any{"type": "number"},
					"market_cap_usd": map[string]any{"type": "number"},
				},
			},
			"score": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"grade": map[string]any{"type": "string", "enum": []string{"A", "B", "C", "D", "F"}},
			"breakdown": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"concentration":  factor,
					"freshWallets":   factor,
					"holderActivity": factor,
					"volumeTrend":    factor,
				},
			},
			"metrics":   map[string]any{"type": "object"},
			"flags":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"timestamp": map[string]any{"type": "integer"},
		},
	}
}
