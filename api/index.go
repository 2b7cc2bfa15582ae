package api

import (
	"net/http"
	"strconv"

	"github.com/pbtc21/token-health/types"
)

// ServiceVersion is reported by the service descriptor.
const ServiceVersion = "1.0.0"

// ExampleResource is a known token used in the descriptor's example path.
const ExampleResource = "/health/SP1AY6K3PQV5MRT6R4S671NWW2FRVPKM0BR162CT6.leo-token"

// ServiceDescriptor is the response of the root endpoint.
type ServiceDescriptor struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Example   string            `json:"example"`
	Pricing   DescriptorPricing `json:"pricing"`
}

// DescriptorPricing is the human-readable pricing block of the descriptor.
type DescriptorPricing struct {
	STX            string        `json:"stx"`
	SBTC           string        `json:"sbtc"`
	Protocol       string        `json:"protocol"`
	TokenTypeParam string        `json:"tokenTypeParam"`
	Network        types.Network `json:"network"`
}

// Index serves the service descriptor.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ServiceDescriptor{
		Name:    "Token Health Check",
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"health": "GET /health/:tokenAddress",
		},
		Example: ExampleResource,
		Pricing: DescriptorPricing{
			STX:            strconv.FormatFloat(s.cfg.PaymentAmountSTX, 'f', -1, 64),
			SBTC:           strconv.FormatFloat(s.cfg.PaymentAmountSBTC, 'f', -1, 64),
			Protocol:       "x402",
			TokenTypeParam: "?tokenType=STX|sBTC",
			Network:        s.cfg.PaymentNetwork,
		},
	})
}
