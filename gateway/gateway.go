// Package gateway implements the x402 payment gate in front of protected
// resources: it issues 402 challenges, settles payments by broadcasting the
// caller's signed transaction, and admits paid requests.
package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pbtc21/token-health/core"
	"github.com/pbtc21/token-health/types"
)

// Config are the configuration parameters for the payment gateway. Amounts
// are human denominated; conversion to smallest units happens per request
// based on the selected settlement asset.
type Config struct {
	PayTo             string
	Network           types.Network
	AmountSTX         float64
	AmountSBTC        float64
	ExpirationSeconds int
}

// DefaultExpirationSeconds is the challenge expiry window when none is
// configured. Expiry is advisory: it is not re-checked at settlement time.
const DefaultExpirationSeconds = 300

// sBTC token contracts per network.
var tokenContracts = map[types.Network]map[types.TokenType]types.AssetContract{
	types.NetworkMainnet: {
		types.TokenTypeSBTC: {Address: "SP3K8BC0PPEVCV7NZ6QSRWPQ2JE9E5B6N3PA0KBR9", Name: "token-sbtc"},
	},
	types.NetworkTestnet: {
		types.TokenTypeSBTC: {Address: "ST1F7QA2MDF17S807EPA36TSS8AMEFY4KA9TVGWXT", Name: "sbtc-token"},
	},
}

// TokenContract returns the settlement asset contract for the given network
// and token type, or nil for the native asset.
func TokenContract(network types.Network, tokenType types.TokenType) *types.AssetContract {
	contract, ok := tokenContracts[network][tokenType]
	if !ok {
		return nil
	}
	return &contract
}

// contextKey is the private type for request context keys.
type contextKey string

// paymentContextKey stores the verified payment in the request context.
const paymentContextKey contextKey = "x402-payment"

// PaymentFromContext returns the verified payment attached by the gateway,
// or false when the request was not payment gated.
func PaymentFromContext(ctx context.Context) (types.VerifiedPayment, bool) {
	payment, ok := ctx.Value(paymentContextKey).(types.VerifiedPayment)
	return payment, ok
}

// TokenTypeFromRequest normalizes the caller's requested settlement asset.
// The header is checked first, then the query parameter; anything that is
// not recognized falls back to the native asset.
func TokenTypeFromRequest(r *http.Request) types.TokenType {
	token := r.Header.Get("X-PAYMENT-TOKEN-TYPE")
	if token == "" {
		token = r.URL.Query().Get("tokenType")
	}
	if strings.EqualFold(token, string(types.TokenTypeSBTC)) {
		return types.TokenTypeSBTC
	}
	return types.TokenTypeSTX
}

// RequiredAmount returns the required payment in the asset's smallest unit,
// as a decimal string so no floating point crosses the wire.
func RequiredAmount(c Config, tokenType types.TokenType) string {
	var amount uint64
	if tokenType == types.TokenTypeSBTC && c.AmountSBTC > 0 {
		amount = core.BTCToSats(c.AmountSBTC)
	} else {
		amount = core.STXToMicroSTX(c.AmountSTX)
	}
	return strconv.FormatUint(amount, 10)
}

// PaymentRequired returns middleware enforcing an x402 payment on every
// request it wraps. Requests without an X-PAYMENT header receive a 402
// challenge; requests carrying one are settled by broadcasting the signed
// transaction and admitted if the network accepts it.
func PaymentRequired(c Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			// Determine which settlement asset the caller wants to pay with
			tokenType := TokenTypeFromRequest(r)

			// Check for a signed payment in the X-PAYMENT header
			signedPayment := r.Header.Get("X-PAYMENT")
			if signedPayment == "" {
				// No payment provided, respond with the 402 challenge
				writeChallenge(w, r, c, tokenType)
				return
			}

			// Settle the payment by broadcasting the signed transaction
			outcome, err := core.Settle(r.Context(), core.SettleConfig{Network: c.Network}, signedPayment)
			if err != nil {
				// The broadcast attempt itself errored
				writeJSON(w, http.StatusInternalServerError, map[string]string{
					"error":   "Payment processing error",
					"details": err.Error(),
				})
				return
			}
			if !outcome.Accepted {
				// The node rejected the transaction
				writeJSON(w, http.StatusPaymentRequired, types.PaymentRejection{
					Error:         "Payment broadcast failed",
					Details:       outcome.FailureDetail,
					PaymentStatus: "failed",
				})
				return
			}

			// Payment accepted: attach the verified payment to the request
			// context. Status stays "pending" since confirmation is never
			// polled, and recipient/amount are the configured values rather
			// than fields parsed out of the transaction.
			payment := types.VerifiedPayment{
				TxID:      outcome.TxID,
				Status:    "pending",
				Recipient: c.PayTo,
				Amount:    RequiredAmount(c, tokenType),
				TokenType: tokenType,
			}
			ctx := context.WithValue(r.Context(), paymentContextKey, payment)

			// Emit the settlement receipt header
			receipt := types.PaymentReceipt{
				TxID:    outcome.TxID,
				Status:  "pending",
				Message: "Transaction broadcast successful",
			}
			if receiptJSON, err := json.Marshal(receipt); err == nil {
				w.Header().Set("X-PAYMENT-RESPONSE", base64.StdEncoding.EncodeToString(receiptJSON))
			}

			// Continue to the protected handler
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeChallenge writes the 402 payment challenge for the request.
func writeChallenge(w http.ResponseWriter, r *http.Request, c Config, tokenType types.TokenType) {

	// Determine the challenge expiry window
	expirationSeconds := c.ExpirationSeconds
	if expirationSeconds <= 0 {
		expirationSeconds = DefaultExpirationSeconds
	}

	// Build the challenge. The nonce is freshly generated per challenge and
	// never stored, so it cannot be used to prevent replay.
	challenge := types.PaymentChallenge{
		MaxAmountRequired: RequiredAmount(c, tokenType),
		Resource:          r.URL.Path,
		PayTo:             c.PayTo,
		Network:           c.Network,
		Nonce:             uuid.NewString(),
		ExpiresAt:         time.Now().Add(time.Duration(expirationSeconds) * time.Second).UTC().Format(time.RFC3339),
		TokenType:         tokenType,
		TokenContract:     TokenContract(c.Network, tokenType),
	}

	writeJSON(w, http.StatusPaymentRequired, challenge)
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
