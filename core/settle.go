package core

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pbtc21/token-health/clients"
	"github.com/pbtc21/token-health/types"
)

// SettleConfig are the configuration parameters for the settle operation.
type SettleConfig struct {
	Network types.Network
}

// Node error markers for a transaction the network already knows about. A
// duplicate submission is treated as acceptance so that retries of the same
// request stay idempotent.
var duplicateMarkers = []string{"ConflictingNonceInMempool", "already"}

// Settle broadcasts a caller-supplied signed transaction to the configured
// network. No local signature or structural validation is performed: the
// transaction is trusted as-is once the network accepts it. A returned error
// means the broadcast attempt itself failed (malformed hex, network fault)
// rather than the node rejecting the transaction.
func Settle(ctx context.Context, c SettleConfig, signedTxHex string) (types.SettlementOutcome, error) {

	// Decode the signed transaction hex into raw bytes
	rawTx, err := hex.DecodeString(strings.TrimPrefix(signedTxHex, "0x"))
	if err != nil {
		// Return an error that will be handled as a processing error
		return types.SettlementOutcome{}, fmt.Errorf("failed to decode signed transaction hex: %v", err)
	}

	// Create the node client for the configured network
	client := clients.NewNodeClient(c.Network)

	// Submit the raw transaction bytes to the node
	status, body, err := client.BroadcastTransaction(ctx, rawTx)
	if err != nil {
		// Return an error that will be handled as a processing error
		return types.SettlementOutcome{}, fmt.Errorf("failed to broadcast transaction: %v", err)
	}

	// Any 2xx response means the node accepted the transaction and the body
	// carries the transaction id
	if status >= 200 && status < 300 {
		return types.SettlementOutcome{
			Accepted: true,
			TxID:     strings.TrimSpace(strings.ReplaceAll(body, `"`, "")),
		}, nil
	}

	// A rejection naming an already-known transaction is still acceptance,
	// just without a new transaction id
	for _, marker := range duplicateMarkers {
		if strings.Contains(body, marker) {
			return types.SettlementOutcome{
				Accepted:      true,
				FailureDetail: "Transaction already in mempool",
			}, nil
		}
	}

	// Any other rejection is a hard rejection carrying the node's error text
	return types.SettlementOutcome{
		Accepted:      false,
		FailureDetail: body,
	}, nil
}
