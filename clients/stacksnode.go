package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pbtc21/token-health/types"
)

// Fixed transaction-submission endpoints per Stacks network.
const (
	mainnetAPIURL = "https://api.hiro.so"
	testnetAPIURL = "https://api.testnet.hiro.so"
)

// NodeClientInterface defines the interface for the Stacks node API. The
// client is pass-through I/O: interpreting the broadcast response is left to
// the caller.
type NodeClientInterface interface {
	BroadcastTransaction(ctx context.Context, rawTx []byte) (statusCode int, body string, err error)
}

// NewNodeClient creates a new Stacks node client for the given network. This
// function can be overridden in tests.
var NewNodeClient = func(network types.Network) NodeClientInterface {
	apiURL := mainnetAPIURL
	if network == types.NetworkTestnet {
		apiURL = testnetAPIURL
	}
	return &nodeClient{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type nodeClient struct {
	apiURL     string
	httpClient *http.Client
}

// BroadcastTransaction submits raw signed transaction bytes to the node's
// mempool and returns the raw response.
func (c *nodeClient) BroadcastTransaction(ctx context.Context, rawTx []byte) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v2/transactions", bytes.NewReader(rawTx))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", fmt.Errorf("failed to read broadcast response: %w", err)
	}

	return resp.StatusCode, string(body), nil
}
