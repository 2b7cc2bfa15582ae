// Package clients implements the HTTP clients for the external Tenero
// analytics API and the Stacks node API.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pbtc21/token-health/types"
	"github.com/pbtc21/token-health/utils"
)

// DefaultTeneroBaseURL is the production Tenero analytics endpoint for
// Stacks tokens.
const DefaultTeneroBaseURL = "https://api.tenero.io/v1/stacks"

// teneroEnvelope is the response wrapper every Tenero endpoint uses. A 2xx
// transport response can still carry a business error in StatusCode.
type teneroEnvelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// TeneroClient fetches token analytics from the Tenero API.
type TeneroClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTeneroClient creates a new Tenero client. An empty baseURL selects the
// production endpoint.
func NewTeneroClient(baseURL string) *TeneroClient {
	if baseURL == "" {
		baseURL = DefaultTeneroBaseURL
	}
	return &TeneroClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// get fetches an endpoint and decodes the enveloped payload into out.
func (t *TeneroClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return utils.NewStatusError(fmt.Errorf("Tenero API error: %d", resp.StatusCode), http.StatusInternalServerError)
	}

	var envelope teneroEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode Tenero response: %v", err)
	}
	if envelope.StatusCode != http.StatusOK {
		return utils.NewStatusError(fmt.Errorf("Tenero error: %s", envelope.Message), http.StatusInternalServerError)
	}

	return json.Unmarshal(envelope.Data, out)
}

// TokenInfo fetches the token metadata record.
func (t *TeneroClient) TokenInfo(ctx context.Context, address string) (types.TokenInfo, error) {
	var info types.TokenInfo
	err := t.get(ctx, "/tokens/"+address, &info)
	return info, err
}

// HolderPercentages fetches the holder percentile record.
func (t *TeneroClient) HolderPercentages(ctx context.Context, address string) (types.HolderPercentages, error) {
	var percentages types.HolderPercentages
	err := t.get(ctx, "/tokens/"+address+"/holder_percentages", &percentages)
	return percentages, err
}

// HolderStats fetches the holder cohort record.
func (t *TeneroClient) HolderStats(ctx context.Context, address string) (types.HolderStats, error) {
	var stats types.HolderStats
	err := t.get(ctx, "/tokens/"+address+"/holder_stats", &stats)
	return stats, err
}

// OHLC fetches up to limit candles at the given period, most recent last.
func (t *TeneroClient) OHLC(ctx context.Context, address, period string, limit int) ([]types.Candlestick, error) {
	var candles []types.Candlestick
	endpoint := fmt.Sprintf("/tokens/%s/ohlc?period=%s&limit=%d", address, period, limit)
	err := t.get(ctx, endpoint, &candles)
	return candles, err
}
