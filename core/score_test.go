package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pbtc21/token-health/types"
)

// mockProvider implements DataProvider with overridable function fields.
type mockProvider struct {
	tokenInfo         func(ctx context.Context, address string) (types.TokenInfo, error)
	holderPercentages func(ctx context.Context, address string) (types.HolderPercentages, error)
	holderStats       func(ctx context.Context, address string) (types.HolderStats, error)
	ohlc              func(ctx context.Context, address, period string, limit int) ([]types.Candlestick, error)
}

func (m *mockProvider) TokenInfo(ctx context.Context, address string) (types.TokenInfo, error) {
	if m.tokenInfo != nil {
		return m.tokenInfo(ctx, address)
	}
	return types.TokenInfo{Name: "Leo", Symbol: "LEO", PriceUSD: 0.001, MarketCapUSD: 1000000}, nil
}

func (m *mockProvider) HolderPercentages(ctx context.Context, address string) (types.HolderPercentages, error) {
	if m.holderPercentages != nil {
		return m.holderPercentages(ctx, address)
	}
	return types.HolderPercentages{Top10Percent: 85, Top25Percent: 92, Top50Percent: 95}, nil
}

func (m *mockProvider) HolderStats(ctx context.Context, address string) (types.HolderStats, error) {
	if m.holderStats != nil {
		return m.holderStats(ctx, address)
	}
	return types.HolderStats{
		HolderCount: "1000",
		Fresh1w:     "600",
		Fresh1m:     "20",
		Active1w:    "10",
		Inactive6m:  "800",
	}, nil
}

func (m *mockProvider) OHLC(ctx context.Context, address, period string, limit int) ([]types.Candlestick, error) {
	if m.ohlc != nil {
		return m.ohlc(ctx, address, period, limit)
	}
	return make([]types.Candlestick, 10), nil
}

func TestCalculateHealthScore(t *testing.T) {
	const address = "SP1AY6K3PQV5MRT6R4S671NWW2FRVPKM0BR162CT6.leo-token"

	report, err := CalculateHealthScore(context.Background(), &mockProvider{}, address)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sub-scores: concentration 20, fresh wallets 40, activity 45, volume 50.
	// Composite = round(20*0.35 + 40*0.25 + 45*0.20 + 50*0.20) = 36.
	if report.Score != 36 {
		t.Errorf("score = %d, want 36", report.Score)
	}
	if report.Grade != types.GradeD {
		t.Errorf("grade = %s, want D", report.Grade)
	}

	breakdown := report.Breakdown
	if breakdown.Concentration.Score != 20 || breakdown.FreshWallets.Score != 40 ||
		breakdown.HolderActivity.Score != 45 || breakdown.VolumeTrend.Score != 50 {
		t.Errorf("unexpected breakdown: %+v", breakdown)
	}

	// Flags arrive in fixed sub-scorer order.
	wantPrefixes := []string{
		"Extreme concentration",
		"Top 25 holders control",
		"Warning:",
		"Low new holder activity",
		"Very low trading activity",
		"80% of holders inactive",
		"Insufficient volume data",
	}
	if len(report.Flags) != len(wantPrefixes) {
		t.Fatalf("flags = %v, want %d flags", report.Flags, len(wantPrefixes))
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(report.Flags[i], prefix) {
			t.Errorf("flags[%d] = %q, want prefix %q", i, report.Flags[i], prefix)
		}
	}

	if report.Token.Address != address || report.Token.Symbol != "LEO" {
		t.Errorf("unexpected token block: %+v", report.Token)
	}
	if report.Metrics.HolderCount != 1000 || report.Metrics.FreshWalletRatio != 0.6 || report.Metrics.ActiveRatio != 0.01 {
		t.Errorf("unexpected metrics: %+v", report.Metrics)
	}
	if report.Metrics.Volume24h != 0 || report.Metrics.Volume7dAvg != 0 {
		t.Errorf("volume metrics not zeroed: %+v", report.Metrics)
	}
	if report.Timestamp == 0 {
		t.Error("timestamp not set")
	}
	if report.Cached {
		t.Error("fresh report marked as cached")
	}
}

func TestCalculateHealthScoreRequestsSevenDaysOfCandles(t *testing.T) {
	provider := &mockProvider{
		ohlc: func(ctx context.Context, address, period string, limit int) ([]types.Candlestick, error) {
			if period != "1h" || limit != 168 {
				t.Errorf("OHLC requested with period=%s limit=%d, want 1h/168", period, limit)
			}
			return make([]types.Candlestick, 10), nil
		},
	}

	if _, err := CalculateHealthScore(context.Background(), provider, "SPX.token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCalculateHealthScoreFailsFast(t *testing.T) {
	providerErr := errors.New("Tenero API error: 502")
	provider := &mockProvider{
		holderStats: func(ctx context.Context, address string) (types.HolderStats, error) {
			return types.HolderStats{}, providerErr
		},
	}

	_, err := CalculateHealthScore(context.Background(), provider, "SPX.token")
	if !errors.Is(err, providerErr) {
		t.Fatalf("error = %v, want %v", err, providerErr)
	}
}
