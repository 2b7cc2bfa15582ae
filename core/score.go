package core

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pbtc21/token-health/types"
)

// DataProvider is the upstream analytics source feeding the scoring engine.
type DataProvider interface {
	TokenInfo(ctx context.Context, address string) (types.TokenInfo, error)
	HolderPercentages(ctx context.Context, address string) (types.HolderPercentages, error)
	HolderStats(ctx context.Context, address string) (types.HolderStats, error)
	OHLC(ctx context.Context, address, period string, limit int) ([]types.Candlestick, error)
}

// CalculateHealthScore fetches the four data sets for a token concurrently
// and folds them into a health report. A failure of any single fetch cancels
// the remaining fetches and fails the whole report.
func CalculateHealthScore(ctx context.Context, provider DataProvider, tokenAddress string) (types.HealthReport, error) {

	var (
		tokenInfo   types.TokenInfo
		percentages types.HolderPercentages
		stats       types.HolderStats
		candles     []types.Candlestick
	)

	// Fetch all four data sets in parallel, fail fast on the first error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tokenInfo, err = provider.TokenInfo(gctx, tokenAddress)
		return err
	})
	g.Go(func() error {
		var err error
		percentages, err = provider.HolderPercentages(gctx, tokenAddress)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = provider.HolderStats(gctx, tokenAddress)
		return err
	})
	g.Go(func() error {
		var err error
		// 7 days of hourly data
		candles, err = provider.OHLC(gctx, tokenAddress, "1h", 168)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.HealthReport{}, err
	}

	// Run the four sub-scorers
	concentration := scoreConcentration(percentages)
	freshWallets := scoreFreshWallets(stats)
	holderActivity := scoreHolderActivity(stats)
	volumeTrend := scoreVolumeTrend(candles)

	// Combine the flags in fixed sub-scorer order
	flags := make([]string, 0)
	flags = append(flags, concentration.flags...)
	flags = append(flags, freshWallets.flags...)
	flags = append(flags, holderActivity.flags...)
	flags = append(flags, volumeTrend.flags...)

	// Combine the sub-scores into the weighted composite score
	score := int(math.Round(
		float64(concentration.score)*WeightConcentration +
			float64(freshWallets.score)*WeightFreshWallets +
			float64(holderActivity.score)*WeightHolderActivity +
			float64(volumeTrend.score)*WeightVolumeTrend,
	))

	holderCount := parseCount(stats.HolderCount)
	freshWalletRatio := 0.0
	activeRatio := 0.0
	if holderCount > 0 {
		freshWalletRatio = float64(parseCount(stats.Fresh1w)) / float64(holderCount)
		activeRatio = float64(parseCount(stats.Active1w)) / float64(holderCount)
	}

	return types.HealthReport{
		Token: types.ReportToken{
			Address:      tokenAddress,
			Name:         tokenInfo.Name,
			Symbol:       tokenInfo.Symbol,
			PriceUSD:     tokenInfo.PriceUSD,
			MarketCapUSD: tokenInfo.MarketCapUSD,
		},
		Score: score,
		Grade: calculateGrade(score),
		Breakdown: types.ReportBreakdown{
			Concentration:  types.FactorScore{Score: concentration.score, Weight: WeightConcentration},
			FreshWallets:   types.FactorScore{Score: freshWallets.score, Weight: WeightFreshWallets},
			HolderActivity: types.FactorScore{Score: holderActivity.score, Weight: WeightHolderActivity},
			VolumeTrend:    types.FactorScore{Score: volumeTrend.score, Weight: WeightVolumeTrend},
		},
		Metrics: types.ReportMetrics{
			Top10Ownership:     percentages.Top10Percent,
			Top25Ownership:     percentages.Top25Percent,
			Top50Ownership:     percentages.Top50Percent,
			FreshWalletRatio:   freshWalletRatio,
			HolderCount:        holderCount,
			ActiveRatio:        activeRatio,
			Volume24h:          volumeTrend.volume24h,
			Volume7dAvg:        volumeTrend.volume7dAvg,
			VolumeTrendPercent: volumeTrend.trendPercent,
		},
		Flags:     flags,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}
