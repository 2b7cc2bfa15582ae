package core

import (
	"fmt"
	"strconv"

	"github.com/pbtc21/token-health/types"
)

// Sub-scorer weights. They sum to 1.0.
const (
	WeightConcentration  = 0.35
	WeightFreshWallets   = 0.25
	WeightHolderActivity = 0.20
	WeightVolumeTrend    = 0.20
)

// factorResult is the output of a single sub-scorer.
type factorResult struct {
	score int
	flags []string
}

// volumeResult extends factorResult with the raw volume metrics so the
// report can expose what drove the score.
type volumeResult struct {
	factorResult
	volume24h    float64
	volume7dAvg  float64
	trendPercent float64
}

// parseCount parses a string encoded cohort counter, returning 0 on any
// malformed input.
func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// scoreConcentration scores holder concentration. Ideal distribution keeps
// the top 10 holders under 40% of supply.
func scoreConcentration(p types.HolderPercentages) factorResult {
	var flags []string
	score := 100

	if p.Top10Percent > 80 {
		score -= 60
		flags = append(flags, fmt.Sprintf("Extreme concentration: top 10 holders own %.1f%%", p.Top10Percent))
	} else if p.Top10Percent > 60 {
		score -= 40
		flags = append(flags, fmt.Sprintf("High concentration: top 10 holders own %.1f%%", p.Top10Percent))
	} else if p.Top10Percent > 40 {
		score -= 20
	}

	if p.Top25Percent > 90 {
		score -= 20
		flags = append(flags, fmt.Sprintf("Top 25 holders control %.1f%% of supply", p.Top25Percent))
	}

	return factorResult{score: max(0, score), flags: flags}
}

// scoreFreshWallets scores the ratio of recently created holder wallets. A
// spike of fresh wallets can indicate a coordinated buy, while almost no
// fresh wallets on a large holder base indicates a dead token.
func scoreFreshWallets(stats types.HolderStats) factorResult {
	var flags []string

	holderCount := parseCount(stats.HolderCount)
	if holderCount == 0 {
		holderCount = 1
	}
	freshWeek := parseCount(stats.Fresh1w)
	freshMonth := parseCount(stats.Fresh1m)

	freshWeekRatio := float64(freshWeek) / float64(holderCount)
	freshMonthRatio := float64(freshMonth) / float64(holderCount)

	score := 100

	if freshWeekRatio > 0.5 {
		score -= 50
		flags = append(flags, fmt.Sprintf("Warning: %.0f%% of holders are <1 week old", freshWeekRatio*100))
	} else if freshWeekRatio > 0.3 {
		score -= 30
		flags = append(flags, fmt.Sprintf("%.0f%% of holders joined this week", freshWeekRatio*100))
	} else if freshWeekRatio > 0.15 {
		score -= 15
	}

	if freshMonthRatio < 0.05 && holderCount > 100 {
		score -= 10
		flags = append(flags, "Low new holder activity in past month")
	}

	return factorResult{score: max(0, score), flags: flags}
}

// scoreHolderActivity scores how actively the holder base trades. Healthy
// tokens see 10-30% of holders active in a given week.
func scoreHolderActivity(stats types.HolderStats) factorResult {
	var flags []string

	holderCount := parseCount(stats.HolderCount)
	if holderCount == 0 {
		holderCount = 1
	}
	activeWeek := parseCount(stats.Active1w)
	inactive6m := parseCount(stats.Inactive6m)

	activeWeekRatio := float64(activeWeek) / float64(holderCount)
	inactive6mRatio := float64(inactive6m) / float64(holderCount)

	score := 100

	if activeWeekRatio < 0.02 {
		score -= 30
		flags = append(flags, "Very low trading activity")
	} else if activeWeekRatio < 0.05 {
		score -= 15
	}

	if inactive6mRatio > 0.7 {
		score -= 25
		flags = append(flags, fmt.Sprintf("%.0f%% of holders inactive for 6+ months", inactive6mRatio*100))
	} else if inactive6mRatio > 0.5 {
		score -= 10
	}

	return factorResult{score: max(0, score), flags: flags}
}

// scoreVolumeTrend compares the last 24 hours of volume against the average
// of the preceding candles. Requires at least 24 hourly candles; otherwise a
// neutral score is returned.
func scoreVolumeTrend(candles []types.Candlestick) volumeResult {
	var flags []string

	if len(candles) < 24 {
		return volumeResult{
			factorResult: factorResult{score: 50, flags: []string{"Insufficient volume data"}},
		}
	}

	var volume24h float64
	for _, c := range candles[len(candles)-24:] {
		volume24h += c.Volume
	}

	// Average per 24h bucket over everything before the last day, falling
	// back to the last day itself when no older candles exist.
	older := candles[:len(candles)-24]
	volume7dAvg := volume24h
	if len(older) > 0 {
		var sum float64
		for _, c := range older {
			sum += c.Volume
		}
		volume7dAvg = sum / (float64(len(older)) / 24)
	}

	trendPercent := 0.0
	if volume7dAvg > 0 {
		trendPercent = (volume24h - volume7dAvg) / volume7dAvg * 100
	}

	var score int
	switch {
	case trendPercent > 100:
		score = 95
		flags = append(flags, fmt.Sprintf("Volume surge: +%.0f%% vs 7d avg", trendPercent))
	case trendPercent > 30:
		score = 85
	case trendPercent > 0:
		score = 75
	case trendPercent > -30:
		score = 65
	case trendPercent > -50:
		score = 50
		flags = append(flags, "Volume declining")
	default:
		score = 30
		flags = append(flags, fmt.Sprintf("Volume down %.0f%% from 7d avg", -trendPercent))
	}

	return volumeResult{
		factorResult: factorResult{score: score, flags: flags},
		volume24h:    volume24h,
		volume7dAvg:  volume7dAvg,
		trendPercent: trendPercent,
	}
}

// calculateGrade maps a composite score to a letter grade.
func calculateGrade(score int) types.Grade {
	switch {
	case score >= 80:
		return types.GradeA
	case score >= 65:
		return types.GradeB
	case score >= 50:
		return types.GradeC
	case score >= 35:
		return types.GradeD
	default:
		return types.GradeF
	}
}
