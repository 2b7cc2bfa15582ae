package types

// ReportToken is the token identity block of a health report.
type ReportToken struct {
	Address      string  `json:"address"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	PriceUSD     float64 `json:"price_usd"`
	MarketCapUSD float64 `json:"market_cap_usd"`
}

// FactorScore is one sub-scorer's contribution to the composite score.
type FactorScore struct {
	Score  int     `json:"score"`
	Weight float64 `json:"weight"`
}

// ReportBreakdown is the per-factor breakdown of a health report.
type ReportBreakdown struct {
	Concentration  FactorScore `json:"concentration"`
	FreshWallets   FactorScore `json:"freshWallets"`
	HolderActivity FactorScore `json:"holderActivity"`
	VolumeTrend    FactorScore `json:"volumeTrend"`
}

// ReportMetrics are the raw ratios and volumes that drove the scores.
type ReportMetrics struct {
	Top10Ownership     float64 `json:"top10Ownership"`
	Top25Ownership     float64 `json:"top25Ownership"`
	Top50Ownership     float64 `json:"top50Ownership"`
	FreshWalletRatio   float64 `json:"freshWalletRatio"`
	HolderCount        int     `json:"holderCount"`
	ActiveRatio        float64 `json:"activeRatio"`
	Volume24h          float64 `json:"volume24h"`
	Volume7dAvg        float64 `json:"volume7dAvg"`
	VolumeTrendPercent float64 `json:"volumeTrendPercent"`
}

// HealthReport is the scoring engine's output. It is immutable once built;
// the Cached marker is only set when a stored copy is served.
type HealthReport struct {
	Token     ReportToken     `json:"token"`
	Score     int             `json:"score"`
	Grade     Grade           `json:"grade"`
	Breakdown ReportBreakdown `json:"breakdown"`
	Metrics   ReportMetrics   `json:"metrics"`
	Flags     []string        `json:"flags"`
	Timestamp int64           `json:"timestamp"`
	Cached    bool            `json:"cached,omitempty"`
}
