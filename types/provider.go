package types

// TokenInfo is the data provider's token metadata record.
type TokenInfo struct {
	ContractAddress string  `json:"contract_address"`
	Name            string  `json:"name"`
	Symbol          string  `json:"symbol"`
	Decimals        int     `json:"decimals"`
	TotalSupply     string  `json:"total_supply"`
	PriceUSD        float64 `json:"price_usd"`
	MarketCapUSD    float64 `json:"market_cap_usd"`
	Volume24hUSD    float64 `json:"volume_24h_usd"`
}

// HolderPercentages is the data provider's holder percentile record.
type HolderPercentages struct {
	Top10Percent float64 `json:"top_10_percent"`
	Top25Percent float64 `json:"top_25_percent"`
	Top50Percent float64 `json:"top_50_percent"`
}

// HolderStats is the data provider's holder cohort record. All counters are
// string encoded integers on the wire.
type HolderStats struct {
	HolderCount       string `json:"holder_count"`
	Fresh1w           string `json:"fresh_1w"`
	Fresh1m           string `json:"fresh_1m"`
	Old1y             string `json:"old_1y"`
	Old2y             string `json:"old_2y"`
	WhaleWallets      string `json:"whale_wallets"`
	Active1w          string `json:"active_1w"`
	Active1m          string `json:"active_1m"`
	Inactive6m        string `json:"inactive_6m"`
	TraderWallets     string `json:"trader_wallets"`
	HighVolumeTraders string `json:"high_volume_traders"`
	UpdatedAt         int64  `json:"updated_at"`
}

// Candlestick is a single OHLC candle from the data provider, hourly
// resolution, most recent last.
type Candlestick struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}
