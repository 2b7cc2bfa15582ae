package core

import "math"

// STXToMicroSTX converts a human-denominated STX amount to microSTX, the
// smallest on-chain unit (1 STX = 1,000,000 microSTX).
func STXToMicroSTX(stx float64) uint64 {
	return uint64(math.Round(stx * 1_000_000))
}

// BTCToSats converts a human-denominated BTC amount to satoshis, the
// smallest on-chain unit (1 BTC = 100,000,000 sats).
func BTCToSats(btc float64) uint64 {
	return uint64(math.Round(btc * 100_000_000))
}
