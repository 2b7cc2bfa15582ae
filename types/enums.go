package types

// X402Version is the x402 version enum.
type X402Version int

const (
	X402Version1 X402Version = 1
)

// Scheme is the payment scheme enum.
type Scheme string

const (
	SchemeExact Scheme = "exact"
)

// Network is the Stacks network enum.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

// TokenType is the settlement asset enum.
type TokenType string

const (
	TokenTypeSTX  TokenType = "STX"
	TokenTypeSBTC TokenType = "sBTC"
)

// Grade is the letter grade enum of a health report.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)
