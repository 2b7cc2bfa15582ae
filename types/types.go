package types

// AssetContract identifies the fungible token contract used to settle a
// payment in a non-native asset.
type AssetContract struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// PaymentChallenge is the 402 response body describing the payment that
// would satisfy a protected request.
type PaymentChallenge struct {
	MaxAmountRequired string         `json:"maxAmountRequired"`
	Resource          string         `json:"resource"`
	PayTo             string         `json:"payTo"`
	Network           Network        `json:"network"`
	Nonce             string         `json:"nonce"`
	ExpiresAt         string         `json:"expiresAt"`
	TokenType         TokenType      `json:"tokenType"`
	TokenContract     *AssetContract `json:"tokenContract,omitempty"`
}

// SettlementOutcome is the result of broadcasting a caller-supplied signed
// transaction to the network.
type SettlementOutcome struct {
	Accepted      bool
	TxID          string
	FailureDetail string
}

// VerifiedPayment is attached to the request context once a payment has been
// accepted by the network. The recipient and amount are copied from
// configuration, not parsed out of the broadcast transaction.
type VerifiedPayment struct {
	TxID      string    `json:"txId"`
	Status    string    `json:"status"`
	Recipient string    `json:"recipient"`
	Amount    string    `json:"amount"`
	TokenType TokenType `json:"tokenType"`
}

// PaymentReceipt is the payload of the X-PAYMENT-RESPONSE header, base64
// encoded as JSON.
type PaymentReceipt struct {
	TxID    string `json:"txId,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PaymentRejection is the 402 response body when a broadcast is rejected.
type PaymentRejection struct {
	Error         string `json:"error"`
	Details       string `json:"details,omitempty"`
	PaymentStatus string `json:"paymentStatus"`
}

// PaymentRequirements is a single accepted-payment descriptor in the
// discovery document.
type PaymentRequirements struct {
	Scheme            Scheme         `json:"scheme"`
	Network           Network        `json:"network"`
	MaxAmountRequired string         `json:"maxAmountRequired"`
	Resource          string         `json:"resource"`
	Description       string         `json:"description,omitempty"`
	MimeType          string         `json:"mimeType,omitempty"`
	PayTo             string         `json:"payTo"`
	MaxTimeoutSeconds int64          `json:"maxTimeoutSeconds"`
	TokenType         TokenType      `json:"tokenType"`
	TokenContract     *AssetContract `json:"tokenContract,omitempty"`
	InputSchema       map[string]any `json:"inputSchema,omitempty"`
	OutputSchema      map[string]any `json:"outputSchema,omitempty"`
}

// DiscoveryDocument is the /.well-known/x402 response body.
type DiscoveryDocument struct {
	X402Version X402Version           `json:"x402Version"`
	Accepts     []PaymentRequirements `json:"accepts"`
}
