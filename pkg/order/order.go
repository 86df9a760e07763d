package order

import "errors"

type Type string

const (
	Market Type = "market"
	Limit  Type = "limit"
)

type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

type Status string

const (
	Pending  Status = "pending"
	Filled   Status = "filled"
	Canceled Status = "canceled"
)

type Order struct {
	ID        string  `json:"id"`
	AssetID   string  `json:"assetId"`
	Type      Type    `json:"type"`
	Side      Side    `json:"side"`
	Price     float64 `json:"price"`
	Amount    float64 `json:"amount"`
	Status    Status  `json:"status"`
	CreatedAt int64   `json:"createdAt"`
	FilledAt  int64   `json:"filledAt,omitempty"`
}

// Spec is what callers submit; id, status and timestamps are assigned by
// the ledger.
type Spec struct {
	AssetID string  `json:"assetId"`
	Type    Type    `json:"type"`
	Side    Side    `json:"side"`
	Price   float64 `json:"price"`
	Amount  float64 `json:"amount"`
}

type Holding struct {
	AssetID      string  `json:"assetId"`
	Amount       float64 `json:"amount"`
	AveragePrice float64 `json:"averagePrice"`
}

var (
	ErrInsufficientBalance  = errors.New("insufficient balance for this order")
	ErrInsufficientHoldings = errors.New("insufficient assets for this order")
	ErrInvalidOrder         = errors.New("invalid order")
)
