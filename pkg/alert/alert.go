package alert

type Condition string

const (
	Above Condition = "above"
	Below Condition = "below"
)

type Alert struct {
	ID        string    `json:"id"`
	AssetID   string    `json:"assetId"`
	Price     float64   `json:"price"`
	Condition Condition `json:"condition"`
	Triggered bool      `json:"triggered"`
	CreatedAt int64     `json:"createdAt"`
}

type Spec struct {
	AssetID   string    `json:"assetId"`
	Price     float64   `json:"price"`
	Condition Condition `json:"condition"`
}
