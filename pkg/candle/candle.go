package candle

type Candle struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Bullish reports whether the candle closed above its open.
func (c *Candle) Bullish() bool {
	return c.Close > c.Open
}

func (c *Candle) Bearish() bool {
	return c.Close < c.Open
}
