package asset

type Asset struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

// Catalog returns the fixed set of tradable instruments.
func Catalog() []*Asset {
	return []*Asset{
		{ID: "1", Symbol: "BTC", Name: "Bitcoin", Color: "#F7931A"},
		{ID: "2", Symbol: "ETH", Name: "Ethereum", Color: "#627EEA"},
		{ID: "3", Symbol: "AAPL", Name: "Apple Inc.", Color: "#A2AAAD"},
		{ID: "4", Symbol: "MSFT", Name: "Microsoft", Color: "#00A4EF"},
		{ID: "5", Symbol: "AMZN", Name: "Amazon", Color: "#FF9900"},
		{ID: "6", Symbol: "TSLA", Name: "Tesla", Color: "#CC0000"},
		{ID: "7", Symbol: "GOOG", Name: "Google", Color: "#4285F4"},
		{ID: "8", Symbol: "META", Name: "Meta", Color: "#0668E1"},
		{ID: "9", Symbol: "NFLX", Name: "Netflix", Color: "#E50914"},
		{ID: "10", Symbol: "DIS", Name: "Disney", Color: "#006EC5"},
	}
}

type Timeframe string

const (
	Timeframe1m  Timeframe = "1m"
	Timeframe5m  Timeframe = "5m"
	Timeframe15m Timeframe = "15m"
	Timeframe1h  Timeframe = "1h"
	Timeframe4h  Timeframe = "4h"
	Timeframe1d  Timeframe = "1d"
)

func (tf Timeframe) IntervalSeconds() int64 {
	switch tf {
	case Timeframe1m:
		return 60
	case Timeframe5m:
		return 300
	case Timeframe15m:
		return 900
	case Timeframe1h:
		return 3600
	case Timeframe4h:
		return 14400
	case Timeframe1d:
		return 86400
	default:
		return 60
	}
}

func (tf Timeframe) Valid() bool {
	switch tf {
	case Timeframe1m, Timeframe5m, Timeframe15m, Timeframe1h, Timeframe4h, Timeframe1d:
		return true
	}
	return false
}
