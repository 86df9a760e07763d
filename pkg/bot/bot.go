package bot

type Strategy string

const (
	StrategySMA            Strategy = "sma"
	StrategyBuyLowSellHigh Strategy = "buyLowSellHigh"
	StrategyRSI            Strategy = "rsi"
)

type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"
)

type Params struct {
	BuyThreshold  float64 `json:"buyThreshold"`
	SellThreshold float64 `json:"sellThreshold"`
	ShortPeriod   int     `json:"shortPeriod"`
	LongPeriod    int     `json:"longPeriod"`
	RSIPeriod     int     `json:"rsiPeriod"`
	RSIOverbought float64 `json:"rsiOverbought"`
	RSIOversold   float64 `json:"rsiOversold"`
}

type Config struct {
	Enabled  bool     `json:"enabled"`
	Strategy Strategy `json:"strategy"`
	Params   Params   `json:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:  false,
		Strategy: StrategySMA,
		Params: Params{
			BuyThreshold:  0.03,
			SellThreshold: 0.05,
			ShortPeriod:   9,
			LongPeriod:    21,
			RSIPeriod:     14,
			RSIOverbought: 70,
			RSIOversold:   30,
		},
	}
}

// ConfigPatch is a sparse override; nil fields keep the current value.
type ConfigPatch struct {
	Enabled  *bool       `json:"enabled,omitempty"`
	Strategy *Strategy   `json:"strategy,omitempty"`
	Params   ParamsPatch `json:"params,omitempty"`
}

type ParamsPatch struct {
	BuyThreshold  *float64 `json:"buyThreshold,omitempty"`
	SellThreshold *float64 `json:"sellThreshold,omitempty"`
	ShortPeriod   *int     `json:"shortPeriod,omitempty"`
	LongPeriod    *int     `json:"longPeriod,omitempty"`
	RSIPeriod     *int     `json:"rsiPeriod,omitempty"`
	RSIOverbought *float64 `json:"rsiOverbought,omitempty"`
	RSIOversold   *float64 `json:"rsiOversold,omitempty"`
}

// Apply merges the patch over cfg.
func (p *ConfigPatch) Apply(cfg *Config) {
	if p.Enabled != nil {
		cfg.Enabled = *p.Enabled
	}
	if p.Strategy != nil {
		cfg.Strategy = *p.Strategy
	}
	if p.Params.BuyThreshold != nil {
		cfg.Params.BuyThreshold = *p.Params.BuyThreshold
	}
	if p.Params.SellThreshold != nil {
		cfg.Params.SellThreshold = *p.Params.SellThreshold
	}
	if p.Params.ShortPeriod != nil {
		cfg.Params.ShortPeriod = *p.Params.ShortPeriod
	}
	if p.Params.LongPeriod != nil {
		cfg.Params.LongPeriod = *p.Params.LongPeriod
	}
	if p.Params.RSIPeriod != nil {
		cfg.Params.RSIPeriod = *p.Params.RSIPeriod
	}
	if p.Params.RSIOverbought != nil {
		cfg.Params.RSIOverbought = *p.Params.RSIOverbought
	}
	if p.Params.RSIOversold != nil {
		cfg.Params.RSIOversold = *p.Params.RSIOversold
	}
}

type Decision struct {
	Action Action  `json:"action"`
	Reason string  `json:"reason"`
	Price  float64 `json:"price"`
}
