package usecase

import (
	"strings"
	"testing"

	botPkg "github.com/SNEHARUTH11/fina/pkg/bot"
	candlePkg "github.com/SNEHARUTH11/fina/pkg/candle"
	orderPkg "github.com/SNEHARUTH11/fina/pkg/order"
)

func candlesFromCloses(closes []float64) []*candlePkg.Candle {
	candles := make([]*candlePkg.Candle, len(closes))
	for i, c := range closes {
		candles[i] = &candlePkg.Candle{
			Time:  int64(i) * 60,
			Open:  c,
			High:  c,
			Low:   c,
			Close: c,
		}
	}
	return candles
}

func flatCloses(n int, value float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = value
	}
	return closes
}

func risingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	return closes
}

func alternatingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i%2)
	}
	return closes
}

func fallingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}
	return closes
}

func enabledConfig(strategy botPkg.Strategy) *botPkg.Config {
	cfg := botPkg.DefaultConfig()
	cfg.Enabled = true
	cfg.Strategy = strategy
	return cfg
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		closes     []float64
		cfg        *botPkg.Config
		wantAction botPkg.Action
		wantReason string
	}{
		{
			name:       "disabled bot holds",
			closes:     risingCloses(50),
			cfg:        botPkg.DefaultConfig(),
			wantAction: botPkg.ActionHold,
			wantReason: "disabled or insufficient data",
		},
		{
			name:       "insufficient history holds",
			closes:     risingCloses(29),
			cfg:        enabledConfig(botPkg.StrategySMA),
			wantAction: botPkg.ActionHold,
			wantReason: "disabled or insufficient data",
		},
		{
			name:       "unknown strategy holds",
			closes:     risingCloses(50),
			cfg:        enabledConfig(botPkg.Strategy("macd")),
			wantAction: botPkg.ActionHold,
			wantReason: "No valid strategy",
		},
		{
			name:       "sma uptrend buys",
			closes:     risingCloses(50),
			cfg:        enabledConfig(botPkg.StrategySMA),
			wantAction: botPkg.ActionBuy,
			wantReason: "SMA (9) above",
		},
		{
			name:       "sma downtrend sells",
			closes:     fallingCloses(50),
			cfg:        enabledConfig(botPkg.StrategySMA),
			wantAction: botPkg.ActionSell,
			wantReason: "SMA (9) below",
		},
		{
			name:       "sma flat holds",
			closes:     flatCloses(50, 100),
			cfg:        enabledConfig(botPkg.StrategySMA),
			wantAction: botPkg.ActionHold,
			wantReason: "no clear signal",
		},
		{
			name:       "dip below average buys",
			closes:     append(flatCloses(30, 100), 90),
			cfg:        enabledConfig(botPkg.StrategyBuyLowSellHigh),
			wantAction: botPkg.ActionBuy,
			wantReason: "buying the dip",
		},
		{
			name:       "rise above average sells",
			closes:     append(flatCloses(30, 100), 110),
			cfg:        enabledConfig(botPkg.StrategyBuyLowSellHigh),
			wantAction: botPkg.ActionSell,
			wantReason: "taking profit",
		},
		{
			name:       "price near average holds",
			closes:     flatCloses(31, 100),
			cfg:        enabledConfig(botPkg.StrategyBuyLowSellHigh),
			wantAction: botPkg.ActionHold,
			wantReason: "normal range",
		},
		{
			name:       "rsi overbought sells",
			closes:     risingCloses(50),
			cfg:        enabledConfig(botPkg.StrategyRSI),
			wantAction: botPkg.ActionSell,
			wantReason: "RSI (100.00) above overbought threshold (70)",
		},
		{
			name:       "rsi oversold buys",
			closes:     fallingCloses(50),
			cfg:        enabledConfig(botPkg.StrategyRSI),
			wantAction: botPkg.ActionBuy,
			wantReason: "RSI (0.00) below oversold threshold (30)",
		},
		{
			name:       "rsi neutral holds",
			closes:     alternatingCloses(50),
			cfg:        enabledConfig(botPkg.StrategyRSI),
			wantAction: botPkg.ActionHold,
			wantReason: "within normal range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candles := candlesFromCloses(tt.closes)
			decision := Decide(candles, tt.cfg)

			if decision.Action != tt.wantAction {
				t.Errorf("action = %v, want %v (reason: %v)", decision.Action, tt.wantAction, decision.Reason)
			}
			if !strings.Contains(decision.Reason, tt.wantReason) {
				t.Errorf("reason = %q, want substring %q", decision.Reason, tt.wantReason)
			}
			if want := tt.closes[len(tt.closes)-1]; decision.Price != want {
				t.Errorf("price = %v, want %v", decision.Price, want)
			}
		})
	}
}

func TestDecide_NoCandles(t *testing.T) {
	decision := Decide(nil, botPkg.DefaultConfig())
	if decision.Action != botPkg.ActionHold {
		t.Errorf("action = %v, want hold", decision.Action)
	}
	if decision.Price != 0 {
		t.Errorf("price = %v, want 0", decision.Price)
	}
}

func TestCalculateSMA_InsufficientHistory(t *testing.T) {
	if got := calculateSMA(candlesFromCloses([]float64{1, 2, 3}), 10); got != 0 {
		t.Errorf("calculateSMA = %v, want 0", got)
	}
}

func TestCalculateRSI_Fallbacks(t *testing.T) {
	// short history defaults to neutral
	if got := calculateRSI(candlesFromCloses([]float64{1, 2, 3}), 14); got != 50 {
		t.Errorf("calculateRSI short history = %v, want 50", got)
	}
	// no losses saturates at 100
	if got := calculateRSI(candlesFromCloses(risingCloses(20)), 14); got != 100 {
		t.Errorf("calculateRSI no losses = %v, want 100", got)
	}
}

func TestOrderFromDecision(t *testing.T) {
	if spec := OrderFromDecision(&botPkg.Decision{Action: botPkg.ActionHold, Price: 100}, "1", 0.1); spec != nil {
		t.Errorf("hold produced an order: %v", spec)
	}

	spec := OrderFromDecision(&botPkg.Decision{Action: botPkg.ActionBuy, Price: 100}, "1", 0.1)
	if spec == nil {
		t.Fatal("buy decision produced no order")
	}
	if spec.Type != orderPkg.Market || spec.Side != orderPkg.Buy || spec.Price != 100 || spec.Amount != 0.1 {
		t.Errorf("unexpected spec: %+v", spec)
	}
}
