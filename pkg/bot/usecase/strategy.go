package usecase

import (
	"fmt"

	botPkg "github.com/SNEHARUTH11/fina/pkg/bot"
	candlePkg "github.com/SNEHARUTH11/fina/pkg/candle"
	orderPkg "github.com/SNEHARUTH11/fina/pkg/order"
)

// minCandles is the history a bot needs before it starts trading.
const minCandles = 30

func calculateSMA(candles []*candlePkg.Candle, period int) float64 {
	if len(candles) < period {
		return 0
	}

	sum := 0.0
	for _, c := range candles[len(candles)-period:] {
		sum += c.Close
	}
	return sum / float64(period)
}

func calculateRSI(candles []*candlePkg.Candle, period int) float64 {
	if len(candles) < period+1 {
		return 50
	}

	gains := 0.0
	losses := 0.0
	for i := len(candles) - period; i < len(candles); i++ {
		change := candles[i].Close - candles[i-1].Close
		if change >= 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	if losses == 0 {
		return 100
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

func smaStrategy(candles []*candlePkg.Candle, cfg *botPkg.Config) *botPkg.Decision {
	shortPeriod := cfg.Params.ShortPeriod
	longPeriod := cfg.Params.LongPeriod

	shortSMA := calculateSMA(candles, shortPeriod)
	longSMA := calculateSMA(candles, longPeriod)

	currentPrice := candles[len(candles)-1].Close

	if shortSMA > longSMA {
		return &botPkg.Decision{
			Action: botPkg.ActionBuy,
			Reason: fmt.Sprintf("Short-term SMA (%v) above long-term SMA (%v)", shortPeriod, longPeriod),
			Price:  currentPrice,
		}
	}
	if shortSMA < longSMA {
		return &botPkg.Decision{
			Action: botPkg.ActionSell,
			Reason: fmt.Sprintf("Short-term SMA (%v) below long-term SMA (%v)", shortPeriod, longPeriod),
			Price:  currentPrice,
		}
	}

	return &botPkg.Decision{
		Action: botPkg.ActionHold,
		Reason: "SMAs are too close - no clear signal",
		Price:  currentPrice,
	}
}

func buyLowSellHighStrategy(candles []*candlePkg.Candle, cfg *botPkg.Config) *botPkg.Decision {
	buyThreshold := cfg.Params.BuyThreshold
	sellThreshold := cfg.Params.SellThreshold

	currentPrice := candles[len(candles)-1].Close
	avgPrice := calculateSMA(candles, 10)

	priceDiff := (currentPrice - avgPrice) / avgPrice

	if priceDiff < -buyThreshold {
		return &botPkg.Decision{
			Action: botPkg.ActionBuy,
			Reason: fmt.Sprintf("Price dropped %.2f%% below average - buying the dip", priceDiff*-100),
			Price:  currentPrice,
		}
	}
	if priceDiff > sellThreshold {
		return &botPkg.Decision{
			Action: botPkg.ActionSell,
			Reason: fmt.Sprintf("Price rose %.2f%% above average - taking profit", priceDiff*100),
			Price:  currentPrice,
		}
	}

	return &botPkg.Decision{
		Action: botPkg.ActionHold,
		Reason: "Price within normal range",
		Price:  currentPrice,
	}
}

func rsiStrategy(candles []*candlePkg.Candle, cfg *botPkg.Config) *botPkg.Decision {
	period := cfg.Params.RSIPeriod
	oversold := cfg.Params.RSIOversold
	overbought := cfg.Params.RSIOverbought

	rsi := calculateRSI(candles, period)
	currentPrice := candles[len(candles)-1].Close

	if rsi < oversold {
		return &botPkg.Decision{
			Action: botPkg.ActionBuy,
			Reason: fmt.Sprintf("RSI (%.2f) below oversold threshold (%v)", rsi, oversold),
			Price:  currentPrice,
		}
	}
	if rsi > overbought {
		return &botPkg.Decision{
			Action: botPkg.ActionSell,
			Reason: fmt.Sprintf("RSI (%.2f) above overbought threshold (%v)", rsi, overbought),
			Price:  currentPrice,
		}
	}

	return &botPkg.Decision{
		Action: botPkg.ActionHold,
		Reason: fmt.Sprintf("RSI (%.2f) within normal range", rsi),
		Price:  currentPrice,
	}
}

// Decide maps a candle window and a bot config to a trading decision.
// It never fails: a disabled bot, short history or unknown strategy all
// come back as hold with a diagnostic reason.
func Decide(candles []*candlePkg.Candle, cfg *botPkg.Config) *botPkg.Decision {
	if !cfg.Enabled || len(candles) < minCandles {
		price := 0.0
		if len(candles) > 0 {
			price = candles[len(candles)-1].Close
		}
		return &botPkg.Decision{
			Action: botPkg.ActionHold,
			Reason: "Trading bot disabled or insufficient data",
			Price:  price,
		}
	}

	switch cfg.Strategy {
	case botPkg.StrategySMA:
		return smaStrategy(candles, cfg)
	case botPkg.StrategyBuyLowSellHigh:
		return buyLowSellHighStrategy(candles, cfg)
	case botPkg.StrategyRSI:
		return rsiStrategy(candles, cfg)
	default:
		return &botPkg.Decision{
			Action: botPkg.ActionHold,
			Reason: "No valid strategy selected",
			Price:  candles[len(candles)-1].Close,
		}
	}
}

// OrderFromDecision turns a non-hold decision into a market order spec.
func OrderFromDecision(decision *botPkg.Decision, assetID string, amount float64) *orderPkg.Spec {
	if decision.Action == botPkg.ActionHold {
		return nil
	}

	return &orderPkg.Spec{
		AssetID: assetID,
		Type:    orderPkg.Market,
		Side:    orderPkg.Side(decision.Action),
		Price:   decision.Price,
		Amount:  amount,
	}
}
