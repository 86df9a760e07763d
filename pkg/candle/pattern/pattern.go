package pattern

import (
	"math"

	candlePkg "github.com/SNEHARUTH11/fina/pkg/candle"
)

type Significance string

const (
	Bullish Significance = "bullish"
	Bearish Significance = "bearish"
	Neutral Significance = "neutral"
)

type Pattern struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Time         int64        `json:"time"`
	Significance Significance `json:"significance"`
}

func isDoji(c *candlePkg.Candle) bool {
	bodySize := math.Abs(c.Open - c.Close)
	totalRange := c.High - c.Low

	// on a zero-range candle only the exact-equality doji can fire
	if totalRange == 0 {
		return bodySize == 0
	}
	return bodySize/totalRange < 0.1
}

func isHammer(c *candlePkg.Candle) bool {
	bodySize := math.Abs(c.Open - c.Close)
	totalRange := c.High - c.Low
	if totalRange == 0 {
		return false
	}
	upperShadow := c.High - math.Max(c.Open, c.Close)
	lowerShadow := math.Min(c.Open, c.Close) - c.Low

	smallBody := bodySize/totalRange < 0.3
	longLowerShadow := lowerShadow > bodySize*2
	smallUpperShadow := upperShadow/totalRange < 0.1

	return smallBody && longLowerShadow && smallUpperShadow
}

func isShootingStar(c *candlePkg.Candle) bool {
	bodySize := math.Abs(c.Open - c.Close)
	totalRange := c.High - c.Low
	if totalRange == 0 {
		return false
	}
	upperShadow := c.High - math.Max(c.Open, c.Close)
	lowerShadow := math.Min(c.Open, c.Close) - c.Low

	smallBody := bodySize/totalRange < 0.3
	longUpperShadow := upperShadow > bodySize*2
	smallLowerShadow := lowerShadow/totalRange < 0.1

	return smallBody && longUpperShadow && smallLowerShadow
}

func isBullishEngulfing(previous, current *candlePkg.Candle) bool {
	return previous.Bearish() && current.Bullish() &&
		current.Open < previous.Close && current.Close > previous.Open
}

func isBearishEngulfing(previous, current *candlePkg.Candle) bool {
	return previous.Bullish() && current.Bearish() &&
		current.Open > previous.Close && current.Close < previous.Open
}

// Detect inspects the final two candles of the window and reports every
// recognized pattern. Patterns are not mutually exclusive.
func Detect(candles []*candlePkg.Candle) []*Pattern {
	if len(candles) < 2 {
		return []*Pattern{}
	}

	patterns := make([]*Pattern, 0)

	latest := candles[len(candles)-1]
	previous := candles[len(candles)-2]

	if isDoji(latest) {
		patterns = append(patterns, &Pattern{
			Name:         "Doji",
			Description:  "Indicates indecision in the market, potential reversal signal.",
			Time:         latest.Time,
			Significance: Neutral,
		})
	}

	if isHammer(latest) {
		patterns = append(patterns, &Pattern{
			Name:         "Hammer",
			Description:  "Potential bullish reversal pattern after a downtrend.",
			Time:         latest.Time,
			Significance: Bullish,
		})
	}

	if isShootingStar(latest) {
		patterns = append(patterns, &Pattern{
			Name:         "Shooting Star",
			Description:  "Potential bearish reversal pattern after an uptrend.",
			Time:         latest.Time,
			Significance: Bearish,
		})
	}

	if isBullishEngulfing(previous, latest) {
		patterns = append(patterns, &Pattern{
			Name:         "Bullish Engulfing",
			Description:  "Strong bullish reversal pattern showing buyers taking control.",
			Time:         latest.Time,
			Significance: Bullish,
		})
	}

	if isBearishEngulfing(previous, latest) {
		patterns = append(patterns, &Pattern{
			Name:         "Bearish Engulfing",
			Description:  "Strong bearish reversal pattern showing sellers taking control.",
			Time:         latest.Time,
			Significance: Bearish,
		})
	}

	return patterns
}
