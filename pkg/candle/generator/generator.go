package generator

import (
	"math"
	"math/rand"
	"time"

	candlePkg "github.com/SNEHARUTH11/fina/pkg/candle"
)

const (
	initialPriceMin = 50
	initialPriceMax = 500

	volatilityMin = 0.001
	volatilityMax = 0.01

	volumeBaseMin       = 1000
	volumeBaseMax       = 10000
	volumeMultiplierMin = 0.5
	volumeMultiplierMax = 2

	gapChance = 0.2
)

// Generator synthesizes candle sequences as a bounded random walk.
// All randomness goes through the injected source, so a seeded source
// makes the walk reproducible.
type Generator struct {
	rnd *rand.Rand
}

func New(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// InitialPrice draws a starting close price for an asset with no history.
func (g *Generator) InitialPrice() float64 {
	return initialPriceMin + g.rnd.Float64()*(initialPriceMax-initialPriceMin)
}

// Volatility draws the per-asset step-size parameter, fixed for the
// lifetime of the simulation.
func (g *Generator) Volatility() float64 {
	return volatilityMin + g.rnd.Float64()*(volatilityMax-volatilityMin)
}

func (g *Generator) volume(price float64) int64 {
	baseVolume := volumeBaseMin + g.rnd.Float64()*(volumeBaseMax-volumeBaseMin)
	multiplier := volumeMultiplierMin + g.rnd.Float64()*(volumeMultiplierMax-volumeMultiplierMin)
	return int64(math.Round(baseVolume * multiplier * (price / 100)))
}

// candleFrom builds one candle whose open follows previousClose, with an
// occasional gap. The realized high takes the max of the high draw, zero
// and the close draw (and the low the symmetric min), which is what keeps
// low <= min(open, close) <= max(open, close) <= high.
func (g *Generator) candleFrom(previousClose float64, t int64, volatility float64) *candlePkg.Candle {
	gapMultiplier := 0.0
	if g.rnd.Float64() > 1-gapChance {
		gapMultiplier = (g.rnd.Float64() - 0.5) * volatility * 2
	}
	open := previousClose * (1 + gapMultiplier)

	highDraw := g.rnd.Float64() * volatility * 2
	lowDraw := -g.rnd.Float64() * volatility * 2
	closeDraw := (g.rnd.Float64() - 0.5) * volatility * 2

	highChange := math.Max(highDraw, math.Max(0, closeDraw))
	lowChange := math.Min(lowDraw, math.Min(0, closeDraw))

	high := open * (1 + highChange)
	low := open * (1 + lowChange)
	closePrice := open * (1 + closeDraw)

	return &candlePkg.Candle{
		Time:   t,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  closePrice,
		Volume: g.volume(closePrice),
	}
}

// NextCandle produces exactly one successor candle at
// previous.Time + intervalSeconds.
func (g *Generator) NextCandle(previous *candlePkg.Candle, intervalSeconds int64, volatility float64) *candlePkg.Candle {
	return g.candleFrom(previous.Close, previous.Time+intervalSeconds, volatility)
}

// History seeds a chained sequence of count candles ending at now.
func (g *Generator) History(count int, intervalSeconds int64, volatility float64) []*candlePkg.Candle {
	start := time.Now().Unix() - int64(count)*intervalSeconds
	candles := make([]*candlePkg.Candle, 0, count)

	for i := 0; i < count; i++ {
		t := start + int64(i)*intervalSeconds
		previousClose := g.InitialPrice()
		if len(candles) > 0 {
			previousClose = candles[len(candles)-1].Close
		}
		candles = append(candles, g.candleFrom(previousClose, t, volatility))
	}

	return candles
}
