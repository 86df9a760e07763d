package generator

import (
	"math"
	"math/rand"
	"testing"

	candlePkg "github.com/SNEHARUTH11/fina/pkg/candle"
)

func checkOHLC(t *testing.T, c *candlePkg.Candle) {
	t.Helper()
	if c.Low > math.Min(c.Open, c.Close) {
		t.Errorf("low %v above min(open, close) %v", c.Low, math.Min(c.Open, c.Close))
	}
	if c.High < math.Max(c.Open, c.Close) {
		t.Errorf("high %v below max(open, close) %v", c.High, math.Max(c.Open, c.Close))
	}
	if c.Volume < 0 {
		t.Errorf("negative volume %v", c.Volume)
	}
}

func TestGenerator_OHLCInvariant(t *testing.T) {
	gen := New(rand.New(rand.NewSource(1)))

	volatilities := []float64{0.001, 0.0025, 0.005, 0.0075, 0.01}
	for _, vol := range volatilities {
		candles := gen.History(200, 60, vol)
		if len(candles) != 200 {
			t.Fatalf("history len = %v, want 200", len(candles))
		}
		for _, c := range candles {
			checkOHLC(t, c)
		}
	}
}

func TestGenerator_NextCandle(t *testing.T) {
	gen := New(rand.New(rand.NewSource(7)))

	prev := &candlePkg.Candle{Time: 1000, Open: 100, High: 101, Low: 99, Close: 100.5, Volume: 5000}
	next := gen.NextCandle(prev, 300, 0.01)

	if next.Time != 1300 {
		t.Errorf("next.Time = %v, want 1300", next.Time)
	}
	checkOHLC(t, next)

	// open stays within the gap bound of the previous close
	maxGap := prev.Close * 0.01
	if math.Abs(next.Open-prev.Close) > maxGap {
		t.Errorf("open %v too far from previous close %v", next.Open, prev.Close)
	}
}

func TestGenerator_HistoryChaining(t *testing.T) {
	gen := New(rand.New(rand.NewSource(42)))

	candles := gen.History(50, 900, 0.005)
	for i := 1; i < len(candles); i++ {
		if candles[i].Time-candles[i-1].Time != 900 {
			t.Errorf("candle %v: time step = %v, want 900", i, candles[i].Time-candles[i-1].Time)
		}
	}
}

func TestGenerator_InitialDraws(t *testing.T) {
	gen := New(rand.New(rand.NewSource(3)))

	for i := 0; i < 1000; i++ {
		price := gen.InitialPrice()
		if price < 50 || price >= 500 {
			t.Fatalf("initial price %v out of [50, 500)", price)
		}
		vol := gen.Volatility()
		if vol < 0.001 || vol >= 0.01 {
			t.Fatalf("volatility %v out of [0.001, 0.01)", vol)
		}
	}
}

func TestGenerator_Reproducible(t *testing.T) {
	first := New(rand.New(rand.NewSource(99))).NextCandle(&candlePkg.Candle{Time: 0, Close: 100}, 60, 0.005)
	second := New(rand.New(rand.NewSource(99))).NextCandle(&candlePkg.Candle{Time: 0, Close: 100}, 60, 0.005)

	if *first != *second {
		t.Errorf("same seed produced different candles: %v vs %v", first, second)
	}
}
