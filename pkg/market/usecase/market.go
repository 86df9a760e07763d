package usecase

import (
	"fmt"
	"sync"

	assetPkg "github.com/SNEHARUTH11/fina/pkg/asset"
	candlePkg "github.com/SNEHARUTH11/fina/pkg/candle"
	generatorPkg "github.com/SNEHARUTH11/fina/pkg/candle/generator"
	patternPkg "github.com/SNEHARUTH11/fina/pkg/candle/pattern"
)

// maxCandles bounds every per-asset window; older candles are dropped.
const maxCandles = 500

// Update is what tick consumers receive for every advanced asset.
type Update struct {
	AssetID  string                `json:"assetId"`
	Candle   *candlePkg.Candle     `json:"candle"`
	Patterns []*patternPkg.Pattern `json:"patterns"`
}

type Consumers struct {
	Channels map[chan Update]struct{}
	Mux      *sync.RWMutex
}

// MarketManager owns the synthetic market state: the asset catalog, a
// sliding candle window per asset, the fixed per-asset volatility and the
// patterns recomputed on every tick.
type MarketManager struct {
	Generator      *generatorPkg.Generator
	TicksConsumers *Consumers

	mux        sync.RWMutex
	timeframe  assetPkg.Timeframe
	assets     []*assetPkg.Asset
	candles    map[string][]*candlePkg.Candle
	volatility map[string]float64
	patterns   map[string][]*patternPkg.Pattern
}

func NewMarketManager(gen *generatorPkg.Generator) *MarketManager {
	return &MarketManager{
		Generator: gen,
		TicksConsumers: &Consumers{
			Mux:      &sync.RWMutex{},
			Channels: map[chan Update]struct{}{},
		},
		timeframe:  assetPkg.Timeframe15m,
		candles:    map[string][]*candlePkg.Candle{},
		volatility: map[string]float64{},
		patterns:   map[string][]*patternPkg.Pattern{},
	}
}

// Initialize creates the asset catalog and seeds historic candles for
// every asset. Called once at simulation start.
func (mm *MarketManager) Initialize(historyCount int) {
	mm.mux.Lock()
	defer mm.mux.Unlock()

	mm.assets = assetPkg.Catalog()
	intervalSeconds := mm.timeframe.IntervalSeconds()

	for _, a := range mm.assets {
		vol := mm.Generator.Volatility()
		mm.volatility[a.ID] = vol
		mm.candles[a.ID] = mm.Generator.History(historyCount, intervalSeconds, vol)
		mm.patterns[a.ID] = patternPkg.Detect(mm.candles[a.ID])
	}
}

// AdvanceTick appends one candle per asset, trims the window and
// recomputes patterns. Subscribed consumers get a non-blocking update.
func (mm *MarketManager) AdvanceTick() {
	mm.mux.Lock()
	defer mm.mux.Unlock()

	intervalSeconds := mm.timeframe.IntervalSeconds()

	for _, a := range mm.assets {
		window := mm.candles[a.ID]
		if len(window) == 0 {
			continue
		}
		next := mm.Generator.NextCandle(window[len(window)-1], intervalSeconds, mm.volatility[a.ID])
		window = append(window, next)
		if len(window) > maxCandles {
			window = window[len(window)-maxCandles:]
		}
		mm.candles[a.ID] = window
		mm.patterns[a.ID] = patternPkg.Detect(window)

		mm.TicksConsumers.Mux.RLock()
		for ch := range mm.TicksConsumers.Channels {
			select {
			case ch <- Update{AssetID: a.ID, Candle: next, Patterns: mm.patterns[a.ID]}:
			default:
			}
		}
		mm.TicksConsumers.Mux.RUnlock()
	}
}

func (mm *MarketManager) Subscribe() chan Update {
	ch := make(chan Update, 1000)
	mm.TicksConsumers.Mux.Lock()
	mm.TicksConsumers.Channels[ch] = struct{}{}
	mm.TicksConsumers.Mux.Unlock()
	return ch
}

func (mm *MarketManager) Unsubscribe(ch chan Update) {
	mm.TicksConsumers.Mux.Lock()
	delete(mm.TicksConsumers.Channels, ch)
	mm.TicksConsumers.Mux.Unlock()
}

func (mm *MarketManager) Assets() []*assetPkg.Asset {
	mm.mux.RLock()
	defer mm.mux.RUnlock()
	return mm.assets
}

func (mm *MarketManager) Candles(assetID string) ([]*candlePkg.Candle, error) {
	mm.mux.RLock()
	defer mm.mux.RUnlock()
	window, ok := mm.candles[assetID]
	if !ok {
		return nil, fmt.Errorf("unknown asset: %v", assetID)
	}
	return window, nil
}

func (mm *MarketManager) Patterns(assetID string) []*patternPkg.Pattern {
	mm.mux.RLock()
	defer mm.mux.RUnlock()
	return mm.patterns[assetID]
}

func (mm *MarketManager) Volatility(assetID string) float64 {
	mm.mux.RLock()
	defer mm.mux.RUnlock()
	return mm.volatility[assetID]
}

// LatestClose returns the newest close price for the asset, or false when
// the asset has no candles yet.
func (mm *MarketManager) LatestClose(assetID string) (float64, bool) {
	mm.mux.RLock()
	defer mm.mux.RUnlock()
	window := mm.candles[assetID]
	if len(window) == 0 {
		return 0, false
	}
	return window[len(window)-1].Close, true
}

func (mm *MarketManager) Timeframe() assetPkg.Timeframe {
	mm.mux.RLock()
	defer mm.mux.RUnlock()
	return mm.timeframe
}

func (mm *MarketManager) SetTimeframe(tf assetPkg.Timeframe) error {
	if !tf.Valid() {
		return fmt.Errorf("unknown timeframe: %v", tf)
	}
	mm.mux.Lock()
	mm.timeframe = tf
	mm.mux.Unlock()
	return nil
}
