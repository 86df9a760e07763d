package usecase

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	botPkg "github.com/SNEHARUTH11/fina/pkg/bot"
	candlePkg "github.com/SNEHARUTH11/fina/pkg/candle"
	"github.com/SNEHARUTH11/fina/pkg/logging"
	orderPkg "github.com/SNEHARUTH11/fina/pkg/order"
)

type CandleSource interface {
	Candles(assetID string) ([]*candlePkg.Candle, error)
}

type OrderPlacer interface {
	PlaceOrder(spec *orderPkg.Spec) (*orderPkg.Order, error)
}

// BotsManager keeps per-asset bot configs and feeds strategy decisions
// back into the ledger as market orders.
type BotsManager struct {
	Market      CandleSource
	Ledger      OrderPlacer
	TradeAmount float64
	Logger      *logging.Logger

	mux     sync.Mutex
	configs map[string]*botPkg.Config
}

func NewBotsManager(market CandleSource, ledger OrderPlacer, tradeAmount float64, logger *logging.Logger) *BotsManager {
	return &BotsManager{
		Market:      market,
		Ledger:      ledger,
		TradeAmount: tradeAmount,
		Logger:      logger,
		configs:     map[string]*botPkg.Config{},
	}
}

// Config returns the bot config for the asset, the defaults when it was
// never configured.
func (bm *BotsManager) Config(assetID string) *botPkg.Config {
	bm.mux.Lock()
	defer bm.mux.Unlock()
	cfg, ok := bm.configs[assetID]
	if !ok {
		return botPkg.DefaultConfig()
	}
	cp := *cfg
	return &cp
}

// UpdateConfig merges a sparse patch over the current (or default)
// config for the asset.
func (bm *BotsManager) UpdateConfig(assetID string, patch *botPkg.ConfigPatch) *botPkg.Config {
	bm.mux.Lock()
	defer bm.mux.Unlock()

	cfg, ok := bm.configs[assetID]
	if !ok {
		cfg = botPkg.DefaultConfig()
		bm.configs[assetID] = cfg
	}
	patch.Apply(cfg)

	cp := *cfg
	return &cp
}

// Run executes one bot pass for the asset: decide, then place a market
// order for a non-hold decision. A rejected placement is reported, not
// fatal.
func (bm *BotsManager) Run(assetID string) error {
	cfg := bm.Config(assetID)
	if !cfg.Enabled {
		return nil
	}

	candles, err := bm.Market.Candles(assetID)
	if err != nil {
		return err
	}

	decision := Decide(candles, cfg)
	spec := OrderFromDecision(decision, assetID, bm.TradeAmount)
	if spec == nil {
		return nil
	}

	if _, err := bm.Ledger.PlaceOrder(spec); err != nil {
		return fmt.Errorf("bot order rejected: %v", err)
	}

	bm.Logger.Zap.Info("bot order placed",
		zap.String("logger", "bot"),
		zap.String("assetID", assetID),
		zap.String("action", string(decision.Action)),
		zap.String("reason", decision.Reason),
	)
	return nil
}
