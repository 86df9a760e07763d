package simulation

import (
	"context"
	"time"

	"go.uber.org/zap"

	alertDeliveryPkg "github.com/SNEHARUTH11/fina/pkg/alert/delivery"
	alertUsecasePkg "github.com/SNEHARUTH11/fina/pkg/alert/usecase"
	botUsecasePkg "github.com/SNEHARUTH11/fina/pkg/bot/usecase"
	"github.com/SNEHARUTH11/fina/pkg/logging"
	marketUsecasePkg "github.com/SNEHARUTH11/fina/pkg/market/usecase"
	orderUsecasePkg "github.com/SNEHARUTH11/fina/pkg/order/usecase"

	"github.com/SNEHARUTH11/fina/pkg/metrics"
)

// Gate tells the driver whether anybody is looking; with no active
// session the simulation stands still.
type Gate interface {
	Active() bool
}

type alwaysOpen struct{}

func (alwaysOpen) Active() bool { return true }

// AlwaysOpen disables the session gate (used by tests and headless runs).
func AlwaysOpen() Gate { return alwaysOpen{} }

// Driver owns the clock. Each tick it advances every asset's candle
// window, runs the settlement pass, checks alerts and runs the bots. The
// core components never see the timer itself.
type Driver struct {
	Market   *marketUsecasePkg.MarketManager
	Ledger   *orderUsecasePkg.Ledger
	Alerts   *alertUsecasePkg.AlertsManager
	Bots     *botUsecasePkg.BotsManager
	Notifier alertDeliveryPkg.Notifier
	Gate     Gate
	Logger   *logging.Logger
}

// Run ticks at the given cadence until ctx is done.
func (d *Driver) Run(ctx context.Context, tickInterval time.Duration) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if d.Gate != nil && !d.Gate.Active() {
				continue
			}
			d.Tick()
		}
	}
}

// Tick performs one full simulation step synchronously.
func (d *Driver) Tick() {
	d.Market.AdvanceTick()
	metrics.Ticks.Inc()

	for _, a := range d.Market.Assets() {
		price, ok := d.Market.LatestClose(a.ID)
		if !ok {
			continue
		}

		d.Ledger.ProcessOrders(a.ID, price)

		for _, triggered := range d.Alerts.CheckAlerts(a.ID, price) {
			if d.Notifier != nil {
				d.Notifier.Notify(triggered, price)
			}
			d.Alerts.MarkTriggered(triggered.ID)
			metrics.AlertsTriggered.Inc()
		}

		if err := d.Bots.Run(a.ID); err != nil {
			d.Logger.Zap.Warn("trading bot",
				zap.String("logger", "driver"),
				zap.String("assetID", a.ID),
				zap.String("err", err.Error()),
			)
		}
	}
}
