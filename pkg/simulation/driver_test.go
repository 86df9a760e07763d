package simulation

import (
	"math/rand"
	"testing"

	alertPkg "github.com/SNEHARUTH11/fina/pkg/alert"
	alertUsecasePkg "github.com/SNEHARUTH11/fina/pkg/alert/usecase"
	botPkg "github.com/SNEHARUTH11/fina/pkg/bot"
	botUsecasePkg "github.com/SNEHARUTH11/fina/pkg/bot/usecase"
	generatorPkg "github.com/SNEHARUTH11/fina/pkg/candle/generator"
	"github.com/SNEHARUTH11/fina/pkg/logging"
	marketUsecasePkg "github.com/SNEHARUTH11/fina/pkg/market/usecase"
	orderPkg "github.com/SNEHARUTH11/fina/pkg/order"
	orderUsecasePkg "github.com/SNEHARUTH11/fina/pkg/order/usecase"
)

type countingNotifier struct {
	notified []*alertPkg.Alert
}

func (n *countingNotifier) Notify(a *alertPkg.Alert, currentPrice float64) {
	n.notified = append(n.notified, a)
}

func newTestDriver(seed int64, historyCount int) (*Driver, *countingNotifier) {
	logger := logging.New()
	market := marketUsecasePkg.NewMarketManager(generatorPkg.New(rand.New(rand.NewSource(seed))))
	market.Initialize(historyCount)

	ledger := orderUsecasePkg.NewLedger(10000)
	alerts := alertUsecasePkg.NewAlertsManager()
	bots := botUsecasePkg.NewBotsManager(market, ledger, 0.1, logger)
	notifier := &countingNotifier{}

	return &Driver{
		Market:   market,
		Ledger:   ledger,
		Alerts:   alerts,
		Bots:     bots,
		Notifier: notifier,
		Gate:     AlwaysOpen(),
		Logger:   logger,
	}, notifier
}

func TestDriver_TickAdvancesEveryAsset(t *testing.T) {
	d, _ := newTestDriver(1, 40)

	d.Tick()

	for _, a := range d.Market.Assets() {
		candles, err := d.Market.Candles(a.ID)
		if err != nil {
			t.Fatalf("Candles(%v): %v", a.ID, err)
		}
		if len(candles) != 41 {
			t.Errorf("asset %v: %v candles after tick, want 41", a.ID, len(candles))
		}
	}
}

func TestDriver_TickSettlesEligibleLimitOrders(t *testing.T) {
	d, _ := newTestDriver(2, 40)

	price, ok := d.Market.LatestClose("1")
	if !ok {
		t.Fatal("no price for asset 1")
	}

	// a buy limit far above the market always satisfies the fill condition
	o, err := d.Ledger.PlaceOrder(&orderPkg.Spec{AssetID: "1", Type: orderPkg.Limit, Side: orderPkg.Buy, Price: price * 2, Amount: 0.01})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	d.Tick()

	for _, got := range d.Ledger.Orders() {
		if got.ID == o.ID && got.Status != orderPkg.Filled {
			t.Errorf("limit order status = %v, want filled", got.Status)
		}
	}
}

func TestDriver_AlertNotifiedOnceAndCommitted(t *testing.T) {
	d, notifier := newTestDriver(3, 40)

	// price threshold 0: every tick satisfies the above condition
	a, err := d.Alerts.AddAlert(&alertPkg.Spec{AssetID: "1", Price: 0, Condition: alertPkg.Above})
	if err != nil {
		t.Fatalf("AddAlert: %v", err)
	}

	d.Tick()
	d.Tick()

	if len(notifier.notified) != 1 {
		t.Fatalf("notifications = %v, want 1", len(notifier.notified))
	}
	if notifier.notified[0].ID != a.ID {
		t.Errorf("notified alert = %v, want %v", notifier.notified[0].ID, a.ID)
	}
}

func TestDriver_DisabledBotsPlaceNoOrders(t *testing.T) {
	d, _ := newTestDriver(4, 40)

	d.Tick()

	if orders := d.Ledger.Orders(); len(orders) != 0 {
		t.Errorf("orders after tick with disabled bots = %v, want none", len(orders))
	}
}

func TestDriver_EnabledBotTrades(t *testing.T) {
	d, _ := newTestDriver(5, 40)

	enabled := true
	d.Bots.UpdateConfig("1", &botPkg.ConfigPatch{Enabled: &enabled})

	// tick until a non-hold decision lands an order; the walk drifts, so
	// the sma strategy crosses within a bounded number of ticks
	for i := 0; i < 200; i++ {
		d.Tick()
		if len(d.Ledger.Orders()) > 0 {
			return
		}
	}
	t.Error("enabled bot never traded")
}
