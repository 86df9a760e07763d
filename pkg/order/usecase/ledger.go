package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SNEHARUTH11/fina/pkg/metrics"
	orderPkg "github.com/SNEHARUTH11/fina/pkg/order"
)

// Ledger owns orders, the cash balance and asset holdings. Market orders
// settle synchronously at placement; limit orders wait for ProcessOrders.
// A single mutex covers all three because a fill touches them together.
type Ledger struct {
	mux      sync.Mutex
	orders   []*orderPkg.Order
	holdings []*orderPkg.Holding
	balance  float64
}

func NewLedger(initialBalance float64) *Ledger {
	metrics.Balance.Set(initialBalance)
	return &Ledger{
		orders:   make([]*orderPkg.Order, 0),
		holdings: make([]*orderPkg.Holding, 0),
		balance:  initialBalance,
	}
}

func validateSpec(spec *orderPkg.Spec) error {
	if spec.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", orderPkg.ErrInvalidOrder)
	}
	if spec.Type != orderPkg.Market && spec.Type != orderPkg.Limit {
		return fmt.Errorf("%w: unknown type %v", orderPkg.ErrInvalidOrder, spec.Type)
	}
	if spec.Side != orderPkg.Buy && spec.Side != orderPkg.Sell {
		return fmt.Errorf("%w: unknown side %v", orderPkg.ErrInvalidOrder, spec.Side)
	}
	return nil
}

// PlaceOrder records a new order. A market order is settled immediately;
// when the settlement checks reject it the order is not recorded at all.
func (l *Ledger) PlaceOrder(spec *orderPkg.Spec) (*orderPkg.Order, error) {
	if err := validateSpec(spec); err != nil {
		metrics.OrdersRejected.Inc()
		return nil, err
	}

	l.mux.Lock()
	defer l.mux.Unlock()

	o := &orderPkg.Order{
		ID:        uuid.NewString(),
		AssetID:   spec.AssetID,
		Type:      spec.Type,
		Side:      spec.Side,
		Price:     spec.Price,
		Amount:    spec.Amount,
		Status:    orderPkg.Pending,
		CreatedAt: time.Now().Unix(),
	}

	if o.Type == orderPkg.Market {
		if err := l.applyFill(o); err != nil {
			metrics.OrdersRejected.Inc()
			return nil, err
		}
		o.Status = orderPkg.Filled
		o.FilledAt = time.Now().Unix()
	}

	l.orders = append(l.orders, o)
	return o, nil
}

// applyFill moves cash and holdings for one fill at the order's price.
// It either applies completely or returns the rejection untouched.
func (l *Ledger) applyFill(o *orderPkg.Order) error {
	cost := o.Price * o.Amount

	switch o.Side {
	case orderPkg.Buy:
		if cost > l.balance {
			return orderPkg.ErrInsufficientBalance
		}
		l.balance -= cost
		if h := l.findHolding(o.AssetID); h != nil {
			newAmount := h.Amount + o.Amount
			h.AveragePrice = (h.AveragePrice*h.Amount + cost) / newAmount
			h.Amount = newAmount
		} else {
			l.holdings = append(l.holdings, &orderPkg.Holding{
				AssetID:      o.AssetID,
				Amount:       o.Amount,
				AveragePrice: o.Price,
			})
		}
	case orderPkg.Sell:
		h := l.findHolding(o.AssetID)
		if h == nil || h.Amount < o.Amount {
			return orderPkg.ErrInsufficientHoldings
		}
		l.balance += cost
		if h.Amount == o.Amount {
			l.removeHolding(o.AssetID)
		} else {
			h.Amount -= o.Amount
		}
	}

	metrics.OrdersFilled.WithLabelValues(string(o.Side)).Inc()
	metrics.Balance.Set(l.balance)
	return nil
}

func (l *Ledger) findHolding(assetID string) *orderPkg.Holding {
	for _, h := range l.holdings {
		if h.AssetID == assetID {
			return h
		}
	}
	return nil
}

func (l *Ledger) removeHolding(assetID string) {
	for i, h := range l.holdings {
		if h.AssetID == assetID {
			l.holdings = append(l.holdings[:i], l.holdings[i+1:]...)
			return
		}
	}
}

// CancelOrder moves a pending order to canceled. Orders already filled or
// canceled are left untouched, so a repeated cancel is safe.
func (l *Ledger) CancelOrder(orderID string) {
	l.mux.Lock()
	defer l.mux.Unlock()

	for _, o := range l.orders {
		if o.ID == orderID && o.Status == orderPkg.Pending {
			o.Status = orderPkg.Canceled
			return
		}
	}
}

// ProcessOrders is the per-tick settlement pass for one asset. Pending
// limit orders are scanned in insertion order; a fill happens at the
// order's limit price. An under-funded fill is skipped, not canceled, and
// retried on a later tick.
func (l *Ledger) ProcessOrders(assetID string, currentPrice float64) {
	l.mux.Lock()
	defer l.mux.Unlock()

	for _, o := range l.orders {
		if o.AssetID != assetID || o.Status != orderPkg.Pending || o.Type != orderPkg.Limit {
			continue
		}
		shouldFill := (o.Side == orderPkg.Buy && currentPrice <= o.Price) ||
			(o.Side == orderPkg.Sell && currentPrice >= o.Price)
		if !shouldFill {
			continue
		}
		if err := l.applyFill(o); err != nil {
			continue
		}
		o.Status = orderPkg.Filled
		o.FilledAt = time.Now().Unix()
	}
}

func (l *Ledger) Orders() []*orderPkg.Order {
	l.mux.Lock()
	defer l.mux.Unlock()

	orders := make([]*orderPkg.Order, len(l.orders))
	for i, o := range l.orders {
		cp := *o
		orders[i] = &cp
	}
	return orders
}

func (l *Ledger) Portfolio() []*orderPkg.Holding {
	l.mux.Lock()
	defer l.mux.Unlock()

	holdings := make([]*orderPkg.Holding, len(l.holdings))
	for i, h := range l.holdings {
		cp := *h
		holdings[i] = &cp
	}
	return holdings
}

func (l *Ledger) Balance() float64 {
	l.mux.Lock()
	defer l.mux.Unlock()
	return l.balance
}
