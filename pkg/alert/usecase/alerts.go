package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	alertPkg "github.com/SNEHARUTH11/fina/pkg/alert"
)

// AlertsManager owns price alerts. CheckAlerts only reads; the caller
// dispatches notifications and then commits with MarkTriggered, so
// nothing is lost when delivery fails.
type AlertsManager struct {
	mux    sync.Mutex
	alerts []*alertPkg.Alert
}

func NewAlertsManager() *AlertsManager {
	return &AlertsManager{alerts: make([]*alertPkg.Alert, 0)}
}

func (am *AlertsManager) AddAlert(spec *alertPkg.Spec) (*alertPkg.Alert, error) {
	if spec.Condition != alertPkg.Above && spec.Condition != alertPkg.Below {
		return nil, fmt.Errorf("unknown alert condition: %v", spec.Condition)
	}

	a := &alertPkg.Alert{
		ID:        uuid.NewString(),
		AssetID:   spec.AssetID,
		Price:     spec.Price,
		Condition: spec.Condition,
		Triggered: false,
		CreatedAt: time.Now().Unix(),
	}

	am.mux.Lock()
	am.alerts = append(am.alerts, a)
	am.mux.Unlock()

	return a, nil
}

func (am *AlertsManager) RemoveAlert(alertID string) {
	am.mux.Lock()
	defer am.mux.Unlock()

	for i, a := range am.alerts {
		if a.ID == alertID {
			am.alerts = append(am.alerts[:i], am.alerts[i+1:]...)
			return
		}
	}
}

// CheckAlerts returns the not-yet-triggered alerts for the asset whose
// condition the current price satisfies. State is not mutated here.
func (am *AlertsManager) CheckAlerts(assetID string, currentPrice float64) []*alertPkg.Alert {
	am.mux.Lock()
	defer am.mux.Unlock()

	triggered := make([]*alertPkg.Alert, 0)
	for _, a := range am.alerts {
		if a.AssetID != assetID || a.Triggered {
			continue
		}
		if (a.Condition == alertPkg.Above && currentPrice >= a.Price) ||
			(a.Condition == alertPkg.Below && currentPrice <= a.Price) {
			cp := *a
			triggered = append(triggered, &cp)
		}
	}
	return triggered
}

// MarkTriggered commits the triggered flag; it never re-arms.
func (am *AlertsManager) MarkTriggered(alertID string) {
	am.mux.Lock()
	defer am.mux.Unlock()

	for _, a := range am.alerts {
		if a.ID == alertID {
			a.Triggered = true
			return
		}
	}
}

func (am *AlertsManager) Alerts() []*alertPkg.Alert {
	am.mux.Lock()
	defer am.mux.Unlock()

	alerts := make([]*alertPkg.Alert, len(am.alerts))
	for i, a := range am.alerts {
		cp := *a
		alerts[i] = &cp
	}
	return alerts
}
