package usecase

import (
	"testing"

	alertPkg "github.com/SNEHARUTH11/fina/pkg/alert"
)

func TestAlertsManager_CheckAlerts(t *testing.T) {
	tests := []struct {
		name      string
		condition alertPkg.Condition
		threshold float64
		price     float64
		wantHit   bool
	}{
		{name: "above satisfied at threshold", condition: alertPkg.Above, threshold: 100, price: 100, wantHit: true},
		{name: "above satisfied over threshold", condition: alertPkg.Above, threshold: 100, price: 150, wantHit: true},
		{name: "above not satisfied", condition: alertPkg.Above, threshold: 100, price: 99.9, wantHit: false},
		{name: "below satisfied at threshold", condition: alertPkg.Below, threshold: 100, price: 100, wantHit: true},
		{name: "below satisfied under threshold", condition: alertPkg.Below, threshold: 100, price: 50, wantHit: true},
		{name: "below not satisfied", condition: alertPkg.Below, threshold: 100, price: 100.1, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := NewAlertsManager()
			a, err := am.AddAlert(&alertPkg.Spec{AssetID: "1", Price: tt.threshold, Condition: tt.condition})
			if err != nil {
				t.Fatalf("AddAlert() error = %v", err)
			}

			hits := am.CheckAlerts("1", tt.price)
			if (len(hits) == 1) != tt.wantHit {
				t.Errorf("CheckAlerts() = %v hits, wantHit %v", len(hits), tt.wantHit)
			}
			if tt.wantHit && hits[0].ID != a.ID {
				t.Errorf("hit id = %v, want %v", hits[0].ID, a.ID)
			}
		})
	}
}

func TestAlertsManager_SingleTrigger(t *testing.T) {
	am := NewAlertsManager()
	a, _ := am.AddAlert(&alertPkg.Spec{AssetID: "1", Price: 100, Condition: alertPkg.Above})

	// CheckAlerts reads only; repeating it still reports the alert
	if hits := am.CheckAlerts("1", 120); len(hits) != 1 {
		t.Fatalf("first check: %v hits, want 1", len(hits))
	}
	if hits := am.CheckAlerts("1", 120); len(hits) != 1 {
		t.Fatalf("uncommitted second check: %v hits, want 1", len(hits))
	}

	am.MarkTriggered(a.ID)

	if hits := am.CheckAlerts("1", 120); len(hits) != 0 {
		t.Errorf("triggered alert re-reported: %v hits", len(hits))
	}

	alerts := am.Alerts()
	if len(alerts) != 1 || !alerts[0].Triggered {
		t.Errorf("alert not marked triggered: %+v", alerts)
	}
}

func TestAlertsManager_OtherAssetIgnored(t *testing.T) {
	am := NewAlertsManager()
	am.AddAlert(&alertPkg.Spec{AssetID: "1", Price: 100, Condition: alertPkg.Above})

	if hits := am.CheckAlerts("2", 120); len(hits) != 0 {
		t.Errorf("alert for another asset reported: %v hits", len(hits))
	}
}

func TestAlertsManager_RemoveAlert(t *testing.T) {
	am := NewAlertsManager()
	a, _ := am.AddAlert(&alertPkg.Spec{AssetID: "1", Price: 100, Condition: alertPkg.Below})

	am.RemoveAlert(a.ID)
	if alerts := am.Alerts(); len(alerts) != 0 {
		t.Errorf("alerts after remove = %v, want empty", alerts)
	}

	// removing again is a no-op
	am.RemoveAlert(a.ID)
}

func TestAlertsManager_UnknownCondition(t *testing.T) {
	am := NewAlertsManager()
	if _, err := am.AddAlert(&alertPkg.Spec{AssetID: "1", Price: 100, Condition: "crosses"}); err == nil {
		t.Error("AddAlert() accepted unknown condition")
	}
}
