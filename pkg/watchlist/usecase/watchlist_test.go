package usecase

import (
	"reflect"
	"testing"
)

func TestWatchlistManager(t *testing.T) {
	wm := NewWatchlistManager()

	wm.Add("1")
	wm.Add("3")
	wm.Add("1") // duplicate ignored

	if got := wm.List(); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Errorf("List() = %v, want [1 3]", got)
	}
	if !wm.Contains("1") || wm.Contains("2") {
		t.Errorf("Contains wrong: 1=%v 2=%v", wm.Contains("1"), wm.Contains("2"))
	}

	wm.Remove("1")
	if wm.Contains("1") {
		t.Error("removed id still present")
	}
	wm.Remove("1") // no-op

	if got := wm.List(); !reflect.DeepEqual(got, []string{"3"}) {
		t.Errorf("List() = %v, want [3]", got)
	}
}
