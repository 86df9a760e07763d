package usecase

import "sync"

// WatchlistManager keeps the ordered set of watched asset ids.
type WatchlistManager struct {
	mux sync.Mutex
	ids []string
}

func NewWatchlistManager() *WatchlistManager {
	return &WatchlistManager{ids: make([]string, 0)}
}

func (wm *WatchlistManager) Add(assetID string) {
	wm.mux.Lock()
	defer wm.mux.Unlock()

	for _, id := range wm.ids {
		if id == assetID {
			return
		}
	}
	wm.ids = append(wm.ids, assetID)
}

func (wm *WatchlistManager) Remove(assetID string) {
	wm.mux.Lock()
	defer wm.mux.Unlock()

	for i, id := range wm.ids {
		if id == assetID {
			wm.ids = append(wm.ids[:i], wm.ids[i+1:]...)
			return
		}
	}
}

func (wm *WatchlistManager) Contains(assetID string) bool {
	wm.mux.Lock()
	defer wm.mux.Unlock()

	for _, id := range wm.ids {
		if id == assetID {
			return true
		}
	}
	return false
}

func (wm *WatchlistManager) List() []string {
	wm.mux.Lock()
	defer wm.mux.Unlock()

	ids := make([]string, len(wm.ids))
	copy(ids, wm.ids)
	return ids
}
