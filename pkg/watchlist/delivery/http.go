package delivery

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SNEHARUTH11/fina/pkg/common"
	watchlistUsecasePkg "github.com/SNEHARUTH11/fina/pkg/watchlist/usecase"
)

type WatchlistHandler struct {
	Watchlist *watchlistUsecasePkg.WatchlistManager
}

func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	common.WriteStructToResponse(h.Watchlist.List(), r.Context(), w)
}

func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.Watchlist.Add(vars["asset"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.Watchlist.Remove(vars["asset"])
	w.WriteHeader(http.StatusNoContent)
}
