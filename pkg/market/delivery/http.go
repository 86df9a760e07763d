package delivery

import (
	"net/http"

	"github.com/gorilla/mux"

	assetPkg "github.com/SNEHARUTH11/fina/pkg/asset"
	"github.com/SNEHARUTH11/fina/pkg/common"
	marketUsecasePkg "github.com/SNEHARUTH11/fina/pkg/market/usecase"
)

type MarketHandler struct {
	Market *marketUsecasePkg.MarketManager
}

func (h *MarketHandler) Assets(w http.ResponseWriter, r *http.Request) {
	common.WriteStructToResponse(h.Market.Assets(), r.Context(), w)
}

func (h *MarketHandler) Candles(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	candles, err := h.Market.Candles(vars["asset"])
	if err != nil {
		common.RespJSONError(w, http.StatusNotFound, err, err.Error(), r.Context())
		return
	}
	common.WriteStructToResponse(candles, r.Context(), w)
}

func (h *MarketHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	common.WriteStructToResponse(h.Market.Patterns(vars["asset"]), r.Context(), w)
}

func (h *MarketHandler) Timeframe(w http.ResponseWriter, r *http.Request) {
	common.WriteStructToResponse(h.Market.Timeframe(), r.Context(), w)
}

type timeframeRequest struct {
	Timeframe assetPkg.Timeframe `json:"timeframe"`
}

func (h *MarketHandler) SetTimeframe(w http.ResponseWriter, r *http.Request) {
	in := &timeframeRequest{}
	if ok := common.GetStructFromRequest(in, r, w); !ok {
		return
	}

	if err := h.Market.SetTimeframe(in.Timeframe); err != nil {
		common.RespJSONError(w, http.StatusBadRequest, err, err.Error(), r.Context())
		return
	}
	common.WriteStructToResponse(in.Timeframe, r.Context(), w)
}
