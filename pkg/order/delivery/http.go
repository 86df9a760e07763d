package delivery

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/SNEHARUTH11/fina/pkg/common"
	orderPkg "github.com/SNEHARUTH11/fina/pkg/order"
	orderUsecasePkg "github.com/SNEHARUTH11/fina/pkg/order/usecase"
)

type OrdersHandler struct {
	Ledger *orderUsecasePkg.Ledger
}

func (h *OrdersHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	spec := &orderPkg.Spec{}
	if ok := common.GetStructFromRequest(spec, r, w); !ok {
		return
	}

	o, err := h.Ledger.PlaceOrder(spec)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, orderPkg.ErrInsufficientBalance) ||
			errors.Is(err, orderPkg.ErrInsufficientHoldings) ||
			errors.Is(err, orderPkg.ErrInvalidOrder) {
			status = http.StatusUnprocessableEntity
		}
		common.RespJSONError(w, status, err, err.Error(), r.Context())
		return
	}
	common.WriteStructToResponse(o, r.Context(), w)
}

func (h *OrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.Ledger.CancelOrder(vars["order"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrdersHandler) Orders(w http.ResponseWriter, r *http.Request) {
	common.WriteStructToResponse(h.Ledger.Orders(), r.Context(), w)
}

func (h *OrdersHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	common.WriteStructToResponse(h.Ledger.Portfolio(), r.Context(), w)
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

func (h *OrdersHandler) Balance(w http.ResponseWriter, r *http.Request) {
	common.WriteStructToResponse(&balanceResponse{Balance: h.Ledger.Balance()}, r.Context(), w)
}
