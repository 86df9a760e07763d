package delivery

import (
	"net/http"

	"github.com/gorilla/mux"

	alertPkg "github.com/SNEHARUTH11/fina/pkg/alert"
	alertUsecasePkg "github.com/SNEHARUTH11/fina/pkg/alert/usecase"
	"github.com/SNEHARUTH11/fina/pkg/common"
)

type AlertsHandler struct {
	Alerts *alertUsecasePkg.AlertsManager
}

func (h *AlertsHandler) AddAlert(w http.ResponseWriter, r *http.Request) {
	spec := &alertPkg.Spec{}
	if ok := common.GetStructFromRequest(spec, r, w); !ok {
		return
	}

	a, err := h.Alerts.AddAlert(spec)
	if err != nil {
		common.RespJSONError(w, http.StatusBadRequest, err, err.Error(), r.Context())
		return
	}
	common.WriteStructToResponse(a, r.Context(), w)
}

func (h *AlertsHandler) RemoveAlert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.Alerts.RemoveAlert(vars["alert"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *AlertsHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	common.WriteStructToResponse(h.Alerts.Alerts(), r.Context(), w)
}
