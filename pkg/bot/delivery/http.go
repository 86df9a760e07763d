package delivery

import (
	"net/http"

	"github.com/gorilla/mux"

	botPkg "github.com/SNEHARUTH11/fina/pkg/bot"
	botUsecasePkg "github.com/SNEHARUTH11/fina/pkg/bot/usecase"
	"github.com/SNEHARUTH11/fina/pkg/common"
)

type BotsHandler struct {
	Bots *botUsecasePkg.BotsManager
}

func (h *BotsHandler) Config(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	common.WriteStructToResponse(h.Bots.Config(vars["asset"]), r.Context(), w)
}

func (h *BotsHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	patch := &botPkg.ConfigPatch{}
	if ok := common.GetStructFromRequest(patch, r, w); !ok {
		return
	}

	cfg := h.Bots.UpdateConfig(vars["asset"], patch)
	common.WriteStructToResponse(cfg, r.Context(), w)
}

func (h *BotsHandler) Run(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.Bots.Run(vars["asset"]); err != nil {
		common.RespJSONError(w, http.StatusUnprocessableEntity, err, err.Error(), r.Context())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
