package delivery

import (
	"fmt"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"github.com/SNEHARUTH11/fina/pkg/common"
	sessionUsecasePkg "github.com/SNEHARUTH11/fina/pkg/session/usecase"
)

type SessionHandler struct {
	SessionsManager *sessionUsecasePkg.SessionsManager
	SessionTTL      time.Duration
}

type loginRequest struct {
	UserID int64  `json:"userId"`
	Login  string `json:"login"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	in := &loginRequest{}
	if ok := common.GetStructFromRequest(in, r, w); !ok {
		return
	}

	ttl := h.SessionTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	token, err := h.SessionsManager.CreateSession(in.UserID, in.Login, time.Now().Add(ttl))
	if err != nil {
		common.RespJSONError(w, http.StatusInternalServerError, err, "cannot create session", r.Context())
		return
	}
	common.WriteStructToResponse(&loginResponse{Token: token}, r.Context(), w)
}

func (h *SessionHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tokenString := r.Header.Get("Authorization")
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}
	if tokenString == "" {
		common.RespJSONError(w, http.StatusUnauthorized, nil, "no token", ctx)
		return
	}

	claims := &sessionUsecasePkg.JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, sessionUsecasePkg.ParseSecretGetter)
	if err != nil || !token.Valid {
		common.RespJSONError(w, http.StatusUnauthorized, err, "bad token", ctx)
		return
	}

	sess, err := h.SessionsManager.GetSession(claims.User.UserID)
	if err != nil {
		common.RespJSONError(w, http.StatusNotFound, err, fmt.Sprintf("session: %v", err), ctx)
		return
	}
	common.WriteStructToResponse(sess, ctx, w)
}
