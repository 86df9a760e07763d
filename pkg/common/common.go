package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	. "github.com/SNEHARUTH11/fina/pkg/logging"
)

type MyResponse struct {
	Body  interface{} `json:"body,omitempty"`
	Error string      `json:"error,omitempty"`
}

func RespJSONError(w http.ResponseWriter, status int, err error, resp string, ctx context.Context) {
	if err != nil {
		Sl(ctx).Error(err.Error())
	}
	w.WriteHeader(status)
	w.Header().Add("Content-Type", "application/json")
	respJSON, _ := json.Marshal(&MyResponse{
		Error: resp,
	})
	w.Write(respJSON)
}

func GetStructFromRequest(in interface{}, r *http.Request, w http.ResponseWriter) bool {
	body, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	ctx := r.Context()
	if err != nil {
		errTxt := fmt.Sprintf("request body read error: %v", body)
		RespJSONError(w, http.StatusBadRequest, err, errTxt, ctx)
		return false
	}

	err = json.Unmarshal(body, in)
	if err != nil {
		errTxt := fmt.Sprintf("json parsing error %v", err)
		RespJSONError(w, http.StatusBadRequest, err, errTxt, ctx)
		return false
	}
	return true
}

func WriteStructToResponse(in interface{}, ctx context.Context, w http.ResponseWriter) bool {
	w.Header().Set("Content-type", "application/json")
	respJson, err := json.Marshal(&MyResponse{
		Body: in,
	})

	if err != nil {
		errTxt := fmt.Sprintf("json marshal error: %v", err.Error())
		RespJSONError(w, http.StatusInternalServerError, err, errTxt, ctx)
		return false
	}
	w.Write(respJson)

	return true
}
