package httpjson

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/programme-lv/console/apierr"
)

// JsonResponse is the modern envelope convention: status "success" or
// "error", payload in data, failure details in code/message.
type JsonResponse struct {
	Status  string `json:"status"` // "success" or "error"
	Data    any    `json:"data,omitempty"`
	ErrCode string `json:"code,omitempty"`
	ErrMsg  string `json:"message,omitempty"`
}

// LegacyResponse is the convention the primary OJ API uses: error is null
// on success, a short error string on failure, data carries either the
// payload or a human-readable failure description.
type LegacyResponse struct {
	Error *string `json:"error"`
	Data  any     `json:"data"`
}

func WriteSuccessJson(w http.ResponseWriter, data any) {
	resp := JsonResponse{
		Status: "success",
		Data:   data,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func WriteErrorJson(w http.ResponseWriter, errMsg string, statusCode int, errCode string) {
	resp := JsonResponse{
		Status:  "error",
		ErrMsg:  errMsg,
		ErrCode: errCode,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// WriteLegacySuccessJson answers in the primary OJ API convention.
func WriteLegacySuccessJson(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(LegacyResponse{Error: nil, Data: data})
}

func WriteLegacyErrorJson(w http.ResponseWriter, errKind string, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(LegacyResponse{Error: &errKind, Data: description})
}

func writeInternalErrorJson(w http.ResponseWriter) {
	WriteErrorJson(w,
		http.StatusText(http.StatusInternalServerError),
		http.StatusInternalServerError,
		"")
}

func HandleError(logger *slog.Logger, w http.ResponseWriter, err error) {
	apiErr := &apierr.Error{}
	if errors.As(err, &apiErr) {
		if apiErr.Unwrap() != nil {
			logger.Warn("request error", "error", err, "cause", apiErr.Unwrap())
		} else {
			logger.Warn("request error", "error", err)
		}
		WriteErrorJson(w, apiErr.Error(), apiErr.HttpStatusCode(), apiErr.ErrorCode())
		return
	} else {
		logger.Error("internal server error", "error", err)
		writeInternalErrorJson(w)
	}
}
