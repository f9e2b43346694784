package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/a2sh3r/fundledger/internal/logger"
	"go.uber.org/zap"
)

const (
	CodeValidation          = "validation_error"
	CodeUnauthorized        = "unauthorized"
	CodeSessionExpired      = "session_expired"
	CodeForbidden           = "forbidden"
	CodeNotFound            = "not_found"
	CodeConflict            = "conflict"
	CodeInsufficientBalance = "insufficient_balance"
	CodeTooManyRequests     = "too_many_requests"
	CodeInternal            = "internal_error"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
	}
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{Code: code, Message: message})
}
