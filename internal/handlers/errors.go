package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a2sh3r/fundledger/internal/apperrors"
	"github.com/a2sh3r/fundledger/internal/logger"
	"github.com/a2sh3r/fundledger/internal/middleware"
	"go.uber.org/zap"
)

// writeServiceError maps a service error onto its HTTP status and error code.
func writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		middleware.WriteError(w, http.StatusBadRequest, middleware.CodeValidation, validationMessage(err))
	case errors.Is(err, apperrors.ErrSessionExpired):
		middleware.WriteError(w, http.StatusUnauthorized, middleware.CodeSessionExpired, err.Error())
	case errors.Is(err, apperrors.ErrAuthentication):
		middleware.WriteError(w, http.StatusUnauthorized, middleware.CodeUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrAuthorization):
		middleware.WriteError(w, http.StatusForbidden, middleware.CodeForbidden, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		middleware.WriteError(w, http.StatusNotFound, middleware.CodeNotFound, "withdrawal request not found")
	case errors.Is(err, apperrors.ErrConflict):
		middleware.WriteError(w, http.StatusConflict, middleware.CodeConflict, apperrors.ErrConflict.Error())
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		middleware.WriteError(w, http.StatusPaymentRequired, middleware.CodeInsufficientBalance, apperrors.ErrInsufficientBalance.Error())
	default:
		logger.Log.Error(op+" failed", zap.Error(err))
		middleware.WriteError(w, http.StatusInternalServerError, middleware.CodeInternal, "internal server error")
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), apperrors.ErrValidation.Error()+": ")
	if msg == "" {
		return apperrors.ErrValidation.Error()
	}
	return msg
}

func writeValidationError(w http.ResponseWriter, message string) {
	middleware.WriteError(w, http.StatusBadRequest, middleware.CodeValidation, message)
}
