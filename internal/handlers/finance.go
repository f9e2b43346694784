package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/a2sh3r/fundledger/internal/middleware"
	"github.com/a2sh3r/fundledger/internal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		middleware.WriteError(w, http.StatusUnauthorized, middleware.CodeUnauthorized, "unauthorized")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, principal)
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.financeService.Overview(r.Context())
	if err != nil {
		writeServiceError(w, err, "compute overview")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, overview)
}

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		middleware.WriteError(w, http.StatusUnauthorized, middleware.CodeUnauthorized, "unauthorized")
		return
	}

	var input models.WithdrawalRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, "invalid withdrawal request payload")
		return
	}

	req, err := h.financeService.CreateRequest(r.Context(), principal, input)
	if err != nil {
		writeServiceError(w, err, "create withdrawal request")
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.reviewRequest(w, r, models.ReviewApprove)
}

func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	h.reviewRequest(w, r, models.ReviewReject)
}

func (h *Handler) reviewRequest(w http.ResponseWriter, r *http.Request, action models.ReviewAction) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		middleware.WriteError(w, http.StatusUnauthorized, middleware.CodeUnauthorized, "unauthorized")
		return
	}

	result, err := h.financeService.ReviewRequest(r.Context(), principal, chi.URLParam(r, "id"), action)
	if err != nil {
		writeServiceError(w, err, "review withdrawal request")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}
