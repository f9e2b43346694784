package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/a2sh3r/fundledger/internal/middleware"
	"github.com/a2sh3r/fundledger/internal/models"
)

func (h *Handler) RecordDonation(w http.ResponseWriter, r *http.Request) {
	var input models.DonationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeValidationError(w, "invalid donation payload")
		return
	}

	donation, err := h.donationService.RecordDonation(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, "record donation")
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, donation)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.donationService.PublicStats(r.Context())
	if err != nil {
		writeServiceError(w, err, "public stats")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, stats)
}
