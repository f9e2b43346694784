package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a2sh3r/fundledger/internal/hash"
	"github.com/a2sh3r/fundledger/internal/logger"
	"github.com/a2sh3r/fundledger/internal/middleware"
	"github.com/a2sh3r/fundledger/internal/models"
	"github.com/a2sh3r/fundledger/internal/service"
	"go.uber.org/zap"
)

// parsePage reads page and pageSize from the query. Missing values fall back to defaults.
func parsePage(r *http.Request, defaultSize int) (models.Page, error) {
	query := r.URL.Query()

	number, err := queryInt(query.Get("page"))
	if err != nil {
		return models.Page{}, errors.New("page must be a number")
	}
	size, err := queryInt(query.Get("pageSize"))
	if err != nil {
		return models.Page{}, errors.New("pageSize must be a number")
	}
	return models.NewPage(number, size, defaultSize), nil
}

func queryInt(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func donationFilter(r *http.Request) (models.DonationFilter, error) {
	q := r.URL.Query()
	return service.ParseDonationFilter(q.Get("country"), q.Get("paymentMethod"), q.Get("dateFrom"), q.Get("dateTo"))
}

func (h *Handler) ListDonations(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, models.DefaultPageSize)
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}
	filter, err := donationFilter(r)
	if err != nil {
		writeServiceError(w, err, "list donations")
		return
	}

	result, err := h.reportService.ListDonations(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, err, "list donations")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) ExportDonations(w http.ResponseWriter, r *http.Request) {
	filter, err := donationFilter(r)
	if err != nil {
		writeServiceError(w, err, "export donations")
		return
	}

	var buf bytes.Buffer
	if err := h.reportService.ExportDonationsCSV(r.Context(), filter, &buf); err != nil {
		writeServiceError(w, err, "export donations")
		return
	}

	filename := fmt.Sprintf("donations-%s.csv", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if sum := hash.CalculateHash(buf.String(), h.hashKey); sum != "" {
		w.Header().Set(hash.HeaderName, sum)
	}
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		logger.Log.Error("failed to write csv export", zap.Error(err))
	}
}

func (h *Handler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, models.DefaultPageSize)
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}

	result, err := h.reportService.ListWithdrawals(r.Context(), page)
	if err != nil {
		writeServiceError(w, err, "list withdrawals")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, models.DefaultPageSize)
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}
	status := models.RequestStatus(strings.TrimSpace(r.URL.Query().Get("status")))

	result, err := h.reportService.ListRequests(r.Context(), status, page)
	if err != nil {
		writeServiceError(w, err, "list withdrawal requests")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) ListManagementLogs(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r, service.DefaultAuditPageSize)
	if err != nil {
		writeValidationError(w, err.Error())
		return
	}
	action := models.Action(strings.TrimSpace(r.URL.Query().Get("action")))

	result, err := h.reportService.ListAuditLog(r.Context(), action, page)
	if err != nil {
		writeServiceError(w, err, "list management logs")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}
