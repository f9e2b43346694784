package handlers

import (
	"net/http"

	"github.com/a2sh3r/fundledger/internal/config"
	"github.com/a2sh3r/fundledger/internal/middleware"
	"github.com/a2sh3r/fundledger/internal/models"
	"github.com/a2sh3r/fundledger/internal/service"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

type Handler struct {
	donationService service.DonationService
	financeService  service.FinanceService
	reportService   service.ReportService
	hashKey         string
}

func NewHandler(donationService service.DonationService, financeService service.FinanceService, reportService service.ReportService, hashKey string) *Handler {
	return &Handler{
		donationService: donationService,
		financeService:  financeService,
		reportService:   reportService,
		hashKey:         hashKey,
	}
}

func NewRouter(handler *Handler, cfg *config.Config) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewGzipMiddleware())
	r.Use(middleware.NewHashMiddleware(cfg.HashKey))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, http.StatusNotFound, middleware.CodeNotFound, "invalid URL")
	})

	donationLimiter := middleware.NewClientRateLimiter(rate.Limit(cfg.DonationRateLimit), cfg.DonationRateBurst)

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RateLimitMiddleware(donationLimiter)).Post("/donations", handler.RecordDonation)
		r.Get("/stats", handler.GetStats)

		r.Route("/finance", func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(cfg.JWTSecret))

			r.Get("/me", handler.GetMe)
			r.Get("/overview", handler.GetOverview)
			r.Get("/withdrawals", handler.ListWithdrawals)
			r.Get("/withdraw-requests", handler.ListRequests)
			r.Post("/withdraw-requests", handler.CreateRequest)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireCapability(models.CapabilityReviewWithdrawals))

				r.Patch("/withdraw-requests/{id}/approve", handler.ApproveRequest)
				r.Patch("/withdraw-requests/{id}/reject", handler.RejectRequest)
				r.Get("/donations", handler.ListDonations)
				r.Get("/donations/export.csv", handler.ExportDonations)
				r.Get("/management-logs", handler.ListManagementLogs)
			})
		})
	})

	return r
}
