package service

import (
	"context"
	"io"

	"github.com/a2sh3r/fundledger/internal/models"
)

//go:generate mockgen -destination=../mocks/service_mocks/mock_service.go -package=service_mocks . DonationService,FinanceService,ReportService

type DonationService interface {
	RecordDonation(ctx context.Context, input models.DonationInput) (*models.Donation, error)
	PublicStats(ctx context.Context) (models.PublicStats, error)
}

type FinanceService interface {
	Overview(ctx context.Context) (models.Overview, error)
	CreateRequest(ctx context.Context, principal models.Principal, input models.WithdrawalRequestInput) (*models.WithdrawalRequest, error)
	ReviewRequest(ctx context.Context, principal models.Principal, requestID string, action models.ReviewAction) (models.ReviewResult, error)
}

type ReportService interface {
	ListDonations(ctx context.Context, filter models.DonationFilter, page models.Page) (models.PageResult[models.Donation], error)
	ExportDonationsCSV(ctx context.Context, filter models.DonationFilter, w io.Writer) error
	ListWithdrawals(ctx context.Context, page models.Page) (models.PageResult[models.Withdrawal], error)
	ListRequests(ctx context.Context, status models.RequestStatus, page models.Page) (models.PageResult[models.WithdrawalRequest], error)
	ListAuditLog(ctx context.Context, action models.Action, page models.Page) (models.PageResult[models.ManagementLogEntry], error)
}
