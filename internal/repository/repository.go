package repository

import (
	"context"

	"github.com/a2sh3r/fundledger/internal/models"
)

//go:generate mockgen -destination=../mocks/repository_mocks/mock_repository.go -package=repository_mocks . DonationRepository,FinanceRepository,AuditRepository

// DonationRepository is the append-only donation ledger. SaveDonation writes the
// receipt and its audit entry as one unit.
type DonationRepository interface {
	SaveDonation(ctx context.Context, donation *models.Donation, entry *models.ManagementLogEntry) error
	ListDonations(ctx context.Context, filter models.DonationFilter, limit, offset int) ([]models.Donation, error)
	CountDonations(ctx context.Context, filter models.DonationFilter) (int, error)
}

// FinanceRepository owns the withdrawal ledger and the request queue.
// ReviewRequest must check the balance and apply the transition, the withdrawal
// and the audit entry atomically, serialized against other reviews of the fund.
type FinanceRepository interface {
	Overview(ctx context.Context) (models.Overview, error)
	CreateRequest(ctx context.Context, req *models.WithdrawalRequest, entry *models.ManagementLogEntry) error
	ReviewRequest(ctx context.Context, review models.Review) (models.ReviewResult, error)
	ListWithdrawals(ctx context.Context, limit, offset int) ([]models.Withdrawal, error)
	CountWithdrawals(ctx context.Context) (int, error)
	ListRequests(ctx context.Context, status models.RequestStatus, limit, offset int) ([]models.WithdrawalRequest, error)
	CountRequests(ctx context.Context, status models.RequestStatus) (int, error)
}

type AuditRepository interface {
	ListEntries(ctx context.Context, action models.Action, limit, offset int) ([]models.ManagementLogEntry, error)
	CountEntries(ctx context.Context, action models.Action) (int, error)
}
