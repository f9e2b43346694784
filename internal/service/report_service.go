package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/a2sh3r/fundledger/internal/models"
	"github.com/a2sh3r/fundledger/internal/repository"
	"golang.org/x/sync/errgroup"
)

const DefaultAuditPageSize = 20

type reportService struct {
	donations repository.DonationRepository
	finance   repository.FinanceRepository
	audit     repository.AuditRepository
}

func NewReportService(donations repository.DonationRepository, finance repository.FinanceRepository, audit repository.AuditRepository) ReportService {
	return &reportService{
		donations: donations,
		finance:   finance,
		audit:     audit,
	}
}

// ParseDonationFilter builds a filter from raw query values. dateTo covers its whole
// day in its own offset; both bounds are returned in UTC.
func ParseDonationFilter(country, paymentMethod, dateFrom, dateTo string) (models.DonationFilter, error) {
	filter := models.DonationFilter{
		Country:       strings.TrimSpace(country),
		PaymentMethod: models.PaymentMethod(strings.TrimSpace(paymentMethod)),
	}

	if v := strings.TrimSpace(dateFrom); v != "" {
		from, err := parseDate(v)
		if err != nil {
			return models.DonationFilter{}, validationError("invalid dateFrom %q", v)
		}
		from = from.UTC()
		filter.DateFrom = &from
	}

	if v := strings.TrimSpace(dateTo); v != "" {
		to, err := parseDate(v)
		if err != nil {
			return models.DonationFilter{}, validationError("invalid dateTo %q", v)
		}
		end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location()).UTC()
		filter.DateTo = &end
	}

	return filter, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

func fetchPage[T any](
	ctx context.Context,
	page models.Page,
	list func(ctx context.Context, limit, offset int) ([]T, error),
	count func(ctx context.Context) (int, error),
) (models.PageResult[T], error) {
	var (
		items []T
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = list(gctx, page.Size, page.Offset())
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.PageResult[T]{}, err
	}

	return models.NewPageResult(items, page, total), nil
}

func (s *reportService) ListDonations(ctx context.Context, filter models.DonationFilter, page models.Page) (models.PageResult[models.Donation], error) {
	return fetchPage(ctx, page,
		func(ctx context.Context, limit, offset int) ([]models.Donation, error) {
			return s.donations.ListDonations(ctx, filter, limit, offset)
		},
		func(ctx context.Context) (int, error) {
			return s.donations.CountDonations(ctx, filter)
		},
	)
}

func (s *reportService) ExportDonationsCSV(ctx context.Context, filter models.DonationFilter, w io.Writer) error {
	donations, err := s.donations.ListDonations(ctx, filter, ExportRowLimit, 0)
	if err != nil {
		return err
	}
	return writeDonationsCSV(w, donations)
}

func (s *reportService) ListWithdrawals(ctx context.Context, page models.Page) (models.PageResult[models.Withdrawal], error) {
	return fetchPage(ctx, page, s.finance.ListWithdrawals, s.finance.CountWithdrawals)
}

func (s *reportService) ListRequests(ctx context.Context, status models.RequestStatus, page models.Page) (models.PageResult[models.WithdrawalRequest], error) {
	if status != "" && !status.Valid() {
		return models.PageResult[models.WithdrawalRequest]{}, validationError("unknown status %q", status)
	}
	return fetchPage(ctx, page,
		func(ctx context.Context, limit, offset int) ([]models.WithdrawalRequest, error) {
			return s.finance.ListRequests(ctx, status, limit, offset)
		},
		func(ctx context.Context) (int, error) {
			return s.finance.CountRequests(ctx, status)
		},
	)
}

func (s *reportService) ListAuditLog(ctx context.Context, action models.Action, page models.Page) (models.PageResult[models.ManagementLogEntry], error) {
	if action != "" && !action.Valid() {
		return models.PageResult[models.ManagementLogEntry]{}, validationError("unknown action %q", action)
	}
	return fetchPage(ctx, page,
		func(ctx context.Context, limit, offset int) ([]models.ManagementLogEntry, error) {
			return s.audit.ListEntries(ctx, action, limit, offset)
		},
		func(ctx context.Context) (int, error) {
			return s.audit.CountEntries(ctx, action)
		},
	)
}
