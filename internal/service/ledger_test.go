package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/a2sh3r/fundledger/internal/apperrors"
	"github.com/a2sh3r/fundledger/internal/models"
	"github.com/a2sh3r/fundledger/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledger struct {
	store     *memory.Store
	donations DonationService
	finance   FinanceService
	reports   ReportService
}

func newLedger() *ledger {
	store := memory.NewStore()
	return &ledger{
		store:     store,
		donations: NewDonationService(store, store),
		finance:   NewFinanceService(store),
		reports:   NewReportService(store, store, store),
	}
}

func (l *ledger) donate(t *testing.T, amount int64) *models.Donation {
	t.Helper()
	in := validDonationInput()
	in.Amount = models.MajorUnits(amount)
	d, err := l.donations.RecordDonation(context.Background(), in)
	require.NoError(t, err)
	return d
}

func (l *ledger) request(t *testing.T, amount int64) *models.WithdrawalRequest {
	t.Helper()
	r, err := l.finance.CreateRequest(context.Background(), operator, models.WithdrawalRequestInput{Amount: models.MajorUnits(amount)})
	require.NoError(t, err)
	return r
}

func (l *ledger) auditCount(t *testing.T, action models.Action) int {
	t.Helper()
	n, err := l.store.CountEntries(context.Background(), action)
	require.NoError(t, err)
	return n
}

func TestLedger_ApprovalScenario(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	l.donate(t, 100)
	r1 := l.request(t, 150)

	_, err := l.finance.ReviewRequest(ctx, approver, r1.ID, models.ReviewApprove)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)

	pending, err := l.reports.ListRequests(ctx, models.StatusPending, models.NewPage(1, 0, models.DefaultPageSize))
	require.NoError(t, err)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, r1.ID, pending.Items[0].ID)
	assert.Equal(t, 0, l.auditCount(t, models.ActionWithdrawRequestApproved))

	r2 := l.request(t, 60)
	result, err := l.finance.ReviewRequest(ctx, approver, r2.ID, models.ReviewApprove)
	require.NoError(t, err)
	require.NotNil(t, result.Withdrawal)
	assert.Equal(t, models.StatusApproved, result.Request.Status)
	assert.Equal(t, "ap-1", *result.Request.ApprovedBy)
	assert.NotNil(t, result.Request.ReviewedAt)
	assert.Equal(t, r2.ID, result.Withdrawal.RequestID)
	assert.Equal(t, "ap-1", result.Withdrawal.AdminID)

	overview, err := l.finance.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MajorUnits(100), overview.TotalReceived)
	assert.Equal(t, models.MajorUnits(60), overview.TotalWithdrawn)
	assert.Equal(t, models.MajorUnits(40), overview.Balance)
	assert.Equal(t, 1, overview.WithdrawalCount)
	assert.Equal(t, 1, overview.PendingRequestCount)
	assert.Equal(t, models.MajorUnits(150), overview.PendingRequestedAmount)
	require.NotNil(t, overview.LastWithdrawal)
	assert.Equal(t, result.Withdrawal.ID, overview.LastWithdrawal.ID)

	assert.Equal(t, 1, l.auditCount(t, models.ActionWithdrawRequestApproved))
}

func TestLedger_ReviewIsTerminal(t *testing.T) {
	ctx := context.Background()
	l := newLedger()
	l.donate(t, 100)

	r := l.request(t, 10)
	_, err := l.finance.ReviewRequest(ctx, approver, r.ID, models.ReviewReject)
	require.NoError(t, err)

	for _, action := range []models.ReviewAction{models.ReviewApprove, models.ReviewReject} {
		_, err = l.finance.ReviewRequest(ctx, approver, r.ID, action)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	}

	overview, err := l.finance.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MajorUnits(100), overview.Balance)
	assert.Equal(t, 0, overview.WithdrawalCount)
	assert.Equal(t, 1, l.auditCount(t, models.ActionWithdrawRequestRejected))
}

func TestLedger_UnknownRequest(t *testing.T) {
	l := newLedger()
	_, err := l.finance.ReviewRequest(context.Background(), approver, "6f1c7b1e-4f59-4c39-9a59-5d1d7a0f3b11", models.ReviewApprove)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedger_ConcurrentApprovalOfSameRequest(t *testing.T) {
	ctx := context.Background()
	l := newLedger()
	l.donate(t, 100)
	r := l.request(t, 60)

	const reviewers = 8
	errs := make([]error, reviewers)
	var wg sync.WaitGroup
	for i := 0; i < reviewers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = l.finance.ReviewRequest(ctx, approver, r.ID, models.ReviewApprove)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	}
	assert.Equal(t, 1, succeeded)

	overview, err := l.finance.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.WithdrawalCount)
	assert.Equal(t, models.MajorUnits(40), overview.Balance)
	assert.Equal(t, 1, l.auditCount(t, models.ActionWithdrawRequestApproved))
}

func TestLedger_ConcurrentApprovalsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	l := newLedger()
	l.donate(t, 100)
	a := l.request(t, 70)
	b := l.request(t, 70)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{a.ID, b.ID} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = l.finance.ReviewRequest(ctx, approver, id, models.ReviewApprove)
		}(i, id)
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	overview, err := l.finance.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MajorUnits(30), overview.Balance)
	assert.Equal(t, 1, overview.PendingRequestCount)
}

func TestLedger_BalanceNeverNegative(t *testing.T) {
	ctx := context.Background()
	l := newLedger()
	for i := 0; i < 5; i++ {
		l.donate(t, 20)
	}

	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		ids = append(ids, l.request(t, int64(5+i)).ID)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := l.finance.ReviewRequest(ctx, approver, id, models.ReviewApprove)
			if err != nil && !errors.Is(err, apperrors.ErrInsufficientBalance) {
				t.Errorf("unexpected review error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	overview, err := l.finance.Overview(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int64(overview.Balance), int64(0))
	assert.Equal(t, overview.TotalReceived-overview.TotalWithdrawn, overview.Balance)
	assert.Equal(t, overview.WithdrawalCount, l.auditCount(t, models.ActionWithdrawRequestApproved))
	assert.Equal(t, 12-overview.WithdrawalCount, overview.PendingRequestCount)
}

func TestLedger_AuditCompleteness(t *testing.T) {
	ctx := context.Background()
	l := newLedger()
	l.donate(t, 100)
	l.donate(t, 50)

	approved := l.request(t, 30)
	rejected := l.request(t, 20)
	l.request(t, 10)

	_, err := l.finance.ReviewRequest(ctx, approver, approved.ID, models.ReviewApprove)
	require.NoError(t, err)
	_, err = l.finance.ReviewRequest(ctx, approver, rejected.ID, models.ReviewReject)
	require.NoError(t, err)

	assert.Equal(t, 2, l.auditCount(t, models.ActionDonationReceived))
	assert.Equal(t, 3, l.auditCount(t, models.ActionWithdrawRequestCreated))
	assert.Equal(t, 1, l.auditCount(t, models.ActionWithdrawRequestApproved))
	assert.Equal(t, 1, l.auditCount(t, models.ActionWithdrawRequestRejected))
	assert.Equal(t, 7, l.auditCount(t, ""))

	log, err := l.reports.ListAuditLog(ctx, models.ActionWithdrawRequestApproved, models.NewPage(1, 0, DefaultAuditPageSize))
	require.NoError(t, err)
	require.Len(t, log.Items, 1)
	assert.Equal(t, "ap-1", log.Items[0].ActorID)
	assert.Equal(t, fmt.Sprintf("requestId=%s; amount=30", approved.ID), log.Items[0].Details)
}

func TestLedger_Pagination(t *testing.T) {
	ctx := context.Background()
	l := newLedger()
	for i := 0; i < 25; i++ {
		l.donate(t, int64(i+1))
	}

	tests := []struct {
		name      string
		page      models.Page
		wantItems int
		wantPages int
	}{
		{name: "first page", page: models.NewPage(1, 10, models.DefaultPageSize), wantItems: 10, wantPages: 3},
		{name: "last partial page", page: models.NewPage(3, 10, models.DefaultPageSize), wantItems: 5, wantPages: 3},
		{name: "past the end", page: models.NewPage(4, 10, models.DefaultPageSize), wantItems: 0, wantPages: 3},
		{name: "clamped page number", page: models.NewPage(-2, 10, models.DefaultPageSize), wantItems: 10, wantPages: 3},
		{name: "clamped page size", page: models.NewPage(1, 500, models.DefaultPageSize), wantItems: 25, wantPages: 1},
		{name: "page number near int limit", page: models.NewPage(math.MaxInt, 2, models.DefaultPageSize), wantItems: 0, wantPages: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := l.reports.ListDonations(ctx, models.DonationFilter{}, tt.page)
			require.NoError(t, err)
			assert.NotNil(t, res.Items)
			assert.Len(t, res.Items, tt.wantItems)
			assert.Equal(t, 25, res.Total)
			assert.Equal(t, tt.wantPages, res.TotalPages)
		})
	}

	huge, err := l.reports.ListWithdrawals(ctx, models.NewPage(math.MaxInt, 2, models.DefaultPageSize))
	require.NoError(t, err)
	assert.NotNil(t, huge.Items)
	assert.Empty(t, huge.Items)

	empty, err := newLedger().reports.ListWithdrawals(ctx, models.NewPage(1, 0, models.DefaultPageSize))
	require.NoError(t, err)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 1, empty.TotalPages)
}

func TestLedger_ListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	l := newLedger()
	first := l.donate(t, 1)
	time.Sleep(2 * time.Millisecond)
	second := l.donate(t, 2)

	res, err := l.reports.ListDonations(ctx, models.DonationFilter{}, models.NewPage(1, 0, models.DefaultPageSize))
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, second.ID, res.Items[0].ID)
	assert.Equal(t, first.ID, res.Items[1].ID)
}

func TestLedger_OversizedAmountsKeepBalanceIntact(t *testing.T) {
	ctx := context.Background()
	l := newLedger()
	l.donate(t, 10)

	in := validDonationInput()
	in.Amount = models.Amount(math.MaxInt64)
	_, err := l.donations.RecordDonation(ctx, in)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	in.Amount = models.MaxAmount
	_, err = l.donations.RecordDonation(ctx, in)
	require.NoError(t, err)

	_, err = l.finance.CreateRequest(ctx, operator, models.WithdrawalRequestInput{Amount: models.Amount(math.MaxInt64)})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	overview, err := l.finance.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MaxAmount+models.MajorUnits(10), overview.Balance)
	assert.Equal(t, 0, overview.PendingRequestCount)
}

func TestLedger_ExportDonationsCSV(t *testing.T) {
	ctx := context.Background()
	l := newLedger()

	in := validDonationInput()
	in.Name = "Smith, John"
	in.Country = "Laos"
	in.Amount = models.MajorUnits(100)
	_, err := l.donations.RecordDonation(ctx, in)
	require.NoError(t, err)
	l.donate(t, 5)

	filter, err := ParseDonationFilter("laos", "", "", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, l.reports.ExportDonationsCSV(ctx, filter, &buf))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,email,country,amount,paymentMethod,donationType,createdAt", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"Smith, John",jane@example.org,Laos,100,qr,once,`), lines[1])
}
