// Package memory is a process-local store implementing the repository
// interfaces. A single mutex scoped to the fund gives every mutation the same
// all-or-nothing behaviour the Postgres store gets from transactions.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/a2sh3r/fundledger/internal/apperrors"
	"github.com/a2sh3r/fundledger/internal/models"
)

type Store struct {
	mu          sync.RWMutex
	donations   []models.Donation
	requests    []models.WithdrawalRequest
	withdrawals []models.Withdrawal
	entries     []models.ManagementLogEntry
	byRequest   map[string]int
	withdrawnBy map[string]struct{}
}

func NewStore() *Store {
	return &Store{
		byRequest:   make(map[string]int),
		withdrawnBy: make(map[string]struct{}),
	}
}

func (s *Store) SaveDonation(_ context.Context, d *models.Donation, entry *models.ManagementLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.received().CanAdd(d.Amount) {
		return apperrors.ErrTotalOverflow
	}
	s.donations = append(s.donations, *d)
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *Store) ListDonations(_ context.Context, filter models.DonationFilter, limit, offset int) ([]models.Donation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Donation, 0, len(s.donations))
	for _, d := range s.donations {
		if filter.Match(d) {
			matched = append(matched, d)
		}
	}
	sortNewestFirst(matched, func(d models.Donation) (time.Time, string) { return d.CreatedAt, d.ID })
	return paginate(matched, limit, offset), nil
}

func (s *Store) CountDonations(_ context.Context, filter models.DonationFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, d := range s.donations {
		if filter.Match(d) {
			total++
		}
	}
	return total, nil
}

func (s *Store) Overview(_ context.Context) (models.Overview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var o models.Overview
	for _, d := range s.donations {
		o.TotalReceived += d.Amount
	}
	for i, w := range s.withdrawals {
		o.TotalWithdrawn += w.Amount
		if o.LastWithdrawal == nil || !w.CreatedAt.Before(o.LastWithdrawal.CreatedAt) {
			o.LastWithdrawal = &s.withdrawals[i]
		}
	}
	for _, r := range s.requests {
		if r.Status == models.StatusPending {
			o.PendingRequestCount++
			o.PendingRequestedAmount += r.Amount
		}
	}
	if o.LastWithdrawal != nil {
		last := *o.LastWithdrawal
		o.LastWithdrawal = &last
	}
	o.DonationCount = len(s.donations)
	o.WithdrawalCount = len(s.withdrawals)
	o.Balance = o.TotalReceived - o.TotalWithdrawn
	return o, nil
}

func (s *Store) CreateRequest(_ context.Context, req *models.WithdrawalRequest, entry *models.ManagementLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pendingRequested().CanAdd(req.Amount) {
		return apperrors.ErrTotalOverflow
	}
	s.byRequest[req.ID] = len(s.requests)
	s.requests = append(s.requests, *req)
	s.entries = append(s.entries, *entry)
	return nil
}

// received, pendingRequested and balance must be called with mu held.
func (s *Store) received() models.Amount {
	var total models.Amount
	for _, d := range s.donations {
		total += d.Amount
	}
	return total
}

func (s *Store) pendingRequested() models.Amount {
	var total models.Amount
	for _, r := range s.requests {
		if r.Status == models.StatusPending {
			total += r.Amount
		}
	}
	return total
}

func (s *Store) balance() models.Amount {
	total := s.received()
	for _, w := range s.withdrawals {
		total -= w.Amount
	}
	return total
}

func (s *Store) ReviewRequest(_ context.Context, review models.Review) (models.ReviewResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byRequest[review.RequestID]
	if !ok {
		return models.ReviewResult{}, apperrors.ErrNotFound
	}
	req := s.requests[idx]
	if req.Status != models.StatusPending {
		return models.ReviewResult{}, apperrors.ErrConflict
	}

	var result models.ReviewResult
	if review.Action == models.ReviewApprove {
		if _, done := s.withdrawnBy[req.ID]; done {
			return models.ReviewResult{}, apperrors.ErrConflict
		}
		if req.Amount > s.balance() {
			return models.ReviewResult{}, apperrors.ErrInsufficientBalance
		}
		w := review.Withdrawal(req)
		s.withdrawals = append(s.withdrawals, w)
		s.withdrawnBy[req.ID] = struct{}{}
		result.Withdrawal = &w
	}

	review.Apply(&req)
	s.requests[idx] = req
	s.entries = append(s.entries, review.LogEntry(req))

	result.Request = req
	return result, nil
}

func (s *Store) ListWithdrawals(_ context.Context, limit, offset int) ([]models.Withdrawal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := append([]models.Withdrawal(nil), s.withdrawals...)
	sortNewestFirst(items, func(w models.Withdrawal) (time.Time, string) { return w.CreatedAt, w.ID })
	return paginate(items, limit, offset), nil
}

func (s *Store) CountWithdrawals(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.withdrawals), nil
}

func (s *Store) ListRequests(_ context.Context, status models.RequestStatus, limit, offset int) ([]models.WithdrawalRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.WithdrawalRequest, 0, len(s.requests))
	for _, r := range s.requests {
		if status == "" || r.Status == status {
			items = append(items, r)
		}
	}
	sortNewestFirst(items, func(r models.WithdrawalRequest) (time.Time, string) { return r.CreatedAt, r.ID })
	return paginate(items, limit, offset), nil
}

func (s *Store) CountRequests(_ context.Context, status models.RequestStatus) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, r := range s.requests {
		if status == "" || r.Status == status {
			total++
		}
	}
	return total, nil
}

func (s *Store) ListEntries(_ context.Context, action models.Action, limit, offset int) ([]models.ManagementLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.ManagementLogEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if action == "" || e.Action == action {
			items = append(items, e)
		}
	}
	sortNewestFirst(items, func(e models.ManagementLogEntry) (time.Time, string) { return e.CreatedAt, e.ID })
	return paginate(items, limit, offset), nil
}

func (s *Store) CountEntries(_ context.Context, action models.Action) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, e := range s.entries {
		if action == "" || e.Action == action {
			total++
		}
	}
	return total, nil
}

func sortNewestFirst[T any](items []T, key func(T) (time.Time, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if ti.Equal(tj) {
			return idi > idj
		}
		return ti.After(tj)
	})
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 || limit <= 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) || end < offset {
		end = len(items)
	}
	return items[offset:end]
}
