package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/a2sh3r/fundledger/internal/apperrors"
	"github.com/a2sh3r/fundledger/internal/logger"
	"github.com/a2sh3r/fundledger/internal/models"
	"github.com/a2sh3r/fundledger/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type financeService struct {
	repo repository.FinanceRepository
}

func NewFinanceService(repo repository.FinanceRepository) FinanceService {
	return &financeService{repo: repo}
}

// Overview is recomputed from the ledgers on every call.
func (s *financeService) Overview(ctx context.Context) (models.Overview, error) {
	return s.repo.Overview(ctx)
}

func (s *financeService) CreateRequest(ctx context.Context, principal models.Principal, input models.WithdrawalRequestInput) (*models.WithdrawalRequest, error) {
	if principal.ID == "" {
		return nil, apperrors.ErrAuthentication
	}
	if input.Amount <= 0 {
		return nil, validationError("withdrawal amount must be greater than 0")
	}
	if input.Amount > models.MaxAmount {
		return nil, validationError("withdrawal amount must not exceed %s", models.MaxAmount)
	}

	note := strings.TrimSpace(input.Note)
	now := time.Now().UTC()
	req := &models.WithdrawalRequest{
		ID:          uuid.NewString(),
		Amount:      input.Amount,
		Note:        note,
		RequestedBy: principal.ID,
		Status:      models.StatusPending,
		CreatedAt:   now,
	}

	details := note
	if details == "" {
		details = "none"
	}
	entry := &models.ManagementLogEntry{
		ID:         uuid.NewString(),
		Action:     models.ActionWithdrawRequestCreated,
		ActorID:    principal.ID,
		ActorEmail: principal.Email,
		Details:    fmt.Sprintf("amount=%s; note=%s", req.Amount, details),
		CreatedAt:  now,
	}

	if err := s.repo.CreateRequest(ctx, req, entry); err != nil {
		logger.Log.Error("failed to create withdrawal request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (s *financeService) ReviewRequest(ctx context.Context, principal models.Principal, requestID string, action models.ReviewAction) (models.ReviewResult, error) {
	if !principal.HasCapability(models.CapabilityReviewWithdrawals) {
		return models.ReviewResult{}, apperrors.ErrAuthorization
	}
	if !action.Valid() {
		return models.ReviewResult{}, validationError("unknown review action %q", action)
	}
	if _, err := uuid.Parse(requestID); err != nil {
		return models.ReviewResult{}, fmt.Errorf("withdrawal request %q: %w", requestID, apperrors.ErrNotFound)
	}

	review := models.Review{
		RequestID:    requestID,
		Action:       action,
		Reviewer:     principal,
		ReviewedAt:   time.Now().UTC(),
		WithdrawalID: uuid.NewString(),
		LogEntryID:   uuid.NewString(),
	}

	result, err := s.repo.ReviewRequest(ctx, review)
	if err != nil {
		if errors.Is(err, apperrors.ErrStorage) {
			logger.Log.Error("failed to review withdrawal request", zap.String("request", requestID), zap.Error(err))
		}
		return models.ReviewResult{}, err
	}

	logger.Log.Info("withdrawal request reviewed",
		zap.String("request", requestID),
		zap.String("status", string(result.Request.Status)),
		zap.String("reviewer", principal.ID),
	)
	return result, nil
}
