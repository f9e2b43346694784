package service

import (
	"context"
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

type donationService struct {
	repo    repository.DonationRepository
	finance repository.FinanceRepository
}

func NewDonationService(repo repository.DonationRepository, finance repository.FinanceRepository) DonationService {
	return &donationService{
		repo:    repo,
		finance: finance,
	}
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

func normalizeDonation(input models.DonationInput) (models.DonationInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Country = strings.TrimSpace(input.Country)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.SelectedQuote = strings.TrimSpace(input.SelectedQuote)

	switch {
	case input.Name == "":
		return input, validationError("name is required")
	case input.Country == "":
		return input, validationError("country is required")
	case input.Email == "":
		return input, validationError("email is required")
	case input.Phone == "":
		return input, validationError("phone is required")
	case !input.DonationType.Valid():
		return input, validationError("donationType must be monthly or once")
	case !input.PaymentMethod.Valid():
		return input, validationError("paymentMethod must be qr, creditcard or debitcard")
	case input.Amount < 0:
		return input, validationError("amount must be greater than 0")
	case input.Amount > models.MaxAmount:
		return input, validationError("amount must not exceed %s", models.MaxAmount)
	}

	if input.Amount == 0 {
		input.Amount = input.DonationType.DefaultAmount()
	}
	return input, nil
}

func (s *donationService) RecordDonation(ctx context.Context, input models.DonationInput) (*models.Donation, error) {
	input, err := normalizeDonation(input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	donation := &models.Donation{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Country:       input.Country,
		Email:         input.Email,
		Phone:         input.Phone,
		Amount:        input.Amount,
		DonationType:  input.DonationType,
		PaymentMethod: input.PaymentMethod,
		SelectedQuote: input.SelectedQuote,
		CreatedAt:     now,
	}
	entry := &models.ManagementLogEntry{
		ID:        uuid.NewString(),
		Action:    models.ActionDonationReceived,
		Details:   fmt.Sprintf("donationId=%s; amount=%s; type=%s; method=%s", donation.ID, donation.Amount, donation.DonationType, donation.PaymentMethod),
		CreatedAt: now,
	}

	if err := s.repo.SaveDonation(ctx, donation, entry); err != nil {
		logger.Log.Error("failed to save donation", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("donation recorded",
		zap.String("id", donation.ID),
		zap.Stringer("amount", donation.Amount),
		zap.String("type", string(donation.DonationType)),
	)
	return donation, nil
}

func (s *donationService) PublicStats(ctx context.Context) (models.PublicStats, error) {
	overview, err := s.finance.Overview(ctx)
	if err != nil {
		return models.PublicStats{}, err
	}
	return models.PublicStats{
		DonorCount:      overview.DonationCount,
		TotalPaidAmount: overview.TotalReceived,
	}, nil
}
