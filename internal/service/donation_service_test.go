package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/a2sh3r/fundledger/internal/apperrors"
	"github.com/a2sh3r/fundledger/internal/mocks/repository_mocks"
	"github.com/a2sh3r/fundledger/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDonationInput() models.DonationInput {
	return models.DonationInput{
		Name:          " Jane Doe ",
		Country:       "Thailand",
		Email:         " Jane@Example.org ",
		Phone:         "+66 1234",
		Amount:        models.MajorUnits(100),
		DonationType:  models.DonationOnce,
		PaymentMethod: models.PaymentQR,
	}
}

func TestDonationService_RecordDonation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name       string
		input      func() models.DonationInput
		mockSave   func(m *repository_mocks.MockDonationRepository)
		wantAmount models.Amount
		wantErr    error
	}{
		{
			name:  "успешное пожертвование",
			input: validDonationInput,
			mockSave: func(m *repository_mocks.MockDonationRepository) {
				m.EXPECT().SaveDonation(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, d *models.Donation, e *models.ManagementLogEntry) error {
						assert.Equal(t, "Jane Doe", d.Name)
						assert.Equal(t, "jane@example.org", d.Email)
						assert.NotEmpty(t, d.ID)
						assert.WithinDuration(t, time.Now(), d.CreatedAt, time.Second)
						assert.Equal(t, models.ActionDonationReceived, e.Action)
						assert.Contains(t, e.Details, d.ID)
						return nil
					}).Times(1)
			},
			wantAmount: models.MajorUnits(100),
		},
		{
			name: "ежемесячный план без суммы",
			input: func() models.DonationInput {
				in := validDonationInput()
				in.Amount = 0
				in.DonationType = models.DonationMonthly
				return in
			},
			mockSave: func(m *repository_mocks.MockDonationRepository) {
				m.EXPECT().SaveDonation(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
			wantAmount: models.MajorUnits(25),
		},
		{
			name: "разовый план без суммы",
			input: func() models.DonationInput {
				in := validDonationInput()
				in.Amount = 0
				return in
			},
			mockSave: func(m *repository_mocks.MockDonationRepository) {
				m.EXPECT().SaveDonation(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
			wantAmount: models.MajorUnits(60),
		},
		{
			name: "отрицательная сумма",
			input: func() models.DonationInput {
				in := validDonationInput()
				in.Amount = -100
				return in
			},
			mockSave: func(m *repository_mocks.MockDonationRepository) {},
			wantErr:  apperrors.ErrValidation,
		},
		{
			name: "сумма больше допустимой",
			input: func() models.DonationInput {
				in := validDonationInput()
				in.Amount = models.MaxAmount + 1
				return in
			},
			mockSave: func(m *repository_mocks.MockDonationRepository) {},
			wantErr:  apperrors.ErrValidation,
		},
		{
			name: "пустое имя",
			input: func() models.DonationInput {
				in := validDonationInput()
				in.Name = "   "
				return in
			},
			mockSave: func(m *repository_mocks.MockDonationRepository) {},
			wantErr:  apperrors.ErrValidation,
		},
		{
			name: "пустой телефон",
			input: func() models.DonationInput {
				in := validDonationInput()
				in.Phone = ""
				return in
			},
			mockSave: func(m *repository_mocks.MockDonationRepository) {},
			wantErr:  apperrors.ErrValidation,
		},
		{
			name: "неизвестный тип пожертвования",
			input: func() models.DonationInput {
				in := validDonationInput()
				in.DonationType = "yearly"
				return in
			},
			mockSave: func(m *repository_mocks.MockDonationRepository) {},
			wantErr:  apperrors.ErrValidation,
		},
		{
			name: "неизвестный способ оплаты",
			input: func() models.DonationInput {
				in := validDonationInput()
				in.PaymentMethod = "paypal"
				return in
			},
			mockSave: func(m *repository_mocks.MockDonationRepository) {},
			wantErr:  apperrors.ErrValidation,
		},
		{
			name:  "ошибка хранилища",
			input: validDonationInput,
			mockSave: func(m *repository_mocks.MockDonationRepository) {
				m.EXPECT().SaveDonation(ctx, gomock.Any(), gomock.Any()).Return(apperrors.ErrStorage).Times(1)
			},
			wantErr: apperrors.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := repository_mocks.NewMockDonationRepository(ctrl)
			tt.mockSave(mockRepo)

			s := NewDonationService(mockRepo, repository_mocks.NewMockFinanceRepository(ctrl))
			got, err := s.RecordDonation(ctx, tt.input())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, got.Amount)
		})
	}
}

func TestDonationService_PublicStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	finance := repository_mocks.NewMockFinanceRepository(ctrl)
	s := NewDonationService(repository_mocks.NewMockDonationRepository(ctrl), finance)

	finance.EXPECT().Overview(ctx).Return(models.Overview{
		DonationCount:  3,
		TotalReceived:  models.MajorUnits(250),
		TotalWithdrawn: models.MajorUnits(100),
	}, nil).Times(1)

	stats, err := s.PublicStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PublicStats{DonorCount: 3, TotalPaidAmount: models.MajorUnits(250)}, stats)

	finance.EXPECT().Overview(ctx).Return(models.Overview{}, errors.New("db error")).Times(1)
	_, err = s.PublicStats(ctx)
	assert.Error(t, err)
}
