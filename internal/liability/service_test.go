package liability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/onion2907/nivesh/internal/liability"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    liability.CreateParams
		setupMock func(m *liability.MockRepository)
		wantErr   error
	}

	valid := liability.CreateParams{
		Name:           "Home loan",
		Type:           liability.TypeMortgage,
		Category:       liability.CategorySecured,
		Term:           liability.TermLong,
		OriginalAmount: 5000000,
		CurrentBalance: 4200000,
		InterestRate:   8.5,
		MonthlyPayment: 43000,
		StartDate:      time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
		Currency:       "INR",
		Lender:         "HDFC Bank",
	}

	tests := []testCase{
		{
			name:   "Success",
			params: valid,
			setupMock: func(m *liability.MockRepository) {
				m.EXPECT().
					CreateLiability(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *liability.Liability) error {
						l.ID = uuid.New()
						l.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "BalanceExceedsOriginal",
			params: func() liability.CreateParams {
				p := valid
				p.CurrentBalance = p.OriginalAmount + 1
				return p
			}(),
			wantErr: liability.ErrBalanceExceeds,
		},
		{
			name: "NegativeBalance",
			params: func() liability.CreateParams {
				p := valid
				p.CurrentBalance = -10
				return p
			}(),
			wantErr: liability.ErrNegativeBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := liability.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := liability.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.True(t, got.Active)
		})
	}
}

func TestService_Update_Validates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := liability.NewMockRepository(ctrl)
	svc := liability.NewService(repo)

	err := svc.Update(context.Background(), &liability.Liability{
		OriginalAmount: 100,
		CurrentBalance: 200,
	})

	assert.ErrorIs(t, err, liability.ErrBalanceExceeds)
}

func TestService_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := liability.NewMockRepository(ctrl)
	repo.EXPECT().ListLiabilities(gomock.Any()).Return([]liability.Liability{
		{CurrentBalance: 1000, Category: liability.CategorySecured},
		{CurrentBalance: 500, Category: liability.CategoryUnsecured},
	}, nil)

	svc := liability.NewService(repo)
	m, err := svc.Metrics(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 1500, m.TotalLiabilities, 1e-9)
	assert.InDelta(t, 1000, m.SecuredDebt, 1e-9)
	assert.InDelta(t, 500, m.UnsecuredDebt, 1e-9)
}

func TestService_Metrics_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := liability.NewMockRepository(ctrl)
	repo.EXPECT().ListLiabilities(gomock.Any()).Return(nil, errors.New("db error"))

	svc := liability.NewService(repo)
	_, err := svc.Metrics(context.Background())

	assert.Error(t, err)
}
