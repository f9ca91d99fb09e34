package asset_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/onion2907/nivesh/internal/asset"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    asset.CreateParams
		setupMock func(repo *asset.MockRepository, metals *asset.MockMetalPricer)
		wantValue float64
		wantErr   error
	}

	tests := []testCase{
		{
			name: "FixedDeposit",
			params: asset.CreateParams{
				Name:         "SBI FD",
				Type:         asset.TypeFixedDeposit,
				Currency:     "INR",
				CurrentValue: 105000,
				Detail: asset.DepositDetail{
					Institution:  "SBI",
					Principal:    100000,
					InterestRate: 7.1,
				},
			},
			setupMock: func(repo *asset.MockRepository, _ *asset.MockMetalPricer) {
				repo.EXPECT().
					CreateAsset(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *asset.Asset) error {
						a.ID = uuid.New()
						a.CreatedAt = time.Now()
						return nil
					})
			},
			wantValue: 105000,
		},
		{
			name: "GoldValueIsDerived",
			params: asset.CreateParams{
				Name:     "Gold coins",
				Type:     asset.TypeGold,
				Currency: "INR",
				// User-entered value is ignored for metals.
				CurrentValue: 1,
				Detail:       asset.MetalDetail{WeightGrams: 10, Purity: "24K"},
			},
			setupMock: func(repo *asset.MockRepository, metals *asset.MockMetalPricer) {
				metals.EXPECT().
					PricePerGram(gomock.Any(), asset.TypeGold).
					Return(7250.0, nil)
				repo.EXPECT().
					CreateAsset(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *asset.Asset) error {
						a.ID = uuid.New()
						return nil
					})
			},
			wantValue: 72500,
		},
		{
			name: "GoldWithoutWeight",
			params: asset.CreateParams{
				Name:   "Gold",
				Type:   asset.TypeGold,
				Detail: asset.MetalDetail{},
			},
			wantErr: asset.ErrMissingWeight,
		},
		{
			name: "DetailTypeMismatch",
			params: asset.CreateParams{
				Name:   "FD",
				Type:   asset.TypeFixedDeposit,
				Detail: asset.BondDetail{},
			},
			wantErr: asset.ErrDetailMismatch,
		},
		{
			name: "UnknownType",
			params: asset.CreateParams{
				Name: "Mystery",
				Type: "CRYPTO",
			},
			wantErr: asset.ErrUnknownType,
		},
		{
			name: "NegativeValue",
			params: asset.CreateParams{
				Name:         "Receivable",
				Type:         asset.TypeReceivables,
				CurrentValue: -5,
			},
			wantErr: asset.ErrNegativeValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := asset.NewMockRepository(ctrl)
			metals := asset.NewMockMetalPricer(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, metals)
			}

			svc := asset.NewService(repo, metals)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.InDelta(t, tt.wantValue, got.CurrentValue, 1e-9)
			assert.True(t, got.Active)
		})
	}
}

func TestService_Update_RevaluesSilver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := asset.NewMockRepository(ctrl)
	metals := asset.NewMockMetalPricer(ctrl)

	metals.EXPECT().
		PricePerGram(gomock.Any(), asset.TypeSilver).
		Return(95.0, nil)
	repo.EXPECT().UpdateAsset(gomock.Any(), gomock.Any()).Return(nil)

	svc := asset.NewService(repo, metals)
	a := &asset.Asset{
		ID:     uuid.New(),
		Name:   "Silver bars",
		Type:   asset.TypeSilver,
		Detail: asset.MetalDetail{WeightGrams: 500},
	}

	require.NoError(t, svc.Update(context.Background(), a))
	assert.InDelta(t, 47500, a.CurrentValue, 1e-9)

	detail, ok := a.Detail.(asset.MetalDetail)
	require.True(t, ok)
	assert.InDelta(t, 95.0, detail.PricePerGram, 1e-9)
}

func TestService_Create_JewelsAreUserValued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := asset.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateAsset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *asset.Asset) error {
			a.ID = uuid.New()
			return nil
		})

	// No metal pricer expectation: JEWELS keep the entered value.
	svc := asset.NewService(repo, asset.NewMockMetalPricer(ctrl))
	got, err := svc.Create(context.Background(), asset.CreateParams{
		Name:         "Necklace",
		Type:         asset.TypeJewels,
		CurrentValue: 250000,
		Detail:       asset.MetalDetail{WeightGrams: 40, Purity: "22K"},
	})

	require.NoError(t, err)
	assert.InDelta(t, 250000, got.CurrentValue, 1e-9)
}
