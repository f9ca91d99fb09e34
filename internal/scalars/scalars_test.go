package scalars_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/onion2907/nivesh/internal/scalars"
)

func TestService_Get(t *testing.T) {
	type testCase struct {
		name      string
		key       string
		setupMock func(m *scalars.MockRepository)
		want      float64
		wantErr   error
	}

	tests := []testCase{
		{
			name: "ParsesDecimalString",
			key:  scalars.KeyCash,
			setupMock: func(m *scalars.MockRepository) {
				m.EXPECT().GetValue(gomock.Any(), scalars.KeyCash).Return("12500.75", nil)
			},
			want: 12500.75,
		},
		{
			name: "MissingFallsBackToZero",
			key:  scalars.KeyOtherAssets,
			setupMock: func(m *scalars.MockRepository) {
				m.EXPECT().GetValue(gomock.Any(), scalars.KeyOtherAssets).Return("", scalars.ErrNotFound)
			},
			want: 0,
		},
		{
			name: "MalformedFallsBackToZero",
			key:  scalars.KeyOtherLiabilities,
			setupMock: func(m *scalars.MockRepository) {
				m.EXPECT().GetValue(gomock.Any(), scalars.KeyOtherLiabilities).Return("not-a-number", nil)
			},
			want: 0,
		},
		{
			name:    "UnknownKey",
			key:     "favourite_color",
			wantErr: scalars.ErrUnknownKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := scalars.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := scalars.NewService(repo)
			got, err := svc.Get(context.Background(), tt.key)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestService_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := scalars.NewMockRepository(ctrl)
	repo.EXPECT().SetValue(gomock.Any(), scalars.KeyCash, "1000").Return(nil)

	svc := scalars.NewService(repo)
	require.NoError(t, svc.Set(context.Background(), scalars.KeyCash, 1000))

	assert.Error(t, svc.Set(context.Background(), scalars.KeyCash, -1))
	assert.ErrorIs(t, svc.Set(context.Background(), "bogus", 1), scalars.ErrUnknownKey)
}
