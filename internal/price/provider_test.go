package price_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onion2907/nivesh/internal/price"
)

type stubProvider struct {
	quote price.Quote
	err   error
	calls int
}

func (s *stubProvider) Quote(_ context.Context, _ string) (price.Quote, error) {
	s.calls++
	return s.quote, s.err
}

func TestFallback_PrimaryWins(t *testing.T) {
	primary := &stubProvider{quote: price.Quote{Symbol: "INFY", Price: 1600}}
	secondary := &stubProvider{quote: price.Quote{Symbol: "INFY", Price: 1}}

	f := price.Fallback{Primary: primary, Secondary: secondary}
	got, err := f.Quote(context.Background(), "INFY")

	require.NoError(t, err)
	assert.InDelta(t, 1600, got.Price, 1e-9)
	assert.Zero(t, secondary.calls)
}

func TestFallback_SecondaryOnPrimaryError(t *testing.T) {
	primary := &stubProvider{err: price.ErrNotFound}
	secondary := &stubProvider{quote: price.Quote{Symbol: "AAPL", Price: 210}}

	f := price.Fallback{Primary: primary, Secondary: secondary}
	got, err := f.Quote(context.Background(), "AAPL")

	require.NoError(t, err)
	assert.InDelta(t, 210, got.Price, 1e-9)
}

func TestFallback_NoSecondary(t *testing.T) {
	wantErr := errors.New("boom")
	f := price.Fallback{Primary: &stubProvider{err: wantErr}}

	_, err := f.Quote(context.Background(), "X")
	assert.ErrorIs(t, err, wantErr)
}
