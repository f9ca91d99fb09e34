package metals_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onion2907/nivesh/internal/asset"
	"github.com/onion2907/nivesh/internal/price/metals"
)

func newServers(t *testing.T, hits *atomic.Int64) (metalURL, fxURL string) {
	t.Helper()

	metalSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)

		switch r.URL.Path {
		case "/price/XAU":
			w.Write([]byte(`{"name":"Gold","price":3110.34768,"updatedAt":"2025-06-01T10:00:00Z"}`))
		case "/price/XAG":
			w.Write([]byte(`{"name":"Silver","price":31.1034768,"updatedAt":"2025-06-01T10:00:00Z"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(metalSrv.Close)

	fxSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/latest/USD", r.URL.Path)
		w.Write([]byte(`{"result":"success","rates":{"INR":84.0,"EUR":0.92}}`))
	}))
	t.Cleanup(fxSrv.Close)

	return metalSrv.URL, fxSrv.URL
}

func TestClient_PricePerGram(t *testing.T) {
	var hits atomic.Int64

	metalURL, fxURL := newServers(t, &hits)
	c := metals.New(metalURL, fxURL, time.Minute)

	// Spot of 3110.34768 USD/ozt is exactly 100 USD/gram; at 84 INR/USD the
	// gram price is 8400 INR.
	got, err := c.PricePerGram(context.Background(), asset.TypeGold)
	require.NoError(t, err)
	assert.InDelta(t, 8400, got, 1e-6)

	got, err = c.PricePerGram(context.Background(), asset.TypeSilver)
	require.NoError(t, err)
	assert.InDelta(t, 84, got, 1e-6)

	_, err = c.PricePerGram(context.Background(), asset.TypeJewels)
	assert.Error(t, err)
}

func TestClient_CachesUpstreamResponses(t *testing.T) {
	var hits atomic.Int64

	metalURL, fxURL := newServers(t, &hits)
	c := metals.New(metalURL, fxURL, time.Minute)

	for range 3 {
		_, err := c.Spot(context.Background(), metals.SymbolGold)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), hits.Load())
}

func TestClient_RawSpotIsVerbatim(t *testing.T) {
	var hits atomic.Int64

	metalURL, fxURL := newServers(t, &hits)
	c := metals.New(metalURL, fxURL, time.Minute)

	body, err := c.RawSpot(context.Background(), metals.SymbolSilver)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Silver","price":31.1034768,"updatedAt":"2025-06-01T10:00:00Z"}`, string(body))
}

func TestClient_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := metals.New(srv.URL, srv.URL, time.Minute)

	_, err := c.Spot(context.Background(), metals.SymbolGold)
	assert.Error(t, err)
}
