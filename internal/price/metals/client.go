// Package metals implements the spot-price and FX API used to value gold
// and silver assets and to back the /api/metal and /api/fx proxies.
package metals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/onion2907/nivesh/internal/asset"
)

// TroyOunceGrams converts the upstream per-troy-ounce spot price to grams.
const TroyOunceGrams = 31.1034768

// Upstream metal symbols.
const (
	SymbolGold   = "XAU"
	SymbolSilver = "XAG"
)

type Client struct {
	metalBaseURL string
	fxBaseURL    string
	client       *http.Client
	cache        *gocache.Cache
}

func New(metalBaseURL, fxBaseURL string, cacheTTL time.Duration) *Client {
	return &Client{
		metalBaseURL: metalBaseURL,
		fxBaseURL:    fxBaseURL,
		client:       &http.Client{Timeout: 10 * time.Second},
		cache:        gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (c *Client) fetch(ctx context.Context, cacheKey, url string) ([]byte, error) {
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]byte), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", cacheKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s upstream status %d", cacheKey, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", cacheKey, err)
	}

	c.cache.Set(cacheKey, body, gocache.DefaultExpiration)

	return body, nil
}

// RawSpot returns the upstream metal-price JSON untouched, for the proxy
// endpoint to relay verbatim.
func (c *Client) RawSpot(ctx context.Context, symbol string) ([]byte, error) {
	return c.fetch(ctx, "metal:"+symbol, c.metalBaseURL+"/price/"+symbol)
}

// RawUSDINR returns the upstream FX JSON untouched.
func (c *Client) RawUSDINR(ctx context.Context) ([]byte, error) {
	return c.fetch(ctx, "fx:usd", c.fxBaseURL+"/latest/USD")
}

type spotResponse struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	UpdatedAt string  `json:"updatedAt"`
}

// Spot returns the metal spot price in USD per troy ounce.
func (c *Client) Spot(ctx context.Context, symbol string) (float64, error) {
	body, err := c.RawSpot(ctx, symbol)
	if err != nil {
		return 0, err
	}

	var raw spotResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, fmt.Errorf("decoding spot price: %w", err)
	}

	if raw.Price <= 0 {
		return 0, fmt.Errorf("no spot price for %s", symbol)
	}

	return raw.Price, nil
}

type fxResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// USDINR returns how many rupees one US dollar buys.
func (c *Client) USDINR(ctx context.Context) (float64, error) {
	body, err := c.RawUSDINR(ctx)
	if err != nil {
		return 0, err
	}

	var raw fxResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, fmt.Errorf("decoding fx rates: %w", err)
	}

	rate, ok := raw.Rates["INR"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("no INR rate in fx response")
	}

	return rate, nil
}

// PricePerGram implements asset.MetalPricer: the INR price of one gram of
// the given metal, derived from the USD spot per troy ounce and the USD→INR
// rate.
func (c *Client) PricePerGram(ctx context.Context, t asset.Type) (float64, error) {
	var symbol string

	switch t {
	case asset.TypeGold:
		symbol = SymbolGold
	case asset.TypeSilver:
		symbol = SymbolSilver
	default:
		return 0, fmt.Errorf("no spot symbol for asset type %s", t)
	}

	spot, err := c.Spot(ctx, symbol)
	if err != nil {
		return 0, err
	}

	usdInr, err := c.USDINR(ctx)
	if err != nil {
		return 0, err
	}

	return spot / TroyOunceGrams * usdInr, nil
}
