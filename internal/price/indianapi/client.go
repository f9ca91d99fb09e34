// Package indianapi implements the Indian-market stock API, the primary
// quote source for NSE/BSE symbols.
package indianapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/onion2907/nivesh/internal/price"
)

const baseURL = "https://stock.indianapi.in"

type Client struct {
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	cache   *gocache.Cache
}

func New(apiKey string, cacheTTL time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
	}
}

type stockResponse struct {
	TickerID     string `json:"tickerId"`
	CompanyName  string `json:"companyName"`
	CurrentPrice struct {
		BSE float64 `json:"BSE,string"`
		NSE float64 `json:"NSE,string"`
	} `json:"currentPrice"`
	PercentChange float64 `json:"percentChange,string"`
}

func (c *Client) Quote(ctx context.Context, symbol string) (price.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return price.Quote{}, price.ErrNotFound
	}

	if cached, ok := c.cache.Get(symbol); ok {
		return cached.(price.Quote), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return price.Quote{}, err
	}

	u := baseURL + "/stock?name=" + url.QueryEscape(symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return price.Quote{}, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return price.Quote{}, fmt.Errorf("fetching quote: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return price.Quote{}, price.ErrRateLimited
	case http.StatusNotFound:
		return price.Quote{}, price.ErrNotFound
	default:
		return price.Quote{}, fmt.Errorf("indianapi status %d", resp.StatusCode)
	}

	var raw stockResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return price.Quote{}, fmt.Errorf("decoding quote: %w", err)
	}

	// NSE price preferred, BSE as fallback.
	p := raw.CurrentPrice.NSE
	if p <= 0 {
		p = raw.CurrentPrice.BSE
	}

	if p <= 0 {
		return price.Quote{}, price.ErrNotFound
	}

	quote := price.Quote{
		Symbol:        symbol,
		Price:         p,
		ChangePercent: raw.PercentChange,
		Currency:      "INR",
		Timestamp:     time.Now(),
	}

	// The API reports percent change only; derive the absolute move from it.
	if raw.PercentChange != 0 {
		prev := p / (1 + raw.PercentChange/100)
		quote.Change = p - prev
	}

	c.cache.Set(symbol, quote, gocache.DefaultExpiration)

	return quote, nil
}
