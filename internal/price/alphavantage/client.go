// Package alphavantage implements the general stock quote and symbol search
// API used as the fallback price source.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/onion2907/nivesh/internal/price"
)

const baseURL = "https://www.alphavantage.co/query"

type Client struct {
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	cache   *gocache.Cache
}

// New builds a client. The free tier allows five requests per minute, so
// calls are throttled to one every twelve seconds and quotes are cached.
func New(apiKey string, cacheTTL time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Every(12*time.Second), 1),
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
	}
}

type globalQuote struct {
	GlobalQuote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		LatestDay     string `json:"07. latest trading day"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
	Note        string `json:"Note"`
	Information string `json:"Information"`
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

	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return price.Quote{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return price.Quote{}, fmt.Errorf("fetching quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return price.Quote{}, fmt.Errorf("alphavantage status %d", resp.StatusCode)
	}

	var raw globalQuote
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return price.Quote{}, fmt.Errorf("decoding quote: %w", err)
	}

	if raw.Note != "" || raw.Information != "" {
		return price.Quote{}, price.ErrRateLimited
	}

	p, err := strconv.ParseFloat(raw.GlobalQuote.Price, 64)
	if err != nil || p <= 0 {
		return price.Quote{}, price.ErrNotFound
	}

	quote := price.Quote{
		Symbol:    symbol,
		Price:     p,
		Currency:  "USD",
		Timestamp: time.Now(),
	}

	if v, err := strconv.ParseFloat(raw.GlobalQuote.Change, 64); err == nil {
		quote.Change = v
	}

	if s := strings.TrimSuffix(raw.GlobalQuote.ChangePercent, "%"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			quote.ChangePercent = v
		}
	}

	if raw.GlobalQuote.LatestDay != "" {
		if t, err := time.Parse("2006-01-02", raw.GlobalQuote.LatestDay); err == nil {
			quote.Timestamp = t
		}
	}

	c.cache.Set(symbol, quote, gocache.DefaultExpiration)

	return quote, nil
}

// SearchResult is one match from symbol search.
type SearchResult struct {
	Symbol   string
	Name     string
	Region   string
	Currency string
}

type searchResponse struct {
	BestMatches []struct {
		Symbol   string `json:"1. symbol"`
		Name     string `json:"2. name"`
		Region   string `json:"4. region"`
		Currency string `json:"8. currency"`
	} `json:"bestMatches"`
}

// Search looks up symbols matching the given keywords.
func (c *Client) Search(ctx context.Context, keywords string) ([]SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("function", "SYMBOL_SEARCH")
	q.Set("keywords", keywords)
	q.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching symbols: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage status %d", resp.StatusCode)
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	results := make([]SearchResult, 0, len(raw.BestMatches))
	for _, m := range raw.BestMatches {
		results = append(results, SearchResult{
			Symbol:   m.Symbol,
			Name:     m.Name,
			Region:   m.Region,
			Currency: m.Currency,
		})
	}

	return results, nil
}
