package quote

import (
	"context"       // Context for outbound requests
	"encoding/json" // JSON decoding of provider responses
	"errors"        // Sentinel errors
	"fmt"           // Error formatting
	"io"            // Response body handling
	"net/http"      // HTTP client
	"net/url"       // URL escaping
	"time"          // Client timeout
)

// ErrSymbolNotFound is returned when the provider has no current price for a symbol
var ErrSymbolNotFound = errors.New("symbol not found")

// Provider looks up the current market price of a stock symbol. Handlers
// depend on this interface so a test double can stand in for the network.
type Provider interface {
	GetPrice(ctx context.Context, symbol string) (float64, error)
}

// YahooProvider fetches prices from the Yahoo Finance chart endpoint
type YahooProvider struct {
	BaseURL string       // Provider base URL, e.g. https://query1.finance.yahoo.com
	Client  *http.Client // HTTP client used for requests
}

// NewYahooProvider creates a provider against the given base URL
func NewYahooProvider(baseURL string) *YahooProvider {
	return &YahooProvider{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second}, // Bounded outbound call
	}
}

// chartResponse mirrors the fields we need from the chart endpoint
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice *float64 `json:"regularMarketPrice"` // Current price, absent for unknown symbols
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

// GetPrice returns the current price for symbol, ErrSymbolNotFound when the
// provider has no price, or a wrapped provider error otherwise.
func (p *YahooProvider) GetPrice(ctx context.Context, symbol string) (float64, error) {
	endpoint := p.BaseURL + "/v8/finance/chart/" + url.PathEscape(symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "uparjan/1.0") // Yahoo rejects requests without a UA

	resp, err := p.Client.Do(req) // Blocking provider call
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Unknown symbols come back as 404 from the chart endpoint
	if resp.StatusCode == http.StatusNotFound {
		return 0, ErrSymbolNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var cr chartResponse // Decode the provider response
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return 0, fmt.Errorf("decoding provider response: %w", err)
	}
	// A well-formed response without a price also counts as not found
	if len(cr.Chart.Result) == 0 || cr.Chart.Result[0].Meta.RegularMarketPrice == nil {
		return 0, ErrSymbolNotFound
	}
	return *cr.Chart.Result[0].Meta.RegularMarketPrice, nil
}
