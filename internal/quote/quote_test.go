package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(handler http.HandlerFunc) (*YahooProvider, *httptest.Server) {
	srv := httptest.NewServer(handler)
	p := &YahooProvider{BaseURL: srv.URL, Client: srv.Client()}
	return p, srv
}

func TestGetPrice(t *testing.T) {
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/AAPL", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chart":{"result":[{"meta":{"regularMarketPrice":187.42}}]}}`))
	})
	defer srv.Close()

	price, err := p.GetPrice(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, 187.42, price)
}

func TestGetPriceUnknownSymbol(t *testing.T) {
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"chart":{"error":{"code":"Not Found"}}}`, http.StatusNotFound)
	})
	defer srv.Close()

	_, err := p.GetPrice(context.Background(), "NOSUCH")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestGetPriceMissingPrice(t *testing.T) {
	// A well-formed response without a price also counts as not found
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chart":{"result":[{"meta":{}}]}}`))
	})
	defer srv.Close()

	_, err := p.GetPrice(context.Background(), "ODD")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestGetPriceUpstreamFailure(t *testing.T) {
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})
	defer srv.Close()

	_, err := p.GetPrice(context.Background(), "AAPL")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSymbolNotFound)
	assert.Contains(t, err.Error(), "500")
}
