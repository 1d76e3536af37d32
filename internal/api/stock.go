package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strings"  // String manipulation
	"time"     // Cache TTL

	"uparjan/internal/quote" // Market-data provider
	"uparjan/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// StockPriceResponse is the JSON shape for a quote lookup
type StockPriceResponse struct {
	Symbol string  `json:"symbol"` // Upper-cased ticker symbol
	Price  float64 `json:"price"`  // Current market price
}

// StockPriceHandler looks up the current price for a symbol via the provider
func StockPriceHandler(provider quote.Provider, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		symbol := c.Query("symbol") // Ticker symbol from the query string
		if symbol == "" {
			// If missing, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing symbol query parameter"})
			return
		}
		ctx := c.Request.Context()                               // Propagate the request context to the provider
		cacheKey := "stockprice:" + strings.ToUpper(symbol)      // Cache key for this symbol
		var cached StockPriceResponse                            // Cached quote
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached) // Try to get from cache
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached quote
			return
		}
		// Forward to the external provider
		price, err := provider.GetPrice(ctx, symbol)
		if errors.Is(err, quote.ErrSymbolNotFound) {
			// The provider has no current price for this symbol
			c.JSON(http.StatusNotFound, gin.H{"error": "Could not find price for symbol '" + symbol + "'"})
			return
		}
		if err != nil {
			// Any other provider failure; include the provider's error text
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching stock price: " + err.Error()})
			return
		}
		resp := StockPriceResponse{Symbol: strings.ToUpper(symbol), Price: price}
		// Cache the quote for 60 seconds
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, resp) // Return the quote
	}
}
