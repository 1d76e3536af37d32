package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations and date parsing

	"uparjan/internal/domain" // Importing domain models
	"uparjan/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library

	"github.com/sirupsen/logrus" // Logging library
)

// Cache key for the full transaction list; invalidated on every mutation
const txListCacheKey = "transactions:all"

// Dates are stored without timezone semantics; responses echo plain calendar dates
const dateLayout = "2006-01-02"

// CreateTransactionRequest represents a new transaction. Category and Amount
// are pointers so that "" and 0 count as present: the field must appear in
// the payload, but emptiness and positivity are not enforced at this boundary.
type CreateTransactionRequest struct {
	Type     string   `json:"type" binding:"required,oneof=Income Expense"` // Transaction type, closed set
	Category *string  `json:"category" binding:"required"`                  // Category label, may be empty
	Amount   *float64 `json:"amount" binding:"required"`                    // Amount, zero allowed
	Date     string   `json:"date" binding:"required"`                      // Calendar date, ISO 8601
}

// TransactionResponse is the JSON shape returned for a transaction
type TransactionResponse struct {
	ID       uint    `json:"id"`       // Assigned identifier
	Type     string  `json:"type"`     // Transaction type
	Category string  `json:"category"` // Category label
	Amount   float64 `json:"amount"`   // Amount
	Date     string  `json:"date"`     // Calendar date, YYYY-MM-DD
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// toResponse maps a stored transaction to its response shape
func toResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       tx.ID,                       // Assigned identifier
		Type:     tx.Type,                     // Transaction type
		Category: tx.Category,                 // Category label
		Amount:   tx.Amount,                   // Amount
		Date:     tx.Date.Format(dateLayout), // Calendar date
	}
}

// CreateTransactionHandler inserts a new transaction and returns it with its ID
func CreateTransactionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		// Parse the transaction date
		date, err := parseDate(req.Date)
		if err != nil {
			// If the date is malformed, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		tx := domain.Transaction{
			Type:     req.Type,      // Transaction type
			Category: *req.Category, // Category label
			Amount:   *req.Amount,   // Amount
			Date:     date,          // Calendar date
		}
		// Insert the transaction; the operation commits immediately
		if err := db.Create(&tx).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"type":     tx.Type,     // Transaction type
				"category": tx.Category, // Category label
				"amount":   tx.Amount,   // Amount
				"error":    err.Error(), // Error message
			}).Error("Failed to create transaction") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"transaction_id": tx.ID,       // Assigned identifier
			"type":           tx.Type,     // Transaction type
			"category":       tx.Category, // Category label
			"amount":         tx.Amount,   // Amount
		}).Info("Transaction created") // Log creation
		// Invalidate the cached list
		_ = utils.DeleteCache(c.Request.Context(), rdb, txListCacheKey)
		// Return the created transaction
		c.JSON(http.StatusCreated, toResponse(tx))
	}
}

// ListTransactionsHandler returns all transactions ordered by date descending
func ListTransactionsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()       // Context for Redis operations
		var cached []TransactionResponse // Cached list
		// Try to get from cache
		found, err := utils.GetCache(ctx, rdb, txListCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached list
			return
		}
		var txs []domain.Transaction // Slice to hold transactions
		// Fetch all transactions, most recent date first; ties keep storage order
		if err := db.Order("date desc").Find(&txs).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		// Map to response shape
		resp := make([]TransactionResponse, len(txs))
		for i, tx := range txs {
			resp[i] = toResponse(tx)
		}
		// Cache the result for 60 seconds
		_ = utils.SetCache(ctx, rdb, txListCacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, resp) // Return the list
	}
}

// DeleteTransactionHandler removes a transaction by ID
func DeleteTransactionHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the ID from the path
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			// If the ID is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
			return
		}
		var tx domain.Transaction // Fetch the transaction first
		if err := db.First(&tx, id).Error; err != nil {
			// If not found, return a distinguishable not-found error
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		// Delete the transaction
		if err := db.Delete(&tx).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"transaction_id": id,          // Requested identifier
				"error":          err.Error(), // Error message
			}).Error("Failed to delete transaction") // Log deletion failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"transaction_id": tx.ID,   // Deleted identifier
			"type":           tx.Type, // Transaction type
		}).Info("Transaction deleted") // Log deletion
		// Invalidate the cached list
		_ = utils.DeleteCache(c.Request.Context(), rdb, txListCacheKey)
		c.Status(http.StatusNoContent) // Empty success
	}
}
