package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"uparjan/internal/db"
	"uparjan/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

// newTestRouter wires the routes the way cmd/server does, against an
// in-memory SQLite database and without Redis.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(":memory:")
	require.NoError(t, err, "failed to open test database")
	// A pooled second connection to :memory: would see a fresh empty database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gdb), "failed to migrate test database")

	r := gin.New()
	r.GET("/health", HealthHandler())
	r.POST("/auth/register", RegisterHandler(gdb))
	r.POST("/auth/login", LoginHandler(gdb, testJWTSecret, 30*time.Minute))

	txGroup := r.Group("/transactions")
	txGroup.Use(middleware.JWTAuthMiddleware(testJWTSecret))
	txGroup.POST("", CreateTransactionHandler(gdb, nil))
	txGroup.GET("", ListTransactionsHandler(gdb, nil))
	txGroup.DELETE("/:id", DeleteTransactionHandler(gdb, nil))

	return r, gdb
}

// doJSON performs a request with an optional JSON body and headers
func doJSON(t *testing.T, r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
