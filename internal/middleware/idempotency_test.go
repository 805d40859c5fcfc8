package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyWithoutRedisPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/salaries", Idempotency(nil), func(c *gin.Context) {
		_, hasCache := c.Get("idempotency_cache_key")
		assert.False(t, hasCache)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/salaries", nil)
	req.Header.Set("Idempotency-Key", "retry-123")
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() { router.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdempotencyIgnoresRequestsWithoutKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/salaries", Idempotency(nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/salaries", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
