package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-profile-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitConfigsUseProvidedSettings(t *testing.T) {
	login := LoginRateLimitConfig(7, 30*time.Second)
	assert.Equal(t, 7, login.Limit)
	assert.Equal(t, 30*time.Second, login.Window)
	assert.True(t, login.FailClosed)

	def := DefaultRateLimitConfig(45 * time.Second)
	assert.Equal(t, 100, def.Limit)
	assert.Equal(t, 45*time.Second, def.Window)
	assert.False(t, def.FailClosed)
}

func TestRateLimitMiddlewareEnforcesConfiguredLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()

	config := LoginRateLimitConfig(2, time.Minute)
	config.KeyPrefix = "rl:test-enforce:"

	r := gin.New()
	r.POST("/login", RateLimitMiddleware(config), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
