//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"dish-studio/internal/handler/middleware"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/ratelimit"
	"dish-studio/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMockClock(time.Date(2026, 10, 17, 3, 0, 0, 0, time.UTC))
	limiter := ratelimit.NewFixedWindow(time.Minute, 2)
	rl := middleware.NewRateLimit(limiter, clk)

	alice, bob := uuid.New(), uuid.New()
	asUser := func(id uuid.UUID) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", id)
			c.Next()
		}
	}
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	r := gin.New()
	r.POST("/alice", asUser(alice), rl.Handler(), ok)
	r.POST("/bob", asUser(bob), rl.Handler(), ok)

	for i := 0; i < 2; i++ {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/alice", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec := httptest.PerformRequest(t, r, http.MethodPost, "/alice", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "RATE_LIMITED")
	httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "60"})

	// Another caller has its own window.
	rec = httptest.PerformRequest(t, r, http.MethodPost, "/bob", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	clk.Add(time.Minute)
	rec = httptest.PerformRequest(t, r, http.MethodPost, "/alice", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
