package middleware

import (
	"net/http"
	"strconv"

	"dish-studio/internal/handler/httperr"
	"dish-studio/internal/pkg/clock"
	"dish-studio/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit guards the write endpoints with a per-caller fixed window.
// The limiter is injected so tests own and reset its state.
type RateLimit struct {
	limiter *ratelimit.FixedWindow
	clock   clock.Clock
}

func NewRateLimit(limiter *ratelimit.FixedWindow, clk clock.Clock) *RateLimit {
	return &RateLimit{limiter: limiter, clock: clk}
}

// Handler keys by authenticated user when present, otherwise by client IP.
// Mount it after RequireAuth on authenticated routes.
func (r *RateLimit) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			key = "user:" + userID.String()
		}
		key += ":" + c.FullPath()

		d := r.limiter.Allow(key, r.clock.Now())
		if d.Allowed {
			c.Next()
			return
		}

		secs := int(d.RetryAfter.Seconds())
		if secs < 1 {
			secs = 1
		}
		c.Header("Retry-After", strconv.Itoa(secs))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, httperr.Response{
			Code:    httperr.CodeRateLimited,
			Message: "Too many requests",
		})
	}
}
