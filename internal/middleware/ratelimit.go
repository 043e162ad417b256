package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"autoloco/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxLimiters bounds the per-client map; crossing it starts over.
const maxLimiters = 10000

// RateLimit keeps one token bucket per authenticated user, or per client IP
// for anonymous requests.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}

	var mu sync.Mutex
	limiters := map[string]*rate.Limiter{}

	get := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[key]
		if !ok {
			if len(limiters) >= maxLimiters {
				limiters = map[string]*rate.Limiter{}
			}
			l = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[key] = l
		}
		return l
	}

	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if uid := c.GetInt64("user_id"); uid != 0 {
			key = "user:" + strconv.FormatInt(uid, 10)
		}

		if !get(key).Allow() {
			response.Abort(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, retry later")
			return
		}
		c.Next()
	}
}
