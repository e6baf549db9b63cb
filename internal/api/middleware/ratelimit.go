package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"golang.org/x/time/rate"
)

// RateLimit throttles all requests through one token bucket refilled at rps
// tokens per second with the given burst. Requests that find the bucket empty
// get a 429 JSON error. A non-positive rps disables limiting.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = int(math.Ceil(rps))
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	retryAfter := strconv.Itoa(int(math.Max(1, math.Ceil(1/rps))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
					"too many requests", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
