package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/vortexgear/storefront/internal/errors"
	"github.com/vortexgear/storefront/internal/utils/response"
)

type RateLimiter interface {
	CheckRateLimit(ctx context.Context, subject string) (bool, int, int, error)
}

type RateLimitMiddleware struct {
	limiter    RateLimiter
	trustProxy bool
}

// NewRateLimitMiddleware keys clients by the connection address, or by the
// first X-Forwarded-For entry when trustProxy is set.
func NewRateLimitMiddleware(limiter RateLimiter, trustProxy bool) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, trustProxy: trustProxy}
}

// Limit rejects a client that is over its window with 429. When the limiter
// itself fails the request goes through.
func (m *RateLimitMiddleware) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		subject := clientIP(r, m.trustProxy)

		allowed, remaining, retryAfter, err := m.limiter.CheckRateLimit(r.Context(), subject)
		if err != nil {
			logger.Error("Rate limit check failed, allowing request", slog.String("error", err.Error()))
			next(w, r)
			return
		}

		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			response.Error(w, errors.TooManyRequestsError("Too many messages. Please slow down."))
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		next(w, r)
	}
}

func clientIP(r *http.Request, trustProxy bool) string {

	if trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			return strings.TrimSpace(first)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
