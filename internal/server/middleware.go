package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/trackbridge/internal/shared"
	"golang.org/x/time/rate"
)

// RequestID attaches a generated request id to the response headers so log
// lines and responses can be correlated.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = shared.GenerateID()
			}
			w.Header().Set("X-Request-ID", id)
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs method, path, and duration for every request.
func RequestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
				"request_id", w.Header().Get("X-Request-ID"),
			)
		})
	}
}

// CORS allows cross-origin calls from any origin and answers preflight
// requests directly.
func CORS() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewGlobalLimiter builds the shared limiter for the conversion endpoints:
// a quota of requests per window with matching burst capacity.
func NewGlobalLimiter(requests, windowMinutes int) *rate.Limiter {
	if requests <= 0 {
		requests = 100
	}
	if windowMinutes <= 0 {
		windowMinutes = 10
	}

	window := time.Duration(windowMinutes) * time.Minute
	return rate.NewLimiter(rate.Every(window/time.Duration(requests)), requests)
}

// RateLimit rejects requests over the limiter's quota with a 429 and a
// Retry-After hint. The conversion pipeline is never invoked for rejected
// requests.
func RateLimit(limiter *rate.Limiter, logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reservation := limiter.Reserve()
			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()

				retryAfter := int(delay.Seconds()) + 1
				logger.Warn("rate limit exceeded",
					"client", r.RemoteAddr,
					"path", r.URL.Path,
					"retry_after", retryAfter,
				)

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeDetail(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
