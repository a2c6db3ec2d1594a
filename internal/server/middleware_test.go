package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/desertthunder/trackbridge/internal/shared"
	"golang.org/x/time/rate"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates an id", func(t *testing.T) {
		handler := RequestID()(okHandler())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("expected a generated request id")
		}
	})

	t.Run("preserves an inbound id", func(t *testing.T) {
		handler := RequestID()(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "inbound-id")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "inbound-id" {
			t.Errorf("expected inbound-id, got %q", got)
		}
	})
}

func TestCORS(t *testing.T) {
	t.Run("sets allow headers on responses", func(t *testing.T) {
		handler := CORS()(okHandler())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected wildcard origin, got %q", got)
		}
	})

	t.Run("answers preflight without calling the handler", func(t *testing.T) {
		called := false
		handler := CORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/convert/spotify-to-youtube", nil))

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}

		if called {
			t.Error("expected preflight to short-circuit")
		}
	})
}

func TestRateLimit(t *testing.T) {
	logger := shared.NewLogger(io.Discard)

	t.Run("allows requests within the quota", func(t *testing.T) {
		limiter := rate.NewLimiter(rate.Every(time.Minute), 5)
		handler := RateLimit(limiter, logger)(okHandler())

		for i := 0; i < 5; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/convert/spotify-to-youtube", nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
			}
		}
	})

	t.Run("rejects requests over the quota", func(t *testing.T) {
		limiter := rate.NewLimiter(rate.Every(time.Minute), 2)
		handler := RateLimit(limiter, logger)(okHandler())

		for i := 0; i < 2; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/convert/spotify-to-youtube", nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
			}
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/convert/spotify-to-youtube", nil))

		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rec.Code)
		}

		retryAfter, err := strconv.Atoi(rec.Header().Get("Retry-After"))
		if err != nil || retryAfter < 1 {
			t.Errorf("expected a positive Retry-After hint, got %q", rec.Header().Get("Retry-After"))
		}

		if detail := decodeBody(t, rec)["detail"]; detail != "Rate limit exceeded. Please try again later." {
			t.Errorf("unexpected detail %v", detail)
		}
	})
}

func TestNewGlobalLimiter(t *testing.T) {
	t.Run("burst matches the configured quota", func(t *testing.T) {
		limiter := NewGlobalLimiter(100, 10)
		if limiter.Burst() != 100 {
			t.Errorf("expected burst 100, got %d", limiter.Burst())
		}
	})

	t.Run("falls back to defaults for invalid values", func(t *testing.T) {
		limiter := NewGlobalLimiter(0, 0)
		if limiter.Burst() != 100 {
			t.Errorf("expected default burst 100, got %d", limiter.Burst())
		}
	})
}
