package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCredentialRateLimiter(t *testing.T) {
	m := newTestMiddlewares("test-secret")

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(limiter *RateLimiter, remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		req.RemoteAddr = remoteAddr

		rr := httptest.NewRecorder()
		limiter.Limit(okHandler).ServeHTTP(rr, req)
		return rr
	}

	t.Run("requests within burst pass", func(t *testing.T) {
		limiter := m.NewCredentialRateLimiter(3, time.Minute, time.Minute)

		for i := 0; i < 3; i++ {
			rr := serve(limiter, "10.0.0.1:5000")
			assert.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("exceeding burst blocks the client", func(t *testing.T) {
		limiter := m.NewCredentialRateLimiter(2, time.Minute, time.Minute)

		for i := 0; i < 2; i++ {
			serve(limiter, "10.0.0.2:5000")
		}

		rr := serve(limiter, "10.0.0.2:5000")
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)

		rr = serve(limiter, "10.0.0.2:5000")
		assert.Equal(t, http.StatusTooManyRequests, rr.Code, "client stays blocked after tripping the limit")
	})

	t.Run("limits are tracked per IP", func(t *testing.T) {
		limiter := m.NewCredentialRateLimiter(1, time.Minute, time.Minute)

		serve(limiter, "10.0.0.3:5000")
		rr := serve(limiter, "10.0.0.3:5000")
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)

		rr = serve(limiter, "10.0.0.4:5000")
		assert.Equal(t, http.StatusOK, rr.Code, "a different client is unaffected")
	})
}
