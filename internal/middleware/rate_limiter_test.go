package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func requestFrom(e *echo.Echo, handler echo.HandlerFunc, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.100:12345"
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec.Code
}

func TestIPRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	e := echo.New()
	limiter := NewIPRateLimiter(1, 3)
	frozen := time.Now()
	limiter.now = func() time.Time { return frozen }
	handler := limiter.Middleware()(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, requestFrom(e, handler, ""), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(e, handler, ""))

	frozen = frozen.Add(time.Second)
	assert.Equal(t, http.StatusOK, requestFrom(e, handler, ""))
}

func TestIPRateLimiter_SeparateBucketsPerClient(t *testing.T) {
	e := echo.New()
	limiter := NewIPRateLimiter(1, 1)
	frozen := time.Now()
	limiter.now = func() time.Time { return frozen }
	handler := limiter.Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, requestFrom(e, handler, "203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(e, handler, "203.0.113.1, 10.0.0.1"))
	assert.Equal(t, http.StatusOK, requestFrom(e, handler, "203.0.113.2"))
}

func TestIPRateLimiter_Defaults(t *testing.T) {
	limiter := NewIPRateLimiter(0, 0)

	assert.Equal(t, float64(20), float64(limiter.limit))
	assert.Equal(t, 40, limiter.burst)
}

func TestIPRateLimiter_CleanupDropsIdleVisitors(t *testing.T) {
	limiter := NewIPRateLimiter(5, 5)
	start := time.Now()
	limiter.now = func() time.Time { return start }

	require.True(t, limiter.allow("198.51.100.1"))
	limiter.now = func() time.Time { return start.Add(visitorIdleTTL - time.Second) }
	require.True(t, limiter.allow("198.51.100.2"))

	limiter.now = func() time.Time { return start.Add(visitorIdleTTL + time.Second) }
	limiter.cleanup()

	assert.NotContains(t, limiter.visitors, "198.51.100.1")
	assert.Contains(t, limiter.visitors, "198.51.100.2")
}

func TestIPRateLimiter_RunCleanupStopsWithContext(t *testing.T) {
	limiter := NewIPRateLimiter(5, 5)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		limiter.RunCleanup(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunCleanup did not return after cancel")
	}
}
