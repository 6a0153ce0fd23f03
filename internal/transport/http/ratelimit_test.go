package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return fixed }

	if !rl.Allow("1.1.1.1") || !rl.Allow("1.1.1.1") {
		t.Fatalf("expected burst of two to be allowed")
	}
	if rl.Allow("1.1.1.1") {
		t.Fatalf("expected third request to be limited")
	}
	if !rl.Allow("2.2.2.2") {
		t.Fatalf("expected another client to have its own bucket")
	}

	fixed = fixed.Add(time.Minute)
	if !rl.Allow("1.1.1.1") {
		t.Fatalf("expected bucket to refill after a minute")
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 1)
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	for i, want := range []int{http.StatusNoContent, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/suggestions", nil)
		req.Header.Set(echo.HeaderXRealIP, "9.9.9.9")
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("request %d returned error: %v", i, err)
		}
		if rec.Code != want {
			t.Fatalf("request %d: expected %d, got %d", i, want, rec.Code)
		}
	}
}
