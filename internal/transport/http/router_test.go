package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRouter_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	e := NewRouter([]string{"*"})

	rec := doJSON(e, http.MethodGet, "/api/v1/nowhere", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("expected error message, got %s", rec.Body.String())
	}
	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRouter_HealthAndBodyLimit(t *testing.T) {
	e := NewRouter([]string{"https://planner.example"})
	e.POST("/echo", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	if rec := doJSON(e, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}

	big := `{"blob":"` + strings.Repeat("a", 2<<20) + `"}`
	if rec := doJSON(e, http.MethodPost, "/echo", "", big); rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 for oversized body, got %d", rec.Code)
	}
}
