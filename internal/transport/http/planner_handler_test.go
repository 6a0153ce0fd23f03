package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/service"
	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

type fixedSuggestions struct{}

func (fixedSuggestions) Suggest(ctx context.Context, location string, category domain.Category) (*domain.SuggestionList, error) {
	country := "France"
	return &domain.SuggestionList{
		SearchCountry: &country,
		Suggestions: []domain.Suggestion{
			{Name: "Louvre", Country: "France", Coordinate: domain.Coordinate{Latitude: 48.8606, Longitude: 2.3376}},
			{Name: "Musée d'Orsay", Country: "France", Coordinate: domain.Coordinate{Latitude: 48.8600, Longitude: 2.3266}},
		},
	}, nil
}

func newPlannerServer(t *testing.T) *echo.Echo {
	t.Helper()
	sessions := service.NewSessionService(util.NewJWTManager("planner-secret", time.Hour), nil)
	itinerary := service.NewItineraryService(sessions, service.NewBookingResolver(service.BookingTargets{}))
	planner := service.NewPlannerService(fixedSuggestions{}, nil, nil, service.PlannerConfig{})

	e := NewRouter([]string{"*"})
	RegisterSessions(e, sessions)
	RegisterItinerary(e, sessions, itinerary)
	RegisterPlanner(e, planner, service.NewImageService(nil, nil, service.ImageServiceConfig{}), sessions, NewRateLimiter(60, 10))
	return e
}

func TestPlannerRoutes_Suggestions(t *testing.T) {
	e := newPlannerServer(t)
	token := startSession(t, e)

	louvre := `{"name":"Louvre","country":"France","coordinate":{"latitude":48.8606,"longitude":2.3376},"category":"tourist_attractions"}`
	if rec := doJSON(e, http.MethodPost, "/api/v1/itinerary", token, louvre); rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d", rec.Code)
	}

	rec := doJSON(e, http.MethodGet, "/api/v1/planner/suggestions?location=Paris&lat=48.8584&lng=2.2945", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("suggestions: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Search      domain.SearchContext `json:"search"`
		Suggestions []struct {
			Name        string   `json:"name"`
			DistanceKm  *float64 `json:"distance_km"`
			InItinerary bool     `json:"in_itinerary"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Search.SearchCountry == nil || *resp.Search.SearchCountry != "France" {
		t.Fatalf("expected search country France, got %v", resp.Search.SearchCountry)
	}
	if len(resp.Suggestions) != 2 || !resp.Suggestions[0].InItinerary || resp.Suggestions[1].InItinerary {
		t.Fatalf("unexpected suggestions %s", rec.Body.String())
	}
	if resp.Suggestions[0].DistanceKm == nil || *resp.Suggestions[0].DistanceKm > 5 {
		t.Fatalf("expected Louvre distance under 5km, got %v", resp.Suggestions[0].DistanceKm)
	}
}

func TestPlannerRoutes_SuggestionErrors(t *testing.T) {
	e := newPlannerServer(t)
	token := startSession(t, e)

	for _, target := range []string{
		"/api/v1/planner/suggestions?location=",
		"/api/v1/planner/suggestions?location=Paris&category=nightlife",
		"/api/v1/planner/suggestions?location=Paris&lat=48.8",
		"/api/v1/planner/suggestions?location=Paris&lat=95&lng=2",
	} {
		if rec := doJSON(e, http.MethodGet, target, token, ""); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
	if rec := doJSON(e, http.MethodGet, "/api/v1/planner/suggestions?location=Paris", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}
}

func TestPlannerRoutes_LocationAndImagesUnconfigured(t *testing.T) {
	e := newPlannerServer(t)

	rec := doJSON(e, http.MethodGet, "/api/v1/planner/location", "", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "{\"location\":null}\n" {
		t.Fatalf("location: unexpected %d %q", rec.Code, rec.Body.String())
	}

	body := `{"image_prompt":"glass pyramid","location":"Paris","name":"Louvre","description":"Museum"}`
	if rec := doJSON(e, http.MethodPost, "/api/v1/planner/images", "", body); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("images: expected 503, got %d", rec.Code)
	}
}
