package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/service"
	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

type PlannerHandler struct {
	planner  *service.PlannerService
	images   *service.ImageService
	sessions *service.SessionService
}

type SuggestionResponse struct {
	domain.EnrichedSuggestion
	InItinerary bool `json:"in_itinerary"`
}

func RegisterPlanner(e *echo.Echo, planner *service.PlannerService, images *service.ImageService, sessions *service.SessionService, limiter *RateLimiter) {
	h := &PlannerHandler{planner: planner, images: images, sessions: sessions}

	g := e.Group("/api/v1/planner")
	g.GET("/location", h.location)
	g.GET("/suggestions", h.suggestions, RequireSession(sessions), limiter.Middleware())
	g.POST("/images", h.generateImage, limiter.Middleware())
}

func (h *PlannerHandler) suggestions(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	query, err := parseSearchQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	result, err := h.planner.Search(c.Request().Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLocationRequired),
			errors.Is(err, service.ErrInvalidCategory),
			errors.Is(err, domain.ErrInvalidCoordinate):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrSuggestionsUnavailable):
			log.Printf("planner: suggestions for %q: %v", query.Location, err)
			return c.JSON(http.StatusBadGateway, util.Error("Could not get suggestions. Please try again."))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not get suggestions"))
		}
	}

	if err := h.sessions.RememberSearch(session.ID, result.Context); err != nil {
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	}
	store, err := h.sessions.Itinerary(session.ID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	}

	items := make([]SuggestionResponse, 0, len(result.Suggestions))
	for _, s := range result.Suggestions {
		items = append(items, SuggestionResponse{EnrichedSuggestion: s, InItinerary: store.Contains(s.Name)})
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"search":      result.Context,
		"suggestions": items,
	})
}

func (h *PlannerHandler) location(c echo.Context) error {
	loc, err := h.planner.Locate(c.Request().Context(), c.RealIP())
	if err != nil {
		if !errors.Is(err, service.ErrLocationUnavailable) {
			log.Printf("planner: locate %s: %v", c.RealIP(), err)
		}
		return c.JSON(http.StatusOK, util.Envelope{"location": nil})
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"location": util.Envelope{
			"city":       loc.City,
			"country":    loc.Country,
			"coordinate": loc.Coordinate,
		},
	})
}

func (h *PlannerHandler) generateImage(c echo.Context) error {
	var req domain.ImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	img, err := h.images.Generate(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrImageUnavailable):
			return c.JSON(http.StatusServiceUnavailable, util.Error("image generation is not configured"))
		case errors.Is(err, service.ErrImageGeneration):
			log.Printf("planner: image for %q: %v", req.Name, err)
			return c.JSON(http.StatusBadGateway, util.Error("Image generation failed to return an image."))
		default:
			log.Printf("planner: store image for %q: %v", req.Name, err)
			return c.JSON(http.StatusInternalServerError, util.Error("could not store generated image"))
		}
	}
	return c.JSON(http.StatusOK, img)
}

func parseSearchQuery(c echo.Context) (service.SearchQuery, error) {
	query := service.SearchQuery{Location: strings.TrimSpace(c.QueryParam("location"))}

	if raw := strings.TrimSpace(c.QueryParam("category")); raw != "" {
		category, err := domain.ParseCategory(raw)
		if err != nil {
			return query, err
		}
		query.Category = category
	}

	ref, err := parseReference(c.QueryParam("lat"), c.QueryParam("lng"))
	if err != nil {
		return query, err
	}
	query.Reference = ref
	return query, nil
}

// parseReference requires lat and lng together; neither means no reference.
func parseReference(rawLat, rawLng string) (*domain.Coordinate, error) {
	rawLat, rawLng = strings.TrimSpace(rawLat), strings.TrimSpace(rawLng)
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}
	if rawLat == "" || rawLng == "" {
		return nil, fmt.Errorf("%w: lat and lng must be given together", domain.ErrInvalidCoordinate)
	}
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: lat must be a number", domain.ErrInvalidCoordinate)
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: lng must be a number", domain.ErrInvalidCoordinate)
	}
	coord, err := domain.NewCoordinate(lat, lng)
	if err != nil {
		return nil, err
	}
	return &coord, nil
}
