package http

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/service"
	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

type ItineraryHandler struct {
	itinerary *service.ItineraryService
}

type addItineraryRequest struct {
	domain.Suggestion
	DistanceKm *float64 `json:"distance_km"`
}

func RegisterItinerary(e *echo.Echo, sessions *service.SessionService, itinerary *service.ItineraryService) {
	h := &ItineraryHandler{itinerary: itinerary}

	g := e.Group("/api/v1/itinerary", RequireSession(sessions))
	g.GET("", h.list)
	g.POST("", h.add)
	g.GET("/export.pdf", h.exportPDF)
	g.GET("/:name/actions", h.actions)
	g.DELETE("/:name", h.remove)
}

func (h *ItineraryHandler) list(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	entries, err := h.itinerary.List(c.Request().Context(), session.ID, searchCountryParam(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, util.List("items", entries))
}

func (h *ItineraryHandler) add(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	var req addItineraryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	category := req.Category
	if category != "" {
		parsed, err := domain.ParseCategory(string(category))
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		category = parsed
	}

	item, err := h.itinerary.Add(c.Request().Context(), session.ID, domain.EnrichedSuggestion{
		Suggestion: req.Suggestion,
		DistanceKm: req.DistanceKm,
	}, category)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, util.Envelope{
		"item":    item,
		"message": item.Name + " added to your itinerary",
	})
}

func (h *ItineraryHandler) remove(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	name := nameParam(c)
	removed, err := h.itinerary.Remove(c.Request().Context(), session.ID, name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"name":    name,
		"removed": removed,
	})
}

func (h *ItineraryHandler) actions(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	entry, err := h.itinerary.Actions(c.Request().Context(), session.ID, nameParam(c), searchCountryParam(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *ItineraryHandler) exportPDF(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}

	var buf bytes.Buffer
	if err := h.itinerary.ExportPDF(c.Request().Context(), session.ID, searchCountryParam(c), &buf); err != nil {
		return h.fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="itinerary.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *ItineraryHandler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionInvalid):
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	case errors.Is(err, service.ErrItineraryDuplicate):
		return c.JSON(http.StatusConflict, util.Error("this place is already in your itinerary"))
	case errors.Is(err, service.ErrItineraryItemNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrItineraryValidation), errors.Is(err, service.ErrInvalidCategory):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	default:
		log.Printf("itinerary: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Error("could not update itinerary"))
	}
}

// nameParam returns the decoded item name. echo matches on URL.RawPath when it
// is set and then leaves params escaped; otherwise they are already decoded.
func nameParam(c echo.Context) string {
	name := c.Param("name")
	if c.Request().URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}
	return strings.TrimSpace(name)
}

func searchCountryParam(c echo.Context) *string {
	country := strings.TrimSpace(c.QueryParam("search_country"))
	if country == "" {
		return nil
	}
	return &country
}
