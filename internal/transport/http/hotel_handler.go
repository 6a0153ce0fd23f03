package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Holiday_planner_BackEnd/internal/service"
	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

const stayDateLayout = "2006-01-02"

type HotelHandler struct {
	hotels *service.HotelService
}

func RegisterHotels(e *echo.Echo, hotels *service.HotelService) {
	h := &HotelHandler{hotels: hotels}

	g := e.Group("/api/v1/hotels")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/:id/quote", h.quote)
}

func (h *HotelHandler) list(c echo.Context) error {
	hotels, err := h.hotels.List(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load hotels"))
	}
	return c.JSON(http.StatusOK, util.List("hotels", hotels))
}

func (h *HotelHandler) get(c echo.Context) error {
	hotel, err := h.hotels.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("hotel not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load hotel"))
	}
	return c.JSON(http.StatusOK, util.Data("hotel", hotel))
}

func (h *HotelHandler) quote(c echo.Context) error {
	in, err := parseStayQuoteInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	quote, err := h.hotels.Quote(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHotelNotFound):
			return c.JSON(http.StatusNotFound, util.Error("hotel not found"))
		case errors.Is(err, service.ErrInvalidStayDates), errors.Is(err, service.ErrInvalidGuests):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to price stay"))
		}
	}
	return c.JSON(http.StatusOK, util.Data("quote", quote))
}

func parseStayQuoteInput(c echo.Context) (service.StayQuoteInput, error) {
	var in service.StayQuoteInput

	from, err := parseStayDate(c.QueryParam("from"), "from")
	if err != nil {
		return in, err
	}
	to, err := parseStayDate(c.QueryParam("to"), "to")
	if err != nil {
		return in, err
	}
	in.From, in.To = from, to

	if raw := strings.TrimSpace(c.QueryParam("guests")); raw != "" {
		guests, err := strconv.Atoi(raw)
		if err != nil {
			return in, errors.New("guests must be a whole number")
		}
		if guests < 1 {
			return in, service.ErrInvalidGuests
		}
		in.Guests = guests
	}
	return in, nil
}

func parseStayDate(raw, field string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(stayDateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date formatted as YYYY-MM-DD", field)
	}
	return &t, nil
}
