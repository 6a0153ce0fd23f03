package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/service"
	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

type ContactHandler struct {
	contact *service.ContactService
}

func RegisterContact(e *echo.Echo, contact *service.ContactService, limiter *RateLimiter) {
	h := &ContactHandler{contact: contact}
	e.POST("/api/v1/contact", h.send, limiter.Middleware())
}

func (h *ContactHandler) send(c echo.Context) error {
	var msg domain.ContactMessage
	if err := c.Bind(&msg); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if err := h.contact.Send(c.Request().Context(), msg); err != nil {
		switch {
		case errors.Is(err, service.ErrContactValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrContactUnavailable):
			return c.JSON(http.StatusServiceUnavailable, util.Error("contact form is not available right now"))
		default:
			log.Printf("contact: send: %v", err)
			return c.JSON(http.StatusBadGateway, util.Error("could not send your message"))
		}
	}
	return c.JSON(http.StatusAccepted, util.Message("Thanks for reaching out. We'll get back to you soon."))
}
