package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/service"
	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

type SessionHandler struct {
	sessions *service.SessionService
}

func RegisterSessions(e *echo.Echo, sessions *service.SessionService) {
	h := &SessionHandler{sessions: sessions}

	e.POST("/api/v1/sessions", h.start)
	e.POST("/api/v1/auth/google", h.googleSignIn)

	protected := e.Group("/api/v1/sessions", RequireSession(sessions))
	protected.GET("/current", h.current)
	protected.DELETE("/current", h.end)
}

func (h *SessionHandler) start(c echo.Context) error {
	token, session, err := h.sessions.Start(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not start session"))
	}
	return c.JSON(http.StatusCreated, sessionResponse(token, session))
}

func (h *SessionHandler) googleSignIn(c echo.Context) error {
	var req struct {
		IDToken string `json:"id_token"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.IDToken) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("id_token is required"))
	}

	token, session, err := h.sessions.SignInWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIdentityNotEnabled):
			return c.JSON(http.StatusServiceUnavailable, util.Error("google sign-in is not configured"))
		case errors.Is(err, service.ErrIdentityRejected):
			return c.JSON(http.StatusUnauthorized, util.Error("google sign-in failed"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not start session"))
		}
	}
	return c.JSON(http.StatusOK, sessionResponse(token, session))
}

func (h *SessionHandler) current(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}
	return c.JSON(http.StatusOK, util.Data("session", session))
}

func (h *SessionHandler) end(c echo.Context) error {
	session, ok := CurrentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("session required"))
	}
	h.sessions.End(c.Request().Context(), session.ID)
	return c.JSON(http.StatusOK, util.Message("session ended"))
}

func sessionResponse(token string, session *domain.Session) util.Envelope {
	return util.Envelope{
		"token":      token,
		"token_type": "Bearer",
		"expires_at": session.ExpiresAt,
		"session":    session,
	}
}
