package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/service"
	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

const contextSessionKey = "planner.session"

// RequireSession resolves the bearer token to a live browsing session.
func RequireSession(sessions *service.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, util.Error("missing or invalid authorization header"))
			}
			session, err := sessions.Authenticate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
			}
			c.Set(contextSessionKey, session)
			return next(c)
		}
	}
}

func CurrentSession(c echo.Context) (*domain.Session, bool) {
	session, ok := c.Get(contextSessionKey).(*domain.Session)
	return session, ok && session != nil
}

func bearerToken(c echo.Context) (string, bool) {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
