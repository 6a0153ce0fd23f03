package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

// NewRouter builds the echo instance shared by every route group. Credentials
// are only allowed when no wildcard origin is configured.
func NewRouter(allowOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = jsonErrorHandler

	allowCredentials := true
	for _, origin := range allowOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	e.Use(middleware.RequestID())
	registerLogging(e)

	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderAuthorization,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderOrigin,
		},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, echo.HeaderRetryAfter, echo.HeaderXRequestID},
		AllowCredentials: allowCredentials,
	}))

	started := time.Now()
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, util.Envelope{
			"ok":     true,
			"uptime": time.Since(started).Round(time.Second).String(),
		})
	})
	return e
}

// jsonErrorHandler renders router-level errors (unknown route, body too large,
// recovered panics) in the same envelope handlers use.
func jsonErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	} else {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, util.Error(message))
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
