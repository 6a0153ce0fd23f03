package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"google.golang.org/api/googleapi"

	"github.com/njprem/Holiday_planner_BackEnd/internal/service"
	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

type PhotoHandler struct {
	photos *service.PhotoService
}

func RegisterPhotos(e *echo.Echo, photos *service.PhotoService) {
	h := &PhotoHandler{photos: photos}
	e.GET("/api/v1/photos", h.photo)
}

// photo redirects to the place photo so image bytes are not proxied.
func (h *PhotoHandler) photo(c echo.Context) error {
	maxWidth := service.DefaultPhotoMaxWidth
	if raw := strings.TrimSpace(c.QueryParam("max_width")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return c.JSON(http.StatusBadRequest, util.Error("max_width must be a positive number"))
		}
		maxWidth = v
	}

	url, err := h.photos.PhotoURL(c.Request().Context(), c.QueryParam("place_id"), c.QueryParam("photo_reference"), maxWidth)
	if err != nil {
		var apiErr *googleapi.Error
		switch {
		case errors.Is(err, service.ErrPhotoReferenceRequired):
			return c.JSON(http.StatusBadRequest, util.Error("Photo reference is required"))
		case errors.Is(err, service.ErrPhotosUnavailable):
			return c.JSON(http.StatusInternalServerError, util.Error("Google Maps API key is not configured"))
		case errors.As(err, &apiErr) && apiErr.Code >= 400:
			return c.JSON(apiErr.Code, util.Error(apiErr.Message))
		default:
			log.Printf("photos: resolve %q: %v", c.QueryParam("photo_reference"), err)
			return c.JSON(http.StatusInternalServerError, util.Error("Failed to fetch image"))
		}
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")
	return c.Redirect(http.StatusTemporaryRedirect, url)
}
