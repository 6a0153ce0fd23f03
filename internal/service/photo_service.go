package service

import (
	"context"
	"errors"
	"strings"

	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

var (
	ErrPhotoReferenceRequired = errors.New("photo reference is required")
	ErrPhotosUnavailable      = errors.New("maps API key is not configured")
)

const DefaultPhotoMaxWidth = 400

type PhotoService struct {
	resolver ports.PhotoResolver
}

func NewPhotoService(resolver ports.PhotoResolver) *PhotoService {
	return &PhotoService{resolver: resolver}
}

// PhotoURL resolves a place photo to a directly loadable image URL so clients
// can be redirected instead of proxying the bytes.
func (s *PhotoService) PhotoURL(ctx context.Context, placeID, photoReference string, maxWidth int) (string, error) {
	photoReference = strings.TrimSpace(photoReference)
	if photoReference == "" {
		return "", ErrPhotoReferenceRequired
	}
	if s.resolver == nil {
		return "", ErrPhotosUnavailable
	}
	if maxWidth <= 0 || maxWidth > 4800 {
		maxWidth = DefaultPhotoMaxWidth
	}
	return s.resolver.PhotoURL(ctx, strings.TrimSpace(placeID), photoReference, maxWidth)
}
