package places

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	placesapi "google.golang.org/api/places/v1"

	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

// PhotoClient resolves place photos through the Places API (New).
type PhotoClient struct {
	svc *placesapi.Service
}

var _ ports.PhotoResolver = (*PhotoClient)(nil)

func NewPhotoClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*PhotoClient, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := placesapi.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &PhotoClient{svc: svc}, nil
}

// PhotoURL returns a short-lived image URL instead of the bytes. Errors from
// the API are returned as *googleapi.Error so callers can forward the status.
func (c *PhotoClient) PhotoURL(ctx context.Context, placeID, photoReference string, maxWidth int) (string, error) {
	name, err := photoMediaName(placeID, photoReference)
	if err != nil {
		return "", err
	}
	media, err := c.svc.Places.Photos.GetMedia(name).
		MaxWidthPx(int64(maxWidth)).
		SkipHttpRedirect(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}
	if media.PhotoUri == "" {
		return "", errors.New("photo media has no uri")
	}
	return media.PhotoUri, nil
}

// photoMediaName accepts either a full photo resource name or a place id
// plus photo reference.
func photoMediaName(placeID, photoReference string) (string, error) {
	ref := strings.Trim(strings.TrimSpace(photoReference), "/")
	if strings.HasPrefix(ref, "places/") {
		return strings.TrimSuffix(ref, "/media") + "/media", nil
	}
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return "", fmt.Errorf("place id is required for photo reference %q", photoReference)
	}
	return fmt.Sprintf("places/%s/photos/%s/media", placeID, ref), nil
}
