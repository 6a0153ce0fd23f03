package ports

import "context"

type PhotoResolver interface {
	PhotoURL(ctx context.Context, placeID, photoReference string, maxWidth int) (string, error)
}
