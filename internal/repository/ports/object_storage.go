package ports

import (
	"context"
	"io"
)

// ObjectStorage keeps generated images and hands back a URL clients can load.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error)
}
