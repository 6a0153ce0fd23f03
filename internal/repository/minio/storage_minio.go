package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// Storage uploads objects and returns the URL they are served from. When a
// public base URL is configured it replaces the MinIO endpoint.
type Storage struct {
	client    *minio.Client
	publicURL string
}

var _ ports.ObjectStorage = (*Storage)(nil)

func NewStorage(client *minio.Client, publicURL string) *Storage {
	return &Storage{client: client, publicURL: strings.TrimRight(strings.TrimSpace(publicURL), "/")}
}

// EnsureBucket creates bucket if it does not exist yet.
func (s *Storage) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}

func (s *Storage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s/%s: %w", bucket, objectName, err)
	}
	return s.objectURL(bucket, objectName), nil
}

func (s *Storage) objectURL(bucket, objectName string) string {
	path := "/" + bucket + "/" + objectName
	if s.publicURL != "" {
		return s.publicURL + path
	}
	u := url.URL{Scheme: "http", Host: s.client.EndpointURL().Host, Path: path}
	if s.client.EndpointURL().Scheme != "" {
		u.Scheme = s.client.EndpointURL().Scheme
	}
	return u.String()
}
