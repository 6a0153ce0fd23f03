package service

import (
	"context"
	"io"

	"github.com/njprem/Holiday_planner_BackEnd/internal/media"
)

// stubImageProcessor records what the image service hands it and returns a
// canned result.
type stubImageProcessor struct {
	output      []byte
	contentType string
	width       int
	height      int
	err         error

	calls           int
	received        []byte
	lastContentType string
	lastMax         int
}

func (s *stubImageProcessor) Process(ctx context.Context, upload media.Upload, maxDimension int) (*media.Result, error) {
	s.calls++
	s.lastContentType = upload.ContentType
	s.lastMax = maxDimension
	if upload.Reader != nil {
		s.received, _ = io.ReadAll(upload.Reader)
	}
	if s.err != nil {
		return nil, s.err
	}
	result := &media.Result{
		Bytes:       append([]byte(nil), s.output...),
		ContentType: s.contentType,
		Width:       s.width,
		Height:      s.height,
		Resized:     s.width > 0,
	}
	if result.ContentType == "" {
		result.ContentType = upload.ContentType
	}
	return result, nil
}
