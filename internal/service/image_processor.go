package service

import (
	"bytes"
	"context"
	"io"

	"github.com/njprem/Holiday_planner_BackEnd/internal/media"
)

type preparedImage struct {
	reader      io.Reader
	size        int64
	contentType string
	width       int
	height      int
}

func prepareImageForUpload(ctx context.Context, processor media.Processor, upload media.Upload, maxDimension int) (*preparedImage, error) {
	if processor == nil {
		return &preparedImage{reader: upload.Reader, size: upload.Size, contentType: upload.ContentType}, nil
	}
	result, err := processor.Process(ctx, upload, maxDimension)
	if err != nil {
		return nil, err
	}
	return &preparedImage{
		reader:      bytes.NewReader(result.Bytes),
		size:        int64(len(result.Bytes)),
		contentType: result.ContentType,
		width:       result.Width,
		height:      result.Height,
	}, nil
}
