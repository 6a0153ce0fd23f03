package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/media"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

var (
	ErrImageValidation  = errors.New("image request validation failed")
	ErrImageUnavailable = errors.New("image generation unavailable")
	ErrImageGeneration  = errors.New("image generation failed")
)

type ImageServiceConfig struct {
	Bucket         string
	MaxDimension   int
	ImageProcessor media.Processor
}

type ImageService struct {
	generator ports.ImageGenerator
	storage   ports.ObjectStorage
	cfg       ImageServiceConfig
}

func NewImageService(generator ports.ImageGenerator, storage ports.ObjectStorage, cfg ImageServiceConfig) *ImageService {
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = media.DefaultMaxDimension
	}
	return &ImageService{generator: generator, storage: storage, cfg: cfg}
}

// ImagePrompt builds the photorealistic prompt sent to the image model.
func ImagePrompt(req domain.ImageRequest) string {
	return fmt.Sprintf(
		"A photorealistic, high-quality, professional photograph of %s in %s. "+
			"The scene should capture the essence of this description: %q. "+
			"Specific focus on: %s. Do not create an artistic rendering or illustration; "+
			"it must look like a real photo from a travel magazine.",
		req.Name, req.Location, req.Description, req.ImagePrompt)
}

// Generate renders an image for a suggestion and stores it. Without object
// storage the image is returned inline as a data URL.
func (s *ImageService) Generate(ctx context.Context, req domain.ImageRequest) (*domain.GeneratedImage, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Location = strings.TrimSpace(req.Location)
	req.Description = strings.TrimSpace(req.Description)
	req.ImagePrompt = strings.TrimSpace(req.ImagePrompt)
	if req.Name == "" || req.Location == "" {
		return nil, fmt.Errorf("%w: name and location are required", ErrImageValidation)
	}
	if req.ImagePrompt == "" {
		req.ImagePrompt = req.Name
	}
	if s.generator == nil {
		return nil, ErrImageUnavailable
	}

	raw, err := s.generator.Generate(ctx, ImagePrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageGeneration, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrImageGeneration)
	}

	prepared, err := prepareImageForUpload(ctx, s.cfg.ImageProcessor, media.Upload{
		Reader:      bytes.NewReader(raw),
		Size:        int64(len(raw)),
		ContentType: http.DetectContentType(raw),
	}, s.cfg.MaxDimension)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageGeneration, err)
	}

	if s.storage == nil || s.cfg.Bucket == "" {
		data, err := io.ReadAll(prepared.reader)
		if err != nil {
			return nil, err
		}
		return &domain.GeneratedImage{
			URL:         "data:" + prepared.contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
			ContentType: prepared.contentType,
			Width:       prepared.width,
			Height:      prepared.height,
		}, nil
	}

	objectName := fmt.Sprintf("generated/%s%s", uuid.NewString(), media.Extension(prepared.contentType))
	url, err := s.storage.Upload(ctx, s.cfg.Bucket, objectName, prepared.contentType, prepared.reader, prepared.size)
	if err != nil {
		return nil, err
	}
	return &domain.GeneratedImage{
		URL:         url,
		ContentType: prepared.contentType,
		Width:       prepared.width,
		Height:      prepared.height,
	}, nil
}
