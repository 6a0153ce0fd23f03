package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

type stubImageGenerator struct {
	data       []byte
	err        error
	lastPrompt string
}

func (g *stubImageGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	g.lastPrompt = prompt
	return g.data, g.err
}

type memoryObjectStorage struct {
	bucket      string
	objectName  string
	contentType string
	data        []byte
}

func (s *memoryObjectStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.bucket, s.objectName, s.contentType, s.data = bucket, objectName, contentType, data
	return "https://cdn.example.com/" + bucket + "/" + objectName, nil
}

var pngHeader = []byte("\x89PNG\r\n\x1a\nrest-of-image")

func colosseumImageRequest() domain.ImageRequest {
	return domain.ImageRequest{
		Name:        "Colosseum",
		Location:    "Rome",
		Description: "Ancient amphitheatre",
		ImagePrompt: "arches at golden hour",
	}
}

func TestImageService_GenerateUploadsProcessedImage(t *testing.T) {
	generator := &stubImageGenerator{data: pngHeader}
	storage := &memoryObjectStorage{}
	processor := &stubImageProcessor{output: []byte("processed"), contentType: "image/jpeg", width: 800, height: 600}
	svc := NewImageService(generator, storage, ImageServiceConfig{Bucket: "planner-images", MaxDimension: 800, ImageProcessor: processor})

	img, err := svc.Generate(context.Background(), colosseumImageRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.Contains(generator.lastPrompt, "Colosseum in Rome") || !strings.Contains(generator.lastPrompt, "arches at golden hour") {
		t.Fatalf("unexpected prompt %q", generator.lastPrompt)
	}
	if processor.calls != 1 || processor.lastMax != 800 || processor.lastContentType != "image/png" {
		t.Fatalf("unexpected processor call: calls=%d max=%d ct=%s", processor.calls, processor.lastMax, processor.lastContentType)
	}
	if !bytes.Equal(processor.received, pngHeader) {
		t.Fatalf("expected generated bytes to reach the processor")
	}
	if storage.bucket != "planner-images" || !strings.HasPrefix(storage.objectName, "generated/") || !strings.HasSuffix(storage.objectName, ".jpg") {
		t.Fatalf("unexpected object %s/%s", storage.bucket, storage.objectName)
	}
	if !bytes.Equal(storage.data, []byte("processed")) {
		t.Fatalf("expected processed bytes to be uploaded")
	}
	if img.URL != "https://cdn.example.com/planner-images/"+storage.objectName || img.Width != 800 {
		t.Fatalf("unexpected image %+v", img)
	}
}

func TestImageService_GenerateInlineWithoutStorage(t *testing.T) {
	svc := NewImageService(&stubImageGenerator{data: pngHeader}, nil, ImageServiceConfig{})

	img, err := svc.Generate(context.Background(), colosseumImageRequest())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.HasPrefix(img.URL, "data:image/png;base64,") {
		t.Fatalf("expected data url, got %.40s", img.URL)
	}
}

func TestImageService_GenerateErrors(t *testing.T) {
	ctx := context.Background()

	req := colosseumImageRequest()
	req.Location = " "
	if _, err := NewImageService(&stubImageGenerator{}, nil, ImageServiceConfig{}).Generate(ctx, req); !errors.Is(err, ErrImageValidation) {
		t.Fatalf("expected ErrImageValidation, got %v", err)
	}
	if _, err := NewImageService(nil, nil, ImageServiceConfig{}).Generate(ctx, colosseumImageRequest()); !errors.Is(err, ErrImageUnavailable) {
		t.Fatalf("expected ErrImageUnavailable, got %v", err)
	}
	failing := &stubImageGenerator{err: errors.New("quota exceeded")}
	if _, err := NewImageService(failing, nil, ImageServiceConfig{}).Generate(ctx, colosseumImageRequest()); !errors.Is(err, ErrImageGeneration) {
		t.Fatalf("expected ErrImageGeneration, got %v", err)
	}
}
