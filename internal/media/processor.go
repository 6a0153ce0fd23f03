package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxDimension = 1600
	defaultJPEGQuality  = 85
)

type Upload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type Result struct {
	Bytes       []byte
	ContentType string
	Width       int
	Height      int
	Resized     bool
}

type Processor interface {
	Process(ctx context.Context, upload Upload, maxDimension int) (*Result, error)
}

// ImagingProcessor fits images within a bounding square. PNG stays PNG; every
// other format is re-encoded as JPEG because webp cannot be written.
type ImagingProcessor struct {
	maxDimension int
	jpegQuality  int
}

func NewImagingProcessor(maxDimension int) *ImagingProcessor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &ImagingProcessor{maxDimension: maxDimension, jpegQuality: defaultJPEGQuality}
}

func (p *ImagingProcessor) Process(ctx context.Context, upload Upload, maxDimension int) (*Result, error) {
	if upload.Reader == nil {
		return nil, fmt.Errorf("media: empty reader")
	}
	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("media: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("media: empty image data")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contentType := normalizeContentType(upload.ContentType, upload.FileName, data)

	width, height, err := decodeDimensions(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("media: decode dimensions: %w", err)
	}
	targetMax := maxDimension
	if targetMax <= 0 {
		targetMax = p.maxDimension
	}
	if width <= targetMax && height <= targetMax && contentType != "image/webp" {
		return &Result{Bytes: data, ContentType: contentType, Width: width, Height: height}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("media: decode image: %w", err)
	}
	resized := false
	if width > targetMax || height > targetMax {
		img = imaging.Fit(img, targetMax, targetMax, imaging.Lanczos)
		resized = true
	}

	format, outType := imaging.JPEG, "image/jpeg"
	if contentType == "image/png" {
		format, outType = imaging.PNG, "image/png"
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(p.jpegQuality)); err != nil {
		return nil, fmt.Errorf("media: encode image: %w", err)
	}

	bounds := img.Bounds()
	return &Result{
		Bytes:       buf.Bytes(),
		ContentType: outType,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Resized:     resized,
	}, nil
}

func decodeDimensions(r io.Reader) (int, int, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, nil
}

// Extension maps a content type to the file extension used for object keys.
func Extension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

func normalizeContentType(value, fileName string, data []byte) string {
	ct := strings.ToLower(strings.TrimSpace(value))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct != "" && ct != "application/octet-stream" {
		if ct == "image/jpg" {
			return "image/jpeg"
		}
		return ct
	}
	ext := strings.ToLower(strings.TrimSpace(filepath.Ext(fileName)))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	}
	if ext != "" {
		if mt := mime.TypeByExtension(ext); mt != "" {
			return strings.ToLower(mt)
		}
	}
	if len(data) > 0 {
		if sniffed := http.DetectContentType(data); strings.HasPrefix(sniffed, "image/") {
			return sniffed
		}
	}
	return "image/jpeg"
}
