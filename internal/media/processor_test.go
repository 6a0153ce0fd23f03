package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestImagingProcessorKeepsSmallImages(t *testing.T) {
	data := pngBytes(t, 40, 20)
	p := NewImagingProcessor(100)

	res, err := p.Process(context.Background(), Upload{Reader: bytes.NewReader(data), ContentType: "image/png"}, 0)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.Resized {
		t.Fatalf("expected image to be left untouched")
	}
	if !bytes.Equal(res.Bytes, data) {
		t.Fatalf("expected original bytes to be returned")
	}
	if res.Width != 40 || res.Height != 20 {
		t.Fatalf("expected 40x20, got %dx%d", res.Width, res.Height)
	}
}

func TestImagingProcessorFitsLargeImages(t *testing.T) {
	data := pngBytes(t, 200, 100)
	p := NewImagingProcessor(1000)

	res, err := p.Process(context.Background(), Upload{Reader: bytes.NewReader(data), FileName: "wide.png"}, 50)
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !res.Resized {
		t.Fatalf("expected image to be resized")
	}
	if res.Width != 50 || res.Height != 25 {
		t.Fatalf("expected 50x25, got %dx%d", res.Width, res.Height)
	}
	if res.ContentType != "image/png" {
		t.Fatalf("expected png output, got %s", res.ContentType)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(res.Bytes)); err != nil {
		t.Fatalf("expected decodable output: %v", err)
	}
}

func TestImagingProcessorRejectsGarbage(t *testing.T) {
	p := NewImagingProcessor(0)
	if _, err := p.Process(context.Background(), Upload{Reader: bytes.NewReader([]byte("not an image"))}, 0); err == nil {
		t.Fatalf("expected error for non-image data")
	}
	if _, err := p.Process(context.Background(), Upload{}, 0); err == nil {
		t.Fatalf("expected error for missing reader")
	}
}

func TestNormalizeContentType(t *testing.T) {
	cases := []struct {
		value, file, want string
	}{
		{"image/jpg", "", "image/jpeg"},
		{"IMAGE/PNG; charset=binary", "", "image/png"},
		{"", "photo.webp", "image/webp"},
		{"application/octet-stream", "photo.JPEG", "image/jpeg"},
		{"", "", "image/jpeg"},
	}
	for _, tc := range cases {
		if got := normalizeContentType(tc.value, tc.file, nil); got != tc.want {
			t.Fatalf("normalizeContentType(%q, %q) = %q, want %q", tc.value, tc.file, got, tc.want)
		}
	}
}
