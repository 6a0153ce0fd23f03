package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

const maxImageBytes = 20 << 20

type ImageClient struct {
	client     *openai.Client
	model      string
	httpClient *http.Client
}

var _ ports.ImageGenerator = (*ImageClient)(nil)

func NewImageClient(client *openai.Client, model string) *ImageClient {
	if strings.TrimSpace(model) == "" {
		model = DefaultImageModel
	}
	return &ImageClient{client: client, model: model, httpClient: http.DefaultClient}
}

// Generate asks for a base64 image; a URL-only answer is downloaded.
func (c *ImageClient) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          c.model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("image generation failed to return an image")
	}

	img := resp.Data[0]
	if img.B64JSON != "" {
		return base64.StdEncoding.DecodeString(img.B64JSON)
	}
	if img.URL != "" {
		return c.download(ctx, img.URL)
	}
	return nil, errors.New("image generation failed to return an image")
}

func (c *ImageClient) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download generated image: status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
}
