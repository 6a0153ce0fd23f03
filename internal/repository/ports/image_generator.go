package ports

import "context"

type ImageGenerator interface {
	// Generate returns the encoded image bytes for prompt.
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
