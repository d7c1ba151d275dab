package providers

import (
	"context"
)

// Config represents the configuration for a text-generation call
type Config struct {
	Model       string
	Temperature float64
	Prompt      string
}

// TextGenerator defines the interface for a structured-text model provider
type TextGenerator interface {
	GenerateText(ctx context.Context, config Config) (string, error)
}

// ImageGenerator defines the interface for an image-rendering model provider
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}
