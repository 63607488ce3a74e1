package api

import "context"

// ImageGateway defines the interface for the text-to-image provider
type ImageGateway interface {
	// GenerateImage returns the raw bytes of an image rendered from prompt
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}
