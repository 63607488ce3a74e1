package image

import (
	"context"

	"weather-story/internal/domain/entity"
)

type UseCase interface {
	// Generate renders prompt and stores the result as the current image
	Generate(ctx context.Context, prompt string) (entity.ImageAsset, error)

	// Load returns the bytes of the current image
	Load() ([]byte, error)
}
