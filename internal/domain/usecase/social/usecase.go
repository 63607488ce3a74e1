package social

import (
	"context"

	"weather-story/internal/domain/entity"
)

type UseCase interface {
	// Missing lists the names of the unset credentials; empty means posting can be attempted
	Missing() []string

	// Publish uploads image when given, posts text and resolves the post URL
	Publish(ctx context.Context, text string, image *entity.ImageAsset) (*entity.PostResult, error)
}
