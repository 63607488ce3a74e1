package session

import (
	"context"

	"weather-story/internal/domain/entity"
	"weather-story/internal/domain/model"
)

// GenerationGateway holds generations between the "generate" and "post" actions. Entries are
// transient and disappear once their ExpiresAt has passed.
type GenerationGateway interface {
	// Save stores gen under gen.ID, replacing any previous value
	Save(ctx context.Context, gen entity.Generation) error

	// FindByID returns nil, nil when the generation is absent or expired
	FindByID(ctx context.Context, id string) (*entity.Generation, error)

	// PurgeExpired drops expired entries and returns how many were removed
	PurgeExpired(ctx context.Context) (int, error)

	Health(ctx context.Context) model.ComponentHealthStatus
}
