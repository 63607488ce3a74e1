package narrative

import (
	"context"

	"weather-story/internal/domain/entity"
)

type UseCase interface {
	// Generate asks the LLM for a caption describing record, capped at entity.NarrativeLimit characters
	Generate(ctx context.Context, record entity.WeatherRecord) (entity.NarrativeText, error)
}
