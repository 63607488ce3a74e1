package weather

import (
	"context"

	"weather-story/internal/domain/entity"
)

type UseCase interface {
	// FetchCurrent returns the current conditions for city, with air quality when the provider has it
	FetchCurrent(ctx context.Context, city string) (entity.WeatherRecord, error)
}
