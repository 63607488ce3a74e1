package api

import (
	"context"

	"weather-story/internal/domain/model/external"
)

// WeatherGateway defines the interface for the weather provider
type WeatherGateway interface {
	// GetCurrentWeather fetches current conditions and air quality for a free-text location query
	GetCurrentWeather(ctx context.Context, query string) (*external.CurrentWeatherResponse, error)
}
