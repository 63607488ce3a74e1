package api

import (
	"context"

	"weather-story/internal/domain/model/external"
	"weather-story/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface against WeatherAPI
type weatherGatewayImpl struct {
	apiKey     string
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	return &weatherGatewayImpl{
		apiKey:     apiKey,
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetCurrentWeather calls /current.json with air quality enabled
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, query string) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/current.json").
		WithQueryParams(map[string]string{
			"key": w.apiKey,
			"q":   query,
			"aqi": "yes",
		}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.WeatherAPIErrorResponse{}).
		Execute()

	if err != nil {
		var message string
		if errResp != nil {
			message = errResp.(*external.WeatherAPIErrorResponse).Error.Message
		}
		return nil, classify(err, message)
	}

	response := successResp.(*external.CurrentWeatherResponse)
	if response.Location == nil || response.Current == nil {
		return nil, malformed("missing location or current block")
	}
	return response, nil
}
