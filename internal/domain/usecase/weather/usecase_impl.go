package weather

import (
	"context"

	"go.uber.org/zap"

	"weather-story/internal/domain/entity"
	"weather-story/internal/domain/gateway/api"
	"weather-story/internal/domain/model"
	"weather-story/internal/domain/model/external"
	"weather-story/pkg/log"
	"weather-story/pkg/msg"
)

type weatherUseCase struct {
	country    string
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(country string, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		country:    country,
		apiGateway: apiGateway,
	}
}

// FetchCurrent queries "<city>,<country>"; every failure is a weather stage error
func (uc *weatherUseCase) FetchCurrent(ctx context.Context, city string) (entity.WeatherRecord, error) {
	log.Debug(msg.GetMessage("story.weather.start", city), zap.String("city", city))

	response, err := uc.apiGateway.GetCurrentWeather(ctx, city+","+uc.country)
	if err != nil {
		return entity.WeatherRecord{}, model.NewStageError(model.StageWeather, err)
	}

	record := toWeatherRecord(response)
	log.Info(msg.GetMessage("story.weather.end", record.City, record.Condition, record.TempC),
		zap.String("city", record.City),
		zap.String("aqi", record.AQILabel()))
	return record, nil
}

// toWeatherRecord flattens the provider payload. Absent air quality stays nil.
func toWeatherRecord(response *external.CurrentWeatherResponse) entity.WeatherRecord {
	location := response.Location
	current := response.Current

	record := entity.WeatherRecord{
		City:       location.Name,
		Region:     location.Region,
		Country:    location.Country,
		LocalTime:  location.LocalTime,
		TempC:      current.TempC,
		FeelsLikeC: current.FeelsLikeC,
		Condition:  current.Condition.Text,
		WindKph:    current.WindKph,
		Humidity:   current.Humidity,
		UV:         current.UV,
	}

	if aq := current.AirQuality; aq != nil {
		record.AQIUS = aq.USEPAIndex
		record.PM25 = aq.PM25
		record.PM10 = aq.PM10
	}
	return record
}
