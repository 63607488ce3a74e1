package image

import (
	"fmt"

	"weather-story/internal/domain/entity"
)

// BuildPrompt returns "<condition> weather in <city>, <country>, realistic photo"
func BuildPrompt(record entity.WeatherRecord, city string, country string) string {
	return fmt.Sprintf("%s weather in %s, %s, realistic photo", record.Condition, city, country)
}
