package narrative

import (
	"fmt"
	"strconv"

	"weather-story/internal/domain/entity"
)

const promptTemplate = `Write a descriptive, story-like weather update for %[1]s, %[2]s.

Create a single, evocative paragraph within %[3]d characters.
- Set the scene from the condition: '%[4]s'.
- Mention the temperature (%[5]s°C) and feels-like (%[6]s°C).
- Subtly mention air quality (AQI %[7]s).
- End with 3-4 relevant hashtags.

DATA:
City: %[1]s
Temp: %[5]s°C
Feels Like: %[6]s°C
Condition: %[4]s
AQI(US): %[7]s
`

// BuildPrompt renders the instruction sent to the LLM for record
func BuildPrompt(record entity.WeatherRecord) string {
	return fmt.Sprintf(promptTemplate,
		record.City,
		record.Country,
		entity.NarrativeLimit,
		record.Condition,
		formatCelsius(record.TempC),
		formatCelsius(record.FeelsLikeC),
		record.AQILabel(),
	)
}

func formatCelsius(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
