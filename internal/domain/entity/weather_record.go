package entity

import "strconv"

// WeatherRecord is the flat view of the provider's current conditions for one city. Air quality
// values are optional: nil means the provider omitted them, which is not the same as zero.
type WeatherRecord struct {
	City       string   `json:"city"`
	Region     string   `json:"region"`
	Country    string   `json:"country"`
	LocalTime  string   `json:"localTime"`
	TempC      float64  `json:"tempC"`
	FeelsLikeC float64  `json:"feelsLikeC"`
	Condition  string   `json:"condition"`
	WindKph    float64  `json:"windKph"`
	Humidity   int      `json:"humidity"`
	UV         float64  `json:"uv"`
	AQIUS      *int     `json:"aqiUs"`
	PM25       *float64 `json:"pm2_5"`
	PM10       *float64 `json:"pm10"`
}

// NotAvailable is shown in place of absent optional values.
const NotAvailable = "N/A"

// AQILabel renders the US-EPA index, or N/A when the provider omitted it.
func (r WeatherRecord) AQILabel() string {
	if r.AQIUS == nil {
		return NotAvailable
	}
	return strconv.Itoa(*r.AQIUS)
}

// PM25Label renders PM2.5, or N/A.
func (r WeatherRecord) PM25Label() string {
	return floatLabel(r.PM25)
}

// PM10Label renders PM10, or N/A.
func (r WeatherRecord) PM10Label() string {
	return floatLabel(r.PM10)
}

func floatLabel(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
