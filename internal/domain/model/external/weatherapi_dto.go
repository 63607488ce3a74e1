package external

// CurrentWeatherResponse represents the response from the WeatherAPI current conditions endpoint.
// Location and Current are pointers so a payload missing them can be told apart from zero values.
type CurrentWeatherResponse struct {
	Location *WeatherLocationDTO `json:"location"`
	Current  *CurrentDTO         `json:"current"`
}

// WeatherLocationDTO represents the resolved location
type WeatherLocationDTO struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	LocalTime string `json:"localtime"`
}

// CurrentDTO represents the current conditions
type CurrentDTO struct {
	TempC      float64        `json:"temp_c"`
	FeelsLikeC float64        `json:"feelslike_c"`
	Condition  ConditionDTO   `json:"condition"`
	WindKph    float64        `json:"wind_kph"`
	Humidity   int            `json:"humidity"`
	UV         float64        `json:"uv"`
	AirQuality *AirQualityDTO `json:"air_quality"`
}

// ConditionDTO represents the condition description
type ConditionDTO struct {
	Text string `json:"text"`
}

// AirQualityDTO represents the optional air quality block. Each field may be absent.
type AirQualityDTO struct {
	USEPAIndex *int     `json:"us-epa-index"`
	PM25       *float64 `json:"pm2_5"`
	PM10       *float64 `json:"pm10"`
}

// WeatherAPIErrorResponse represents error responses from WeatherAPI
type WeatherAPIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
