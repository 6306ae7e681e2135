package openmeteo

// ForecastAPIResponse is the forecast endpoint payload. Hourly and daily
// blocks are nested arrays aligned by index per the requested variable lists.
type ForecastAPIResponse struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	GenerationtimeMs     float64 `json:"generationtime_ms"`
	UtcOffsetSeconds     int     `json:"utc_offset_seconds"`
	Timezone             string  `json:"timezone"`
	TimezoneAbbreviation string  `json:"timezone_abbreviation"`
	Elevation            float64 `json:"elevation"`
	Current              struct {
		Time               string  `json:"time"`
		Temperature2M      float64 `json:"temperature_2m"`
		RelativeHumidity2M float64 `json:"relative_humidity_2m"`
		ApparentTemp       float64 `json:"apparent_temperature"`
		WeatherCode        int     `json:"weather_code"`
		WindSpeed10M       float64 `json:"wind_speed_10m"`
		UvIndex            float64 `json:"uv_index"`
		SurfacePressure    float64 `json:"surface_pressure"`
		Visibility         float64 `json:"visibility"`
		IsDay              int     `json:"is_day"`
	} `json:"current"`
	Hourly struct {
		Time                     []string  `json:"time"`
		Temperature2M            []float64 `json:"temperature_2m"`
		WeatherCode              []int     `json:"weather_code"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
	} `json:"hourly"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		Temperature2MMax []float64 `json:"temperature_2m_max"`
		Temperature2MMin []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		UvIndexMax       []float64 `json:"uv_index_max"`
	} `json:"daily"`
}

// GeocodingAPIResponse is the geocoding search endpoint payload.
type GeocodingAPIResponse struct {
	Results []GeocodingResult `json:"results"`
}

// GeocodingResult is one ranked candidate location for a search query.
type GeocodingResult struct {
	Id        int     `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
}
