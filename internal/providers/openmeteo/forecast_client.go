package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=55.75&longitude=37.62&current=temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m,uv_index,surface_pressure,visibility,is_day&hourly=temperature_2m,weather_code,precipitation_probability&daily=weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,uv_index_max&timezone=auto&forecast_days=10
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
	forecastDays    = 10
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	backoff    BackoffConfig
	circuit    *gobreaker.CircuitBreaker
}

func NewForecastClient() *ForecastClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo-forecast",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &ForecastClient{
		httpClient: &http.Client{},
		baseURL:    baseForecastURL,
		backoff: BackoffConfig{
			MaxRetries:      2,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit: cb,
	}
}

// GetForecast fetches current conditions plus hourly and daily forecasts for
// the given coordinates, in the location's local timezone.
func (c *ForecastClient) GetForecast(latitude, longitude float64) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	currentVars := []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"weather_code",
		"wind_speed_10m",
		"uv_index",
		"surface_pressure",
		"visibility",
		"is_day",
	}

	hourlyVars := []string{
		"temperature_2m",
		"weather_code",
		"precipitation_probability",
	}

	dailyVars := []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"uv_index_max",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	u.RawQuery = q.Encode()

	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, u.String(), nil)
	}

	resp, err := doRequestWithResilience(c.httpClient, c.backoff, c.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
