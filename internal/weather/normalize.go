package weather

import (
	"fmt"
	"math"
	"time"

	"loppa/internal/providers/openmeteo"
	"loppa/internal/types"
)

const (
	// maxHourlyPoints caps the hourly sequence at two days.
	maxHourlyPoints = 48

	// defaultVisibilityMeters substitutes a missing visibility reading.
	defaultVisibilityMeters = 10000
)

// mapForecastResponse normalizes a provider response into the canonical
// snapshot. Temperatures, feels-like, wind speed, UV index and pressure are
// rounded to the nearest integer; visibility is converted from meters to
// kilometers and rounded; hourly and daily timestamps are parsed in the
// location's local timezone so the instants they denote are exact.
func mapForecastResponse(location types.GeoLocation, resp *openmeteo.ForecastAPIResponse, loc *time.Location) (*types.WeatherSnapshot, error) {
	visibility := resp.Current.Visibility
	if visibility == 0 {
		visibility = defaultVisibilityMeters
	}

	snapshot := &types.WeatherSnapshot{
		Location: location,
		Current: types.CurrentConditions{
			Temperature: roundToInt(resp.Current.Temperature2M),
			FeelsLike:   roundToInt(resp.Current.ApparentTemp),
			Humidity:    roundToInt(resp.Current.RelativeHumidity2M),
			WindSpeed:   math.Round(resp.Current.WindSpeed10M),
			WeatherCode: resp.Current.WeatherCode,
			UVIndex:     roundToInt(resp.Current.UvIndex),
			Pressure:    roundToInt(resp.Current.SurfacePressure),
			Visibility:  math.Round(visibility / 1000),
			IsDay:       resp.Current.IsDay == 1,
		},
		Timezone: loc.String(),
	}

	hourlyCount := len(resp.Hourly.Time)
	if hourlyCount > maxHourlyPoints {
		hourlyCount = maxHourlyPoints
	}
	if len(resp.Hourly.Temperature2M) < hourlyCount || len(resp.Hourly.WeatherCode) < hourlyCount {
		return nil, fmt.Errorf("hourly arrays shorter than time axis")
	}

	snapshot.Hourly = make([]types.HourlyPoint, 0, hourlyCount)
	for i := 0; i < hourlyCount; i++ {
		pointTime, err := time.ParseInLocation("2006-01-02T15:04", resp.Hourly.Time[i], loc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse hourly time %q: %w", resp.Hourly.Time[i], err)
		}

		probability := 0
		if i < len(resp.Hourly.PrecipitationProbability) {
			probability = roundToInt(resp.Hourly.PrecipitationProbability[i])
		}

		snapshot.Hourly = append(snapshot.Hourly, types.HourlyPoint{
			Time:                     pointTime,
			Temperature:              roundToInt(resp.Hourly.Temperature2M[i]),
			WeatherCode:              resp.Hourly.WeatherCode[i],
			PrecipitationProbability: probability,
		})
	}

	dailyCount := len(resp.Daily.Time)
	if len(resp.Daily.WeatherCode) < dailyCount ||
		len(resp.Daily.Temperature2MMax) < dailyCount ||
		len(resp.Daily.Temperature2MMin) < dailyCount ||
		len(resp.Daily.PrecipitationSum) < dailyCount {
		return nil, fmt.Errorf("daily arrays shorter than time axis")
	}

	snapshot.Daily = make([]types.DailyPoint, 0, dailyCount)
	for i := 0; i < dailyCount; i++ {
		date, err := time.ParseInLocation("2006-01-02", resp.Daily.Time[i], loc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse daily date %q: %w", resp.Daily.Time[i], err)
		}

		uvMax := 0
		if i < len(resp.Daily.UvIndexMax) {
			uvMax = roundToInt(resp.Daily.UvIndexMax[i])
		}

		snapshot.Daily = append(snapshot.Daily, types.DailyPoint{
			Date:             date,
			TempMax:          roundToInt(resp.Daily.Temperature2MMax[i]),
			TempMin:          roundToInt(resp.Daily.Temperature2MMin[i]),
			WeatherCode:      resp.Daily.WeatherCode[i],
			PrecipitationSum: resp.Daily.PrecipitationSum[i],
			UVIndexMax:       uvMax,
		})
	}

	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func roundToInt(value float64) int {
	return int(math.Round(value))
}
