package types

import (
	"fmt"
	"time"
)

// CurrentConditions holds the observed conditions at fetch time. All fields
// are normalized: temperatures, wind, UV and pressure are rounded, visibility
// is in kilometers. A value is never partially updated; the whole struct is
// rebuilt from the provider response on every fetch.
type CurrentConditions struct {
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	WeatherCode int     `json:"weatherCode"`
	UVIndex     int     `json:"uvIndex"`
	Pressure    int     `json:"pressure"`
	Visibility  float64 `json:"visibility"`
	IsDay       bool    `json:"isDay"`
}

// HourlyPoint is one hour of forecast. Points form a chronological sequence,
// one per hour.
type HourlyPoint struct {
	Time                     time.Time `json:"time"`
	Temperature              int       `json:"temperature"`
	WeatherCode              int       `json:"weatherCode"`
	PrecipitationProbability int       `json:"precipitationProbability"`
}

// DailyPoint is one calendar day of forecast; index 0 is today in the
// location's local timezone.
type DailyPoint struct {
	Date             time.Time `json:"date"`
	TempMax          int       `json:"tempMax"`
	TempMin          int       `json:"tempMin"`
	WeatherCode      int       `json:"weatherCode"`
	PrecipitationSum float64   `json:"precipitationSum"`
	UVIndexMax       int       `json:"uvIndexMax"`
}

// WeatherSnapshot is the canonical fetched-and-normalized weather result for
// a location at a point in time. It is the unit stored in the cache.
type WeatherSnapshot struct {
	Location GeoLocation       `json:"location"`
	Current  CurrentConditions `json:"current"`
	Hourly   []HourlyPoint     `json:"hourly"`
	Daily    []DailyPoint      `json:"daily"`
	Timezone string            `json:"timezone"`
}

// Validate reports whether the snapshot satisfies the structural invariants
// a consumer may rely on: non-empty hourly and daily sequences and a
// timezone identifier.
func (s *WeatherSnapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("snapshot is nil")
	}
	if len(s.Hourly) == 0 {
		return fmt.Errorf("snapshot has no hourly points")
	}
	if len(s.Daily) == 0 {
		return fmt.Errorf("snapshot has no daily points")
	}
	if s.Timezone == "" {
		return fmt.Errorf("snapshot has no timezone")
	}
	return nil
}
