//go:build integration

package openmeteo

import (
	"encoding/json"
	"testing"
)

func TestForecastClient_GetForecast_Integration(t *testing.T) {
	// Test coordinates: central Moscow
	lat := 55.7558
	lon := 37.6173

	client := NewForecastClient()

	t.Logf("Making API call to OpenMeteo Forecast API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetForecast(lat, lon)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp == nil {
		t.Fatal("Response is nil")
	}

	t.Logf("Response metadata:")
	t.Logf("  Latitude: %f", resp.Latitude)
	t.Logf("  Longitude: %f", resp.Longitude)
	t.Logf("  Timezone: %s", resp.Timezone)
	t.Logf("  Generation time: %.2f ms", resp.GenerationtimeMs)

	if resp.Latitude < lat-1 || resp.Latitude > lat+1 {
		t.Errorf("Latitude mismatch: expected ~%f, got %f", lat, resp.Latitude)
	}

	if resp.Longitude < lon-1 || resp.Longitude > lon+1 {
		t.Errorf("Longitude mismatch: expected ~%f, got %f", lon, resp.Longitude)
	}

	if resp.Timezone == "" {
		t.Error("No timezone in response")
	}

	if len(resp.Hourly.Time) == 0 {
		t.Fatal("No hourly time data")
	}

	if len(resp.Hourly.Temperature2M) != len(resp.Hourly.Time) {
		t.Errorf("Hourly temperature count %d does not match time axis %d",
			len(resp.Hourly.Temperature2M), len(resp.Hourly.Time))
	}

	if len(resp.Daily.Time) != forecastDays {
		t.Errorf("Daily day count = %d, expected %d", len(resp.Daily.Time), forecastDays)
	}

	t.Logf("Received %d hourly and %d daily points", len(resp.Hourly.Time), len(resp.Daily.Time))
}
