//go:build integration

package openstreetmap

import (
	"encoding/json"
	"testing"
)

func TestClient_Reverse_Integration(t *testing.T) {
	// Test coordinates: central Moscow
	lat := 55.7558
	lon := 37.6173

	client := NewClient()

	t.Logf("Making API call to Nominatim reverse geocoding...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Reverse(lat, lon, "ru")
	if err != nil {
		t.Fatalf("Failed to reverse geocode: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.PlaceName() == "" {
		t.Error("No usable place name in response")
	}
	if resp.Address.Country == "" {
		t.Error("No country in response")
	}

	t.Logf("Resolved: %s, %s", resp.PlaceName(), resp.Address.Country)
}
