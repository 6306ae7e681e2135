//go:build integration

package openmeteo

import (
	"encoding/json"
	"testing"
)

func TestGeocodingClient_Search_Integration(t *testing.T) {
	client := NewGeocodingClient()

	t.Logf("Making API call to OpenMeteo Geocoding API...")

	resp, err := client.Search("Москва", "ru")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(resp.Results) == 0 {
		t.Fatal("No results for a major city")
	}

	if len(resp.Results) > maxSearchResults {
		t.Errorf("Result count = %d, expected at most %d", len(resp.Results), maxSearchResults)
	}

	first := resp.Results[0]
	t.Logf("Top result: %s, %s (%f, %f)", first.Name, first.Country, first.Latitude, first.Longitude)

	if first.Name == "" {
		t.Error("Top result has no name")
	}
	if first.Latitude == 0 && first.Longitude == 0 {
		t.Error("Top result has zero coordinates")
	}
}
