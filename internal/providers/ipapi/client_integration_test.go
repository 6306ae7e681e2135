//go:build integration

package ipapi

import (
	"encoding/json"
	"testing"
)

func TestClient_Locate_Integration(t *testing.T) {
	client := NewClient()

	t.Logf("Making API call to ip-api.com...")

	resp, err := client.Locate("ru")
	if err != nil {
		t.Fatalf("Failed to locate: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.Status != "success" {
		t.Errorf("Status = %q, expected success", resp.Status)
	}
	if resp.Lat == 0 && resp.Lon == 0 {
		t.Error("Zero coordinates in response")
	}

	t.Logf("Located: %s, %s (%f, %f)", resp.City, resp.Country, resp.Lat, resp.Lon)
}
