package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Moscow&count=8&language=ru&format=json
const (
	baseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	maxSearchResults = 8
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewGeocodingClient() *GeocodingClient {
	return &GeocodingClient{
		httpClient: &http.Client{},
		baseURL:    baseGeocodingURL,
	}
}

// Search returns ranked candidate locations for a free-text name query.
func (c *GeocodingClient) Search(name, language string) (*GeocodingAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(maxSearchResults))
	q.Set("language", language)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp GeocodingAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
