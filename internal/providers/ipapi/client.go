package ipapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// API Docs: https://ip-api.com/docs/api:json
// Sample request: http://ip-api.com/json/?lang=ru&fields=status,country,city,lat,lon,regionName
const (
	baseURL = "http://ip-api.com/json/"
)

// LocateAPIResponse is the ip-api.com geolocation payload for the caller's
// own address.
type LocateAPIResponse struct {
	Status     string  `json:"status"`
	Country    string  `json:"country"`
	RegionName string  `json:"regionName"`
	City       string  `json:"city"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// Locate resolves the caller's approximate location from its public IP.
func (c *Client) Locate(language string) (*LocateAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lang", language)
	q.Set("fields", "status,country,city,lat,lon,regionName")
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

	var apiResp LocateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// ip-api signals failures in the body with a 200 status.
	if apiResp.Status != "success" {
		return nil, fmt.Errorf("lookup failed with status %q", apiResp.Status)
	}

	return &apiResp, nil
}
