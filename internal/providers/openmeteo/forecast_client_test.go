package openmeteo

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func newTestForecastClient(baseURL string) *ForecastClient {
	return &ForecastClient{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		backoff: BackoffConfig{
			MaxRetries:      2,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
		},
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "openmeteo-forecast-test",
		}),
	}
}

func TestForecastClient_GetForecast_Statuses(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantStatus   int
		wantRequests int
	}{
		{
			name:         "persistent server error surfaces its status after retries",
			status:       http.StatusInternalServerError,
			body:         "upstream broke",
			wantStatus:   http.StatusInternalServerError,
			wantRequests: 3,
		},
		{
			name:         "persistent rate limiting surfaces its status after retries",
			status:       http.StatusTooManyRequests,
			body:         "rate limited",
			wantStatus:   http.StatusTooManyRequests,
			wantRequests: 3,
		},
		{
			name:         "client error is not retried",
			status:       http.StatusNotFound,
			body:         "no such endpoint",
			wantStatus:   http.StatusNotFound,
			wantRequests: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requests++
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestForecastClient(server.URL)

			_, err := client.GetForecast(55.7558, 37.6173)
			if err == nil {
				t.Fatal("GetForecast() error = nil, want error")
			}

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("errors.As(*StatusError) = false, err = %v", err)
			}
			if statusErr.Code != tt.wantStatus {
				t.Errorf("StatusError.Code = %d, want %d", statusErr.Code, tt.wantStatus)
			}
			if requests != tt.wantRequests {
				t.Errorf("requests = %d, want %d", requests, tt.wantRequests)
			}
		})
	}
}

func TestForecastClient_GetForecast_RecoversAfterRetry(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"timezone":"Europe/Moscow","current":{"temperature_2m":1.5}}`))
	}))
	defer server.Close()

	client := newTestForecastClient(server.URL)

	resp, err := client.GetForecast(55.7558, 37.6173)
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}
	if resp.Timezone != "Europe/Moscow" {
		t.Errorf("Timezone = %q, want %q", resp.Timezone, "Europe/Moscow")
	}
	if requests != 3 {
		t.Errorf("requests = %d, want 3", requests)
	}
}
