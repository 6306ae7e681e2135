package openmeteo

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

var errCircuitOpen = errors.New("circuit breaker open")

// StatusError is returned when the endpoint is reachable but responds with a
// non-success status after retries are exhausted.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// doRequestWithResilience executes the HTTP request with retries, exponential
// backoff, and a circuit breaker. Transport failures, 429 and 5xx responses
// are retried; once retries are exhausted a status failure surfaces as
// *StatusError carrying the last status seen, so callers can tell a
// responding-but-failing endpoint from an unreachable one.
func doRequestWithResilience(
	client *http.Client,
	backoff BackoffConfig,
	cb *gobreaker.CircuitBreaker,
	buildRequest func() (*http.Request, error),
) (*http.Response, error) {
	var attempt int
	var lastErr error

	for {
		req, err := buildRequest()
		if err != nil {
			return nil, err
		}

		result, err := cb.Execute(func() (interface{}, error) {
			resp, execErr := client.Do(req)
			if execErr != nil {
				return nil, execErr
			}

			// Rate limiting and server errors are retryable; keep the
			// status so exhaustion reports what the endpoint said.
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				body, _ := io.ReadAll(resp.Body)
				resp.Body.Close()
				return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
			}

			return resp, nil
		})

		if err == nil {
			resp, ok := result.(*http.Response)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return resp, nil
		}

		// If circuit is open, propagate immediately.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= backoff.MaxRetries {
			return nil, lastErr
		}

		// Backoff with exponential delay.
		delay := backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > backoff.MaxInterval && backoff.MaxInterval > 0 {
			delay = backoff.MaxInterval
		}
		time.Sleep(delay)

		attempt++
	}
}
