package weather

import "fmt"

// NetworkError reports a transport-level failure reaching the forecast
// provider. The fetch can be retried with the same coordinates.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("weather request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UpstreamError reports that the forecast provider was reachable but
// responded with a non-success status or an unusable payload.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("weather provider returned status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("weather provider returned unusable data: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
