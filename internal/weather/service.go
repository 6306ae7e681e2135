package weather

import (
	"errors"
	"log/slog"
	"sync"

	"loppa/internal/providers/openmeteo"
	"loppa/internal/timezone"
	"loppa/internal/types"
)

// ForecastProvider fetches the raw forecast for a coordinate pair.
type ForecastProvider interface {
	GetForecast(latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error)
}

// NameResolver names a coordinate pair, degrading to a placeholder instead
// of failing.
type NameResolver interface {
	ReverseGeocode(latitude, longitude float64) (name, country string)
}

// SnapshotCache is the cache-first read/write surface the fetch pipeline
// uses.
type SnapshotCache interface {
	Get(lat, lon float64) *types.WeatherSnapshot
	Put(lat, lon float64, snapshot *types.WeatherSnapshot)
}

// Service is the weather retrieval pipeline: cache-first, one provider call
// per miss, normalized snapshots out.
type Service interface {
	// Fetch returns a fresh or cached snapshot for the coordinates. It
	// fails with *NetworkError when the provider cannot be reached and
	// *UpstreamError when the provider responds with a non-success status
	// or an unusable payload.
	Fetch(latitude, longitude float64) (*types.WeatherSnapshot, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	names            NameResolver
	cache            SnapshotCache
	tz               timezone.Resolver
	logger           *slog.Logger
}

// NewService wires the real forecast client against the given cache and
// name resolver.
func NewService(snapshots SnapshotCache, names NameResolver, logger *slog.Logger) Service {
	return NewServiceWithProviders(openmeteo.NewForecastClient(), names, snapshots, timezone.NewResolver(), logger)
}

// NewServiceWithProviders creates a service with custom collaborators.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	forecastProvider ForecastProvider,
	names NameResolver,
	snapshots SnapshotCache,
	tz timezone.Resolver,
	logger *slog.Logger,
) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		names:            names,
		cache:            snapshots,
		tz:               tz,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Fetch(latitude, longitude float64) (*types.WeatherSnapshot, error) {
	if cached := s.cache.Get(latitude, longitude); cached != nil {
		return cached, nil
	}

	// The forecast call and the naming call are independent; run them in
	// parallel. Naming cannot fail, so only the forecast result gates the
	// outcome.
	var (
		wg          sync.WaitGroup
		resp        *openmeteo.ForecastAPIResponse
		forecastErr error
		name        string
		country     string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		resp, forecastErr = s.forecastProvider.GetForecast(latitude, longitude)
	}()
	go func() {
		defer wg.Done()
		name, country = s.names.ReverseGeocode(latitude, longitude)
	}()
	wg.Wait()

	if forecastErr != nil {
		return nil, s.classify(latitude, longitude, forecastErr)
	}

	loc, err := s.tz.Resolve(resp.Timezone, latitude, longitude)
	if err != nil {
		s.logger.Error("failed to resolve snapshot timezone",
			"timezone", resp.Timezone,
			"error", err,
		)
		return nil, &UpstreamError{Err: err}
	}

	location := types.GeoLocation{
		Name:    name,
		Country: country,
		Lat:     latitude,
		Lon:     longitude,
	}

	snapshot, err := mapForecastResponse(location, resp, loc)
	if err != nil {
		s.logger.Error("failed to normalize forecast response", "error", err)
		return nil, &UpstreamError{Err: err}
	}

	s.cache.Put(latitude, longitude, snapshot)

	s.logger.Info("weather snapshot fetched",
		"name", snapshot.Location.Name,
		"hourly_points", len(snapshot.Hourly),
		"daily_points", len(snapshot.Daily),
	)
	return snapshot, nil
}

// classify maps a provider failure onto the fetch boundary taxonomy: a
// reachable endpoint with a bad status is upstream trouble, anything else is
// transport trouble.
func (s *weatherService) classify(latitude, longitude float64, err error) error {
	var statusErr *openmeteo.StatusError
	if errors.As(err, &statusErr) {
		s.logger.Error("forecast provider rejected request",
			"latitude", latitude,
			"longitude", longitude,
			"status", statusErr.Code,
		)
		return &UpstreamError{Status: statusErr.Code, Err: err}
	}

	s.logger.Error("forecast request failed",
		"latitude", latitude,
		"longitude", longitude,
		"error", err,
	)
	return &NetworkError{Err: err}
}
