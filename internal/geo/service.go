package geo

import (
	"fmt"
	"log/slog"

	"loppa/internal/config"
	"loppa/internal/providers/gpsd"
	"loppa/internal/providers/ipapi"
	"loppa/internal/providers/ipapico"
	"loppa/internal/providers/openmeteo"
	"loppa/internal/providers/openstreetmap"
	"loppa/internal/types"
)

// PlaceholderName is used when reverse geocoding cannot name a coordinate
// pair. Location naming is best-effort and never fails a caller.
const PlaceholderName = "Текущее место"

// DefaultLocation is the hard fallback when every resolution strategy fails.
var DefaultLocation = types.GeoLocation{
	Name:    "Москва",
	Country: "Россия",
	Lat:     55.7558,
	Lon:     37.6173,
}

// PositionProvider supplies a device position fix.
type PositionProvider interface {
	Position() (*gpsd.Fix, error)
}

// ReverseGeocodeProvider names a coordinate pair.
type ReverseGeocodeProvider interface {
	Reverse(latitude, longitude float64, language string) (*openstreetmap.ReverseAPIResponse, error)
}

// PrimaryIPProvider is the first IP geolocation source.
type PrimaryIPProvider interface {
	Locate(language string) (*ipapi.LocateAPIResponse, error)
}

// SecondaryIPProvider is tried when the primary fails or is unreachable.
type SecondaryIPProvider interface {
	Locate() (*ipapico.LocateAPIResponse, error)
}

// CitySearchProvider runs free-text location search.
type CitySearchProvider interface {
	Search(name, language string) (*openmeteo.GeocodingAPIResponse, error)
}

// Service resolves locations and names for the presentation layer.
type Service interface {
	// DetectLocation always returns a usable location; callers need no
	// fallback branch of their own.
	DetectLocation() types.GeoLocation

	// ReverseGeocode returns a human-readable name and country for the
	// coordinates, or a fixed placeholder on any failure.
	ReverseGeocode(latitude, longitude float64) (name, country string)

	// SearchCities returns ranked candidates for a free-text query, or an
	// empty sequence; it is always safe to call speculatively.
	SearchCities(query string) []types.GeoLocation
}

// strategy is one step of the location resolution chain. The chain is an
// ordered list, tried first to last, short-circuiting on success.
type strategy struct {
	name    string
	resolve func() (types.GeoLocation, error)
}

type geoService struct {
	strategies     []strategy
	reverseGeocode ReverseGeocodeProvider
	citySearch     CitySearchProvider
	language       string
	logger         *slog.Logger
}

// NewService wires the real provider clients from configuration.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	var position PositionProvider
	if cfg.GPS.Enabled {
		position = gpsd.NewClient(cfg.GPS.Addr)
	}

	return NewServiceWithProviders(
		position,
		openstreetmap.NewClient(),
		ipapi.NewClient(),
		ipapico.NewClient(),
		openmeteo.NewGeocodingClient(),
		cfg.App.Language,
		logger,
	)
}

// NewServiceWithProviders creates a service with custom providers.
// This is useful for testing with mock providers. A nil position provider
// skips the device positioning step of the chain.
func NewServiceWithProviders(
	position PositionProvider,
	reverseGeocode ReverseGeocodeProvider,
	primaryIP PrimaryIPProvider,
	secondaryIP SecondaryIPProvider,
	citySearch CitySearchProvider,
	language string,
	logger *slog.Logger,
) Service {
	s := &geoService{
		reverseGeocode: reverseGeocode,
		citySearch:     citySearch,
		language:       language,
		logger:         logger.With("component", "geo-service"),
	}

	if position != nil {
		s.strategies = append(s.strategies, strategy{
			name:    "gps",
			resolve: func() (types.GeoLocation, error) { return s.locateByPosition(position) },
		})
	}
	s.strategies = append(s.strategies,
		strategy{
			name:    "ip-primary",
			resolve: func() (types.GeoLocation, error) { return s.locateByPrimaryIP(primaryIP) },
		},
		strategy{
			name:    "ip-secondary",
			resolve: func() (types.GeoLocation, error) { return s.locateBySecondaryIP(secondaryIP) },
		},
	)

	return s
}

func (s *geoService) DetectLocation() types.GeoLocation {
	for _, st := range s.strategies {
		loc, err := st.resolve()
		if err != nil {
			s.logger.Debug("location strategy failed", "strategy", st.name, "error", err)
			continue
		}
		s.logger.Info("location detected", "strategy", st.name, "name", loc.Name)
		return loc
	}

	s.logger.Warn("all location strategies failed, using default location",
		"name", DefaultLocation.Name)
	return DefaultLocation
}

func (s *geoService) ReverseGeocode(latitude, longitude float64) (string, string) {
	resp, err := s.reverseGeocode.Reverse(latitude, longitude, s.language)
	if err != nil {
		s.logger.Debug("reverse geocoding failed, using placeholder",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return PlaceholderName, ""
	}

	name := resp.PlaceName()
	if name == "" {
		name = PlaceholderName
	}
	return name, resp.Address.Country
}

func (s *geoService) SearchCities(query string) []types.GeoLocation {
	// Single characters produce noise, not candidates; skip the network
	// call entirely.
	if len([]rune(query)) < 2 {
		return []types.GeoLocation{}
	}

	resp, err := s.citySearch.Search(query, s.language)
	if err != nil {
		s.logger.Debug("city search failed", "query", query, "error", err)
		return []types.GeoLocation{}
	}

	results := make([]types.GeoLocation, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, types.GeoLocation{
			Name:    r.Name,
			Country: r.Country,
			Lat:     r.Latitude,
			Lon:     r.Longitude,
			Admin1:  r.Admin1,
		})
	}
	return results
}

func (s *geoService) locateByPosition(position PositionProvider) (types.GeoLocation, error) {
	fix, err := position.Position()
	if err != nil {
		return types.GeoLocation{}, fmt.Errorf("failed to get position: %w", err)
	}

	// Naming the fix is best-effort; the coordinates alone are a success.
	name, country := s.ReverseGeocode(fix.Lat, fix.Lon)

	return types.GeoLocation{
		Name:    name,
		Country: country,
		Lat:     fix.Lat,
		Lon:     fix.Lon,
	}, nil
}

func (s *geoService) locateByPrimaryIP(provider PrimaryIPProvider) (types.GeoLocation, error) {
	resp, err := provider.Locate(s.language)
	if err != nil {
		return types.GeoLocation{}, fmt.Errorf("failed to locate by IP: %w", err)
	}

	name := resp.City
	if name == "" {
		name = resp.RegionName
	}
	if name == "" {
		name = "Неизвестно"
	}

	return types.GeoLocation{
		Name:    name,
		Country: resp.Country,
		Lat:     resp.Lat,
		Lon:     resp.Lon,
	}, nil
}

func (s *geoService) locateBySecondaryIP(provider SecondaryIPProvider) (types.GeoLocation, error) {
	resp, err := provider.Locate()
	if err != nil {
		return types.GeoLocation{}, fmt.Errorf("failed to locate by IP: %w", err)
	}

	name := resp.City
	if name == "" {
		name = resp.Region
	}
	if name == "" {
		name = "Неизвестно"
	}

	return types.GeoLocation{
		Name:    name,
		Country: resp.CountryName,
		Lat:     resp.Latitude,
		Lon:     resp.Longitude,
	}, nil
}
