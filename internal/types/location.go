package types

// GeoLocation is a named geographic location as produced by city search,
// reverse geocoding, or IP geolocation. It has no identity beyond its
// coordinate pair.
type GeoLocation struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Admin1  string  `json:"admin1,omitempty"`
}
