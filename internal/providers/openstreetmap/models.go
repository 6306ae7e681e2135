package openstreetmap

// ReverseAPIResponse is the Nominatim reverse geocoding payload, reduced to
// the address fields place naming cares about.
type ReverseAPIResponse struct {
	PlaceId     int    `json:"place_id"`
	OsmType     string `json:"osm_type"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		State       string `json:"state"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// PlaceName returns the most specific populated-place name available,
// preferring city over town over village over state.
func (r *ReverseAPIResponse) PlaceName() string {
	switch {
	case r.Address.City != "":
		return r.Address.City
	case r.Address.Town != "":
		return r.Address.Town
	case r.Address.Village != "":
		return r.Address.Village
	default:
		return r.Address.State
	}
}
