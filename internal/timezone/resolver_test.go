package timezone

import (
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name      string
		tzName    string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "named timezone loads directly",
			tzName:    "Europe/Moscow",
			latitude:  55.7558,
			longitude: 37.6173,
			want:      "Europe/Moscow",
		},
		{
			name:      "empty name falls back to coordinates",
			tzName:    "",
			latitude:  55.7558,
			longitude: 37.6173,
			want:      "Europe/Moscow",
		},
		{
			name:      "unknown name falls back to coordinates",
			tzName:    "Nowhere/Invalid",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
		{
			name:      "coordinate fallback west of Greenwich",
			tzName:    "",
			latitude:  40.7128,
			longitude: -74.0060,
			want:      "America/New_York",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := r.Resolve(tt.tzName, tt.latitude, tt.longitude)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if loc.String() != tt.want {
				t.Errorf("Resolve() = %v, want %v", loc.String(), tt.want)
			}
		})
	}
}

func TestResolver_Resolve_CachesLocations(t *testing.T) {
	r := NewResolver()

	first, err := r.Resolve("Europe/Moscow", 55.7558, 37.6173)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, err := r.Resolve("Europe/Moscow", 55.7558, 37.6173)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if first != second {
		t.Error("Resolve() returned distinct *time.Location values for the same name")
	}
}
