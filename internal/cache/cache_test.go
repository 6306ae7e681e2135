package cache

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"loppa/internal/types"
)

type failingStore struct{}

func (failingStore) Read(key string) ([]byte, error) { return nil, errors.New("backend unavailable") }
func (failingStore) Write(key string, value []byte) error {
	return errors.New("backend unavailable")
}
func (failingStore) Delete(key string) error { return errors.New("backend unavailable") }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSnapshot() *types.WeatherSnapshot {
	moscow, _ := time.LoadLocation("Europe/Moscow")
	return &types.WeatherSnapshot{
		Location: types.GeoLocation{
			Name:    "Москва",
			Country: "Россия",
			Lat:     55.7558,
			Lon:     37.6173,
		},
		Current: types.CurrentConditions{
			Temperature: -3,
			FeelsLike:   -8,
			Humidity:    81,
			WindSpeed:   14,
			WeatherCode: 71,
			Pressure:    1014,
			Visibility:  10,
			IsDay:       true,
		},
		Hourly: []types.HourlyPoint{
			{
				Time:        time.Date(2026, 1, 15, 12, 0, 0, 0, moscow),
				Temperature: -3,
				WeatherCode: 71,
			},
		},
		Daily: []types.DailyPoint{
			{
				Date:        time.Date(2026, 1, 15, 0, 0, 0, 0, moscow),
				TempMax:     -1,
				TempMin:     -7,
				WeatherCode: 71,
			},
		},
		Timezone: "Europe/Moscow",
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want string
	}{
		{
			name: "rounds to two decimal places",
			lat:  55.7558,
			lon:  37.6173,
			want: "loppa-weather-cache-55.76-37.62",
		},
		{
			name: "negative coordinates",
			lat:  -33.8688,
			lon:  -151.2093,
			want: "loppa-weather-cache--33.87--151.21",
		},
		{
			name: "pads short fractions",
			lat:  55.7,
			lon:  37,
			want: "loppa-weather-cache-55.70-37.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.lat, tt.lon)
			if got != tt.want {
				t.Errorf("Key(%v, %v) = %q, want %q", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestCache_PutGet_RoundTrip(t *testing.T) {
	c := New(NewMemoryStore(), testLogger())

	snapshot := testSnapshot()
	c.Put(55.7558, 37.6173, snapshot)

	got := c.Get(55.7558, 37.6173)
	if got == nil {
		t.Fatal("Get() = nil, want cached snapshot")
	}
	if got.Location.Name != "Москва" {
		t.Errorf("Location.Name = %q, want %q", got.Location.Name, "Москва")
	}
	if got.Current.Temperature != -3 {
		t.Errorf("Current.Temperature = %d, want -3", got.Current.Temperature)
	}
	if !got.Hourly[0].Time.Equal(snapshot.Hourly[0].Time) {
		t.Errorf("Hourly[0].Time = %v, does not denote the stored instant %v",
			got.Hourly[0].Time, snapshot.Hourly[0].Time)
	}
	if got.Timezone != "Europe/Moscow" {
		t.Errorf("Timezone = %q, want %q", got.Timezone, "Europe/Moscow")
	}
}

func TestCache_CoordinateRounding(t *testing.T) {
	c := New(NewMemoryStore(), testLogger())
	c.Put(55.7558, 37.6173, testSnapshot())

	// Within rounding distance: same cache line.
	if got := c.Get(55.7571, 37.6182); got == nil {
		t.Error("Get() with jittered coordinates = nil, want cached snapshot")
	}

	// Past rounding distance: different cache line.
	if got := c.Get(55.7758, 37.6173); got != nil {
		t.Error("Get() with distant coordinates != nil, want miss")
	}
}

func TestCache_TTL(t *testing.T) {
	fetchedAt := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		readAt      time.Time
		wantHit     bool
		wantRemoved bool
	}{
		{
			name:    "fresh entry just before expiry",
			readAt:  fetchedAt.Add(15*time.Minute - time.Second),
			wantHit: true,
		},
		{
			name:        "stale entry just past expiry",
			readAt:      fetchedAt.Add(15*time.Minute + time.Second),
			wantHit:     false,
			wantRemoved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			c := New(store, testLogger())

			c.now = func() time.Time { return fetchedAt }
			c.Put(55.7558, 37.6173, testSnapshot())

			c.now = func() time.Time { return tt.readAt }
			got := c.Get(55.7558, 37.6173)

			if tt.wantHit && got == nil {
				t.Fatal("Get() = nil, want cached snapshot")
			}
			if !tt.wantHit && got != nil {
				t.Fatal("Get() != nil, want miss")
			}
			if tt.wantRemoved {
				if _, err := store.Read(Key(55.7558, 37.6173)); !errors.Is(err, ErrNotFound) {
					t.Errorf("stale entry still in store, read err = %v, want ErrNotFound", err)
				}
			}
		})
	}
}

func TestCache_MalformedEntryRemoved(t *testing.T) {
	store := NewMemoryStore()
	c := New(store, testLogger())

	key := Key(55.7558, 37.6173)
	if err := store.Write(key, []byte("{not json")); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	if got := c.Get(55.7558, 37.6173); got != nil {
		t.Error("Get() != nil for malformed entry, want miss")
	}
	if _, err := store.Read(key); !errors.Is(err, ErrNotFound) {
		t.Errorf("malformed entry still in store, read err = %v, want ErrNotFound", err)
	}
}

func TestCache_InvalidSnapshotRemoved(t *testing.T) {
	store := NewMemoryStore()
	c := New(store, testLogger())

	// Well-formed JSON whose snapshot fails validation (no hourly points).
	key := Key(55.7558, 37.6173)
	raw := []byte(`{"snapshot":{"timezone":"Europe/Moscow"},"fetchedAt":"2026-01-15T12:00:00Z"}`)
	if err := store.Write(key, raw); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	if got := c.Get(55.7558, 37.6173); got != nil {
		t.Error("Get() != nil for invalid snapshot, want miss")
	}
	if _, err := store.Read(key); !errors.Is(err, ErrNotFound) {
		t.Errorf("invalid entry still in store, read err = %v, want ErrNotFound", err)
	}
}

func TestCache_FailingBackend(t *testing.T) {
	c := New(failingStore{}, testLogger())

	// Writes are best-effort and reads degrade to a miss.
	c.Put(55.7558, 37.6173, testSnapshot())
	if got := c.Get(55.7558, 37.6173); got != nil {
		t.Error("Get() != nil with failing backend, want miss")
	}
}
