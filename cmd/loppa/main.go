package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"loppa/internal/cache"
	"loppa/internal/config"
	"loppa/internal/geo"
	"loppa/internal/settings"
	"loppa/internal/weather"
)

func main() {
	detect := flag.Bool("detect", false, "ignore the saved city and re-detect the location")
	units := flag.String("units", "", "temperature units: celsius or fahrenheit")
	lang := flag.String("lang", "", "language for place names and search")
	flag.Parse()

	// A local .env may carry LOPPA_* overrides; its absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	prefs := settings.Load()
	if *lang != "" {
		prefs.Language = *lang
	}
	if *units != "" {
		prefs.Units = *units
	}
	// The persisted language wins over the config default; the services
	// only ever see one value.
	if prefs.Language != "" {
		cfg.App.Language = prefs.Language
	}

	snapshots := cache.New(newStore(cfg, logger), logger)
	geoService := geo.NewService(cfg, logger)
	weatherService := weather.NewService(snapshots, geoService, logger)

	lat, lon, ok := pickTarget(geoService, prefs, *detect, flag.Args())
	if !ok {
		os.Exit(1)
	}

	snapshot, err := weatherService.Fetch(lat, lon)
	if err != nil {
		// Previously rendered data stays wherever the user sees it; the
		// retry re-attempts the exact same coordinates.
		fmt.Fprintf(os.Stderr, "Could not load weather: %v\nRun the same command again to retry.\n", err)
		os.Exit(1)
	}

	prefs.LastCity = &settings.SavedCity{Lat: lat, Lon: lon}
	if err := settings.Save(prefs); err != nil {
		logger.Warn("failed to save settings", "error", err)
	}

	render(os.Stdout, snapshot, prefs.Units)
}

// pickTarget chooses the coordinates to fetch: an explicit search query
// first, then the saved city, then the detection chain.
func pickTarget(geoService geo.Service, prefs settings.Settings, detect bool, args []string) (float64, float64, bool) {
	if len(args) > 0 {
		query := strings.Join(args, " ")
		candidates := geoService.SearchCities(query)
		if len(candidates) == 0 {
			fmt.Fprintf(os.Stderr, "No locations found for %q.\n", query)
			return 0, 0, false
		}
		best := candidates[0]
		return best.Lat, best.Lon, true
	}

	if !detect && prefs.LastCity != nil {
		return prefs.LastCity.Lat, prefs.LastCity.Lon, true
	}

	loc := geoService.DetectLocation()
	return loc.Lat, loc.Lon, true
}

func newStore(cfg *config.Config, logger *slog.Logger) cache.Store {
	if cfg.Cache.Backend != "sqlite" {
		return cache.NewMemoryStore()
	}

	store, err := cache.NewSQLiteStore(cfg.Cache.Path)
	if err != nil {
		// Caching is best-effort by contract; degrade to an ephemeral
		// store rather than refusing to run.
		logger.Warn("failed to open persistent cache, using in-memory store", "error", err)
		return cache.NewMemoryStore()
	}
	return store
}
