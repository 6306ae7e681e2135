package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	UnitsCelsius    = "celsius"
	UnitsFahrenheit = "fahrenheit"
)

// SavedCity is the last coordinate pair the user selected.
type SavedCity struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Settings is the small user-preference record persisted between runs.
type Settings struct {
	Language string     `json:"language"`
	Units    string     `json:"units"`
	LastCity *SavedCity `json:"lastCity,omitempty"`
}

func defaults() Settings {
	return Settings{Language: "ru", Units: UnitsCelsius}
}

func path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "loppa", "settings.json"), nil
}

// Load reads the settings file, returning defaults when it is missing or
// unreadable. Preferences are convenience state; failures never surface.
func Load() Settings {
	p, err := path()
	if err != nil {
		return defaults()
	}

	raw, err := os.ReadFile(p)
	if err != nil {
		return defaults()
	}

	s := defaults()
	if err := json.Unmarshal(raw, &s); err != nil {
		return defaults()
	}
	if s.Language == "" {
		s.Language = "ru"
	}
	if s.Units == "" {
		s.Units = UnitsCelsius
	}
	return s
}

// Save writes the settings file, creating its directory if needed.
func Save(s Settings) error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := os.WriteFile(p, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
