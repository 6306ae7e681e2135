package timezone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Resolver turns a provider-reported timezone name into a *time.Location,
// falling back to a coordinate lookup when the name is missing or unknown.
type Resolver interface {
	Resolve(name string, latitude, longitude float64) (*time.Location, error)
}

// resolver caches loaded locations and lazily initializes the tzf finder.
type resolver struct {
	mu        sync.Mutex
	locations map[string]*time.Location

	finderOnce sync.Once
	finder     tzf.F
	finderErr  error
}

func NewResolver() Resolver {
	return &resolver{
		locations: make(map[string]*time.Location),
	}
}

// Resolve loads the named IANA timezone. When the name is empty or does not
// load, the timezone is resolved from the coordinates instead. The tzf
// finder is created on first coordinate fallback only: it loads its polygon
// data into memory, and most responses carry a loadable name.
func (r *resolver) Resolve(name string, latitude, longitude float64) (*time.Location, error) {
	if name != "" {
		if loc, err := r.load(name); err == nil {
			return loc, nil
		}
	}

	derived, err := r.timezoneFor(latitude, longitude)
	if err != nil {
		return nil, err
	}
	return r.load(derived)
}

func (r *resolver) load(name string) (*time.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if loc, ok := r.locations[name]; ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", name, err)
	}
	r.locations[name] = loc
	return loc, nil
}

func (r *resolver) timezoneFor(latitude, longitude float64) (string, error) {
	r.finderOnce.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			r.finderErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		r.finder = finder
	})
	if r.finderErr != nil {
		return "", r.finderErr
	}

	name := r.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}
