package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-lookup/internal/metrics"
)

// Trigger names the user action that started a cycle.
type Trigger string

const (
	TriggerSearch      Trigger = "search"
	TriggerCoordinates Trigger = "coordinates"
	TriggerLocate      Trigger = "locate"
	TriggerSelect      Trigger = "select"
	TriggerRefresh     Trigger = "refresh"
)

// Service runs resolve -> fetch -> build -> render cycles and owns the
// current unit preference and the last good snapshot.
type Service struct {
	resolver  *Resolver
	fetcher   Fetcher
	presenter Presenter
	locator   Locator

	mu      sync.RWMutex
	unit    Unit
	current *WeatherSnapshot
}

// NewService creates a new Service. locator may be nil when the caller's
// position is never available.
func NewService(resolver *Resolver, fetcher Fetcher, presenter Presenter, locator Locator, unit Unit) *Service {
	if unit == "" {
		unit = Celsius
	}
	return &Service{
		resolver:  resolver,
		fetcher:   fetcher,
		presenter: presenter,
		locator:   locator,
		unit:      unit,
	}
}

// Search runs a cycle for a city name.
func (s *Service) Search(ctx context.Context, city string) error {
	return s.cycle(ctx, TriggerSearch, func(ctx context.Context) (Place, error) {
		return s.resolver.ResolveByName(ctx, city)
	})
}

// SearchCoordinates runs a cycle for coordinates granted by the caller.
func (s *Service) SearchCoordinates(ctx context.Context, lat, lon float64) error {
	return s.cycle(ctx, TriggerCoordinates, func(ctx context.Context) (Place, error) {
		return s.resolver.ResolveByCoordinates(ctx, lat, lon)
	})
}

// Locate runs a cycle for the position reported by the configured Locator.
func (s *Service) Locate(ctx context.Context) error {
	return s.cycle(ctx, TriggerLocate, func(ctx context.Context) (Place, error) {
		if s.locator == nil {
			return Place{}, fmt.Errorf("%w: no locator configured", ErrLocationUnavailable)
		}
		lat, lon, err := s.locator.Locate(ctx)
		if err != nil {
			if errors.Is(err, ErrLocationUnavailable) {
				return Place{}, err
			}
			return Place{}, fmt.Errorf("%w: %w", ErrLocationUnavailable, err)
		}
		return s.resolver.ResolveByCoordinates(ctx, lat, lon)
	})
}

// Select runs a cycle for a place picked from suggestions. The place is
// used as picked; it is not geocoded again.
func (s *Service) Select(ctx context.Context, place Place) error {
	return s.cycle(ctx, TriggerSelect, func(context.Context) (Place, error) {
		return withRegionFallback(place), nil
	})
}

// Refresh re-runs a cycle for the currently displayed place. It does
// nothing when no snapshot has been displayed yet.
func (s *Service) Refresh(ctx context.Context) error {
	current, ok := s.Current()
	if !ok {
		return nil
	}
	return s.cycle(ctx, TriggerRefresh, func(context.Context) (Place, error) {
		return current.Place, nil
	})
}

// Suggest looks up candidate places without debouncing.
func (s *Service) Suggest(ctx context.Context, query string, limit int) ([]Place, error) {
	return s.resolver.Suggest(ctx, query, limit)
}

// SetUnit changes the unit preference and re-renders the current snapshot
// with it. Nothing is refetched.
func (s *Service) SetUnit(unit Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unit == unit {
		return
	}
	s.unit = unit
	if s.current != nil {
		s.presenter.Render(*s.current, unit)
	}
}

// Unit returns the current unit preference.
func (s *Service) Unit() Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unit
}

// Current returns the last good snapshot, if any.
func (s *Service) Current() (WeatherSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return WeatherSnapshot{}, false
	}
	return *s.current, true
}

// cycle resolves a place, fetches its weather, builds a snapshot and
// renders it. On any error the current snapshot is left untouched and the
// error is shown. Concurrent cycles are not cancelled; the last one to
// finish is displayed.
func (s *Service) cycle(ctx context.Context, trigger Trigger, resolve func(context.Context) (Place, error)) error {
	id := uuid.NewString()
	start := time.Now()

	s.presenter.SetLoading(true)
	defer s.presenter.SetLoading(false)

	log.Printf("DEBUG: cycle %s (%s) started", id, trigger)

	snapshot, err := s.run(ctx, resolve)
	metrics.RecordCycle(string(trigger), time.Since(start), err)
	if err != nil {
		log.Printf("ERROR: cycle %s (%s) failed: %v", id, trigger, err)
		s.presenter.ShowError(UserMessage(err))
		return err
	}

	s.mu.Lock()
	s.current = &snapshot
	s.presenter.Render(snapshot, s.unit)
	s.mu.Unlock()

	log.Printf("INFO: cycle %s (%s) rendered %s: %.1f°C, %s", id, trigger, snapshot.Place.Label(), snapshot.TemperatureC, snapshot.ConditionText)
	return nil
}

func (s *Service) run(ctx context.Context, resolve func(context.Context) (Place, error)) (WeatherSnapshot, error) {
	place, err := resolve(ctx)
	if err != nil {
		return WeatherSnapshot{}, err
	}

	raw, err := s.fetcher.Fetch(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return WeatherSnapshot{}, err
	}

	return Build(place, raw)
}
