package weather

import (
	"context"
)

// PlaceSearcher looks places up by free-text name, best match first.
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, name string, count int) ([]Place, error)
}

// ReverseGeocoder finds named places near coordinates, nearest first.
type ReverseGeocoder interface {
	ReversePlaces(ctx context.Context, lat, lon float64) ([]Place, error)
}

// Fetcher abstracts a weather data source (e.g. Open-Meteo).
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, lat, lon float64) (RawConditions, error)
}

// Locator supplies the caller's own position. Any failure means the
// position is unavailable.
type Locator interface {
	Locate(ctx context.Context) (lat, lon float64, err error)
}

// Presenter renders what the Service produces. Implementations must be safe
// for concurrent use.
type Presenter interface {
	Render(snapshot WeatherSnapshot, unit Unit)
	RenderSuggestions(places []Place)
	ShowError(message string)
	SetLoading(loading bool)
}
