package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/i474232898/weather-lookup/internal/common"
)

const (
	// DefaultSuggestLimit is the number of suggestions requested when the
	// caller does not say.
	DefaultSuggestLimit = 5
	// MinSuggestQueryLen is the shortest query sent for suggestions.
	MinSuggestQueryLen = 2
)

// Resolver turns names and coordinates into places.
type Resolver struct {
	searcher PlaceSearcher
	reverse  ReverseGeocoder
}

// NewResolver creates a Resolver. reverse may be nil, in which case every
// coordinate lookup resolves to "Your Location".
func NewResolver(searcher PlaceSearcher, reverse ReverseGeocoder) *Resolver {
	return &Resolver{
		searcher: searcher,
		reverse:  reverse,
	}
}

// ResolveByName returns the best match for query. There is no
// disambiguation: the first result is used.
func (r *Resolver) ResolveByName(ctx context.Context, query string) (Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Place{}, fmt.Errorf("%w: empty query", ErrNotFound)
	}

	places, err := r.searcher.SearchPlaces(ctx, query, 1)
	if err != nil {
		return Place{}, err
	}
	if len(places) == 0 {
		return Place{}, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	return withRegionFallback(places[0]), nil
}

// ResolveByCoordinates names the place at lat/lon. An empty reverse lookup is
// not an error: weather for an unnamed place is still shown.
func (r *Resolver) ResolveByCoordinates(ctx context.Context, lat, lon float64) (Place, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Place{}, fmt.Errorf("%w: coordinates out of range (%.4f, %.4f)", ErrLocationUnavailable, lat, lon)
	}

	unnamed := Place{Name: YourLocationName, Latitude: lat, Longitude: lon}
	if r.reverse == nil {
		return unnamed, nil
	}

	places, err := r.reverse.ReversePlaces(ctx, lat, lon)
	if err != nil {
		return Place{}, err
	}
	if len(places) == 0 {
		return unnamed, nil
	}

	place := withRegionFallback(places[0])
	// Weather is fetched for the caller's coordinates, not the nearest
	// named place's.
	place.Latitude = lat
	place.Longitude = lon
	return place, nil
}

// Suggest returns up to limit candidate places for an incomplete query, as
// the provider named them. Short queries return nothing without a network
// call.
func (r *Resolver) Suggest(ctx context.Context, query string, limit int) ([]Place, error) {
	if common.RuneLen(query) < MinSuggestQueryLen {
		return []Place{}, nil
	}
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	places, err := r.searcher.SearchPlaces(ctx, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, err
	}
	if places == nil {
		return []Place{}, nil
	}
	if len(places) > limit {
		places = places[:limit]
	}
	return places, nil
}

// withRegionFallback uses the country as region when the provider omits
// the administrative subdivision.
func withRegionFallback(p Place) Place {
	if p.Region == "" {
		p.Region = p.Country
	}
	return p
}
