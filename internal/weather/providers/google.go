package providers

import (
	"context"
	"strings"
	"time"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-lookup/internal/metrics"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// GoogleReverseGeocoder names coordinates with the Google Geocoding API.
// The underlying client keeps its API key in a package variable, so one key
// is shared process-wide.
type GoogleReverseGeocoder struct {
	name    string
	reverse func(geocoder.Location) ([]geocoder.Address, error)
}

func NewGoogleReverseGeocoder(apiKey string) *GoogleReverseGeocoder {
	geocoder.ApiKey = apiKey
	return &GoogleReverseGeocoder{
		name:    "google-geocoding",
		reverse: geocoder.GeocodingReverse,
	}
}

type reverseResult struct {
	addresses []geocoder.Address
	err       error
}

// ReversePlaces returns the named places at lat/lon. The client does not
// take a context, so the call is abandoned (not cancelled) when ctx ends.
func (g *GoogleReverseGeocoder) ReversePlaces(ctx context.Context, lat, lon float64) ([]weather.Place, error) {
	done := make(chan reverseResult, 1)
	start := time.Now()

	go func() {
		addresses, err := g.reverse(geocoder.Location{Latitude: lat, Longitude: lon})
		done <- reverseResult{addresses: addresses, err: err}
	}()

	select {
	case <-ctx.Done():
		metrics.RecordProviderRequest(g.name, time.Since(start), ctx.Err())
		return nil, weather.FetchError("google reverse geocoding", ctx.Err())
	case res := <-done:
		if res.err != nil && isZeroResults(res.err) {
			metrics.RecordProviderRequest(g.name, time.Since(start), nil)
			return nil, nil
		}
		metrics.RecordProviderRequest(g.name, time.Since(start), res.err)
		if res.err != nil {
			return nil, weather.FetchError("google reverse geocoding", res.err)
		}

		places := make([]weather.Place, 0, len(res.addresses))
		for _, addr := range res.addresses {
			if p, ok := addressToPlace(addr, lat, lon); ok {
				places = append(places, p)
			}
		}
		return places, nil
	}
}

func isZeroResults(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "zero_results") || strings.Contains(msg, "no results")
}

// addressToPlace keeps addresses that name a locality.
func addressToPlace(addr geocoder.Address, lat, lon float64) (weather.Place, bool) {
	name := addr.City
	if name == "" {
		name = addr.County
	}
	if name == "" {
		return weather.Place{}, false
	}
	return weather.Place{
		Name:      name,
		Region:    addr.State,
		Country:   addr.Country,
		Latitude:  lat,
		Longitude: lon,
	}, true
}
