package providers

import (
	"context"
	"errors"
)

var errNoCoordinates = errors.New("no default coordinates configured")

// StaticLocator reports a fixed position, standing in for device
// geolocation on a server.
type StaticLocator struct {
	lat, lon *float64
}

// NewStaticLocator creates a locator; nil coordinates make every Locate fail.
func NewStaticLocator(lat, lon *float64) *StaticLocator {
	return &StaticLocator{lat: lat, lon: lon}
}

func (l *StaticLocator) Locate(ctx context.Context) (float64, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if l.lat == nil || l.lon == nil {
		return 0, 0, errNoCoordinates
	}
	return *l.lat, *l.lon, nil
}
