package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a name search yields no place.
	ErrNotFound = errors.New("place not found")
	// ErrLocationUnavailable is returned when the caller's position cannot be determined.
	ErrLocationUnavailable = errors.New("location unavailable")
	// ErrFetch wraps network and decode failures from either provider.
	ErrFetch = errors.New("fetch failed")
	// ErrIncompleteData is returned when a successful response lacks a required field.
	ErrIncompleteData = errors.New("incomplete weather data")
)

// FetchError wraps cause as an ErrFetch, keeping cause reachable with errors.Is/As.
func FetchError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrFetch, op, cause)
}

func incomplete(field string) error {
	return fmt.Errorf("%w: missing %s", ErrIncompleteData, field)
}

// UserMessage converts a cycle error into text fit for display.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "City not found"
	case errors.Is(err, ErrLocationUnavailable):
		return "Unable to retrieve your location"
	case errors.Is(err, ErrIncompleteData):
		return "Weather data is incomplete for this location"
	default:
		return "Failed to fetch weather data"
	}
}
