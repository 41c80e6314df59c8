package providers

import (
	"log"
	"net/http"

	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// Set bundles the collaborators a weather.Service needs.
type Set struct {
	Resolver *weather.Resolver
	Fetcher  weather.Fetcher
	Locator  weather.Locator
}

// FromConfig builds the providers selected by cfg.
func FromConfig(cfg *config.AppConfig) Set {
	// Shared HTTP client for outbound forecast calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	geocoding := NewOpenMeteoGeocoder(cfg.HTTPTimeout, cfg.GeocodingURL)

	var reverse weather.ReverseGeocoder = geocoding
	if cfg.GoogleGeocodingAPIKey != "" {
		log.Println("INFO: reverse geocoding via Google")
		reverse = NewGoogleReverseGeocoder(cfg.GoogleGeocodingAPIKey)
	}

	return Set{
		Resolver: weather.NewResolver(geocoding, reverse),
		Fetcher:  NewOpenMeteoProvider(httpClient, cfg.ForecastURL),
		Locator:  NewStaticLocator(cfg.DefaultLatitude, cfg.DefaultLongitude),
	}
}
