package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-lookup/internal/weather"
)

type AppConfig struct {
	Port string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// Provider endpoints; empty selects the public Open-Meteo URLs.
	ForecastURL  string
	GeocodingURL string

	// GoogleGeocodingAPIKey switches reverse lookups to Google when set.
	GoogleGeocodingAPIKey string

	SuggestDebounce time.Duration
	SuggestLimit    int

	// RefreshInterval re-fetches the displayed place (0 = disabled).
	RefreshInterval time.Duration

	DefaultUnit weather.Unit

	// Stand-in for device geolocation; nil when not configured.
	DefaultLatitude  *float64
	DefaultLongitude *float64
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}
	var err error

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.ForecastURL = os.Getenv("OPEN_METEO_FORECAST_URL")
	cfg.GeocodingURL = os.Getenv("OPEN_METEO_GEOCODING_URL")
	cfg.GoogleGeocodingAPIKey = os.Getenv("GOOGLE_GEOCODING_API_KEY")

	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.SuggestDebounce, err = getenvDuration("SUGGEST_DEBOUNCE", "300ms"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	cfg.SuggestLimit = getenvInt("SUGGEST_LIMIT", weather.DefaultSuggestLimit)
	if cfg.SuggestLimit <= 0 {
		return nil, fmt.Errorf("invalid SUGGEST_LIMIT: must be positive")
	}

	unit, err := weather.ParseUnit(getenvDefault("DEFAULT_UNIT", "c"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_UNIT: %w", err)
	}
	cfg.DefaultUnit = unit

	if err := loadDefaultLocation(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDefaultLocation(cfg *AppConfig) error {
	latStr := os.Getenv("DEFAULT_LATITUDE")
	lonStr := os.Getenv("DEFAULT_LONGITUDE")
	if latStr == "" && lonStr == "" {
		return nil
	}
	if latStr == "" || lonStr == "" {
		return fmt.Errorf("DEFAULT_LATITUDE and DEFAULT_LONGITUDE must be set together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return fmt.Errorf("invalid DEFAULT_LATITUDE %q", latStr)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		return fmt.Errorf("invalid DEFAULT_LONGITUDE %q", lonStr)
	}

	cfg.DefaultLatitude = &lat
	cfg.DefaultLongitude = &lon
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return d, nil
}
