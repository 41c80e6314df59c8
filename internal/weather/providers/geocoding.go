package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/i474232898/weather-lookup/internal/metrics"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultGeocodingURL is the Open-Meteo geocoding search endpoint.
const DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// OpenMeteoGeocoder searches places with the Open-Meteo geocoding API.
type OpenMeteoGeocoder struct {
	name    string
	baseURL string
	client  *resty.Client
}

// NewOpenMeteoGeocoder creates a geocoder. An empty baseURL selects
// DefaultGeocodingURL.
func NewOpenMeteoGeocoder(timeout time.Duration, baseURL string) *OpenMeteoGeocoder {
	if baseURL == "" {
		baseURL = DefaultGeocodingURL
	}
	return &OpenMeteoGeocoder{
		name:    "openmeteo-geocoding",
		baseURL: baseURL,
		client:  resty.New().SetTimeout(timeout),
	}
}

type geocodeResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
}

// Open-Meteo omits "results" entirely when nothing matched.
type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

// SearchPlaces returns up to count places matching name, best match first.
func (g *OpenMeteoGeocoder) SearchPlaces(ctx context.Context, name string, count int) ([]weather.Place, error) {
	params := map[string]string{
		"name":     name,
		"count":    strconv.Itoa(count),
		"language": "en",
		"format":   "json",
	}

	body, status, err := g.get(ctx, params)
	if err != nil {
		return nil, weather.FetchError("geocoding search", err)
	}
	if status != http.StatusOK {
		return nil, weather.FetchError("geocoding search", fmt.Errorf("%w: %d: %s", errUnexpected, status, string(body)))
	}
	return decodePlaces(body)
}

// ReversePlaces asks the search endpoint for places at lat/lon. The API has
// no reverse lookup, so a rejected request counts as no match; only
// transport, server and decode failures are errors.
func (g *OpenMeteoGeocoder) ReversePlaces(ctx context.Context, lat, lon float64) ([]weather.Place, error) {
	params := map[string]string{
		"latitude":  strconv.FormatFloat(lat, 'f', 4, 64),
		"longitude": strconv.FormatFloat(lon, 'f', 4, 64),
		"count":     "1",
		"language":  "en",
		"format":    "json",
	}

	body, status, err := g.get(ctx, params)
	if err != nil {
		return nil, weather.FetchError("reverse geocoding", err)
	}
	switch {
	case status >= 500:
		return nil, weather.FetchError("reverse geocoding", fmt.Errorf("%w: %d", errServerError, status))
	case status != http.StatusOK:
		return nil, nil
	}
	return decodePlaces(body)
}

func (g *OpenMeteoGeocoder) get(ctx context.Context, params map[string]string) ([]byte, int, error) {
	start := time.Now()
	response, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(g.baseURL)
	if err != nil {
		metrics.RecordProviderRequest(g.name, time.Since(start), err)
		return nil, 0, err
	}

	var statusErr error
	if response.IsError() {
		statusErr = fmt.Errorf("%w: %d", errUnexpected, response.StatusCode())
	}
	metrics.RecordProviderRequest(g.name, time.Since(start), statusErr)

	return response.Body(), response.StatusCode(), nil
}

func decodePlaces(body []byte) ([]weather.Place, error) {
	var decoded geocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, weather.FetchError("decode geocoding", err)
	}

	places := make([]weather.Place, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		places = append(places, weather.Place{
			Name:      r.Name,
			Region:    r.Admin1,
			Country:   r.Country,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}
	return places, nil
}
