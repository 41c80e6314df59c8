package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// DefaultForecastURL is the Open-Meteo forecast endpoint.
const DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoProvider implements the weather.Fetcher interface for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates a forecast fetcher. An empty baseURL selects
// DefaultForecastURL.
func NewOpenMeteoProvider(client *http.Client, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultForecastURL
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		client:  client,
		circuit: newCircuitBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// BuildURL builds the single forecast request: current conditions, one
// hourly humidity/wind series and today's sunrise/sunset, with local times
// resolved by the provider.
func (p *OpenMeteoProvider) BuildURL(lat, lon float64) string {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	values.Set("current_weather", "true")
	values.Set("hourly", "relativehumidity_2m,windspeed_10m")
	values.Set("daily", "sunrise,sunset")
	values.Set("timezone", "auto")
	values.Set("forecast_days", "1")

	return fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
}

type forecastPayload struct {
	CurrentWeather *struct {
		Temperature *float64 `json:"temperature"`
		WindSpeed   *float64 `json:"windspeed"`
		WeatherCode *int     `json:"weathercode"`
		Time        string   `json:"time"`
	} `json:"current_weather"`
	Hourly struct {
		RelativeHumidity []*float64 `json:"relativehumidity_2m"`
		WindSpeed        []*float64 `json:"windspeed_10m"`
	} `json:"hourly"`
	Daily struct {
		Sunrise []string `json:"sunrise"`
		Sunset  []string `json:"sunset"`
	} `json:"daily"`
}

// Fetch makes one attempt; every failure is a weather.ErrFetch.
func (p *OpenMeteoProvider) Fetch(ctx context.Context, lat, lon float64) (weather.RawConditions, error) {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, p.BuildURL(lat, lon), nil)
	}

	resp, err := doRequest(ctx, p.client, p.circuit, p.name, buildRequest)
	if err != nil {
		return weather.RawConditions{}, weather.FetchError("forecast request", err)
	}
	defer resp.Body.Close()

	var payload forecastPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.RawConditions{}, weather.FetchError("decode forecast", err)
	}

	return payload.toRaw(), nil
}

func (f forecastPayload) toRaw() weather.RawConditions {
	// The minimal request profile has no pressure; report the placeholder
	// instead of issuing a second request.
	pressure := weather.PlaceholderPressureHpa

	raw := weather.RawConditions{
		HourlyHumidity:  f.Hourly.RelativeHumidity,
		HourlyWindSpeed: f.Hourly.WindSpeed,
		PressureHpa:     &pressure,
	}
	if cw := f.CurrentWeather; cw != nil {
		raw.TemperatureC = cw.Temperature
		raw.WindSpeedKph = cw.WindSpeed
		raw.WeatherCode = cw.WeatherCode
		raw.Time = cw.Time
	}
	if len(f.Daily.Sunrise) > 0 {
		raw.Sunrise = f.Daily.Sunrise[0]
	}
	if len(f.Daily.Sunset) > 0 {
		raw.Sunset = f.Daily.Sunset[0]
	}
	return raw
}
