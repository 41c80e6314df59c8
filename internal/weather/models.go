package weather

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// LocalTimeLayout is the wall-clock layout Open-Meteo uses when asked for
// timezone=auto.
const LocalTimeLayout = "2006-01-02T15:04"

// PlaceholderPressureHpa is reported as pressure because the minimal
// forecast request does not include it. It is an approximation, not a reading.
const PlaceholderPressureHpa = 1010

// YourLocationName names a place whose reverse lookup found nothing.
const YourLocationName = "Your Location"

// coordinatePrecision matches the 4 decimals the geocoding provider returns.
const coordinatePrecision = 1e4

// Place represents a resolved named location.
// Empty Region or Country means the provider did not supply one.
type Place struct {
	Name      string  `json:"name" yaml:"name" validate:"required"`
	Region    string  `json:"region,omitempty" yaml:"region,omitempty"`
	Country   string  `json:"country,omitempty" yaml:"country,omitempty"`
	Latitude  float64 `json:"latitude" yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" yaml:"longitude" validate:"gte=-180,lte=180"`
}

// Key returns the identity of the place: its coordinates rounded to
// provider precision.
func (p Place) Key() string {
	return fmt.Sprintf("%.4f:%.4f", round(p.Latitude), round(p.Longitude))
}

// Label is the display name, "Name, Region" when a region is known.
func (p Place) Label() string {
	if p.Region == "" {
		return p.Name
	}
	return p.Name + ", " + p.Region
}

func round(v float64) float64 {
	return math.Round(v*coordinatePrecision) / coordinatePrecision
}

// RawConditions is the forecast provider's answer before normalization.
// Every field may be missing.
type RawConditions struct {
	TemperatureC *float64
	WindSpeedKph *float64
	WeatherCode  *int
	Time         string

	// Hourly series; only index 0 is consumed.
	HourlyHumidity  []*float64
	HourlyWindSpeed []*float64

	Sunrise string
	Sunset  string

	PressureHpa *int
}

// LocalTime is a provider wall-clock timestamp. The zone is meaningless;
// only the wall-clock fields are used.
type LocalTime struct {
	time.Time
}

// ParseLocalTime parses a provider timestamp in LocalTimeLayout.
func ParseLocalTime(s string) (LocalTime, error) {
	t, err := time.Parse(LocalTimeLayout, s)
	if err != nil {
		return LocalTime{}, err
	}
	return LocalTime{t}, nil
}

func (t LocalTime) String() string {
	return t.Format(LocalTimeLayout)
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	s, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("local time: %w", err)
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t LocalTime) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// WeatherSnapshot is one normalized, self-consistent weather result ready
// for display. Both temperature units are precomputed.
type WeatherSnapshot struct {
	Place           Place     `json:"place" yaml:"place"`
	ObservedAtLocal LocalTime `json:"observedAtLocal" yaml:"observedAtLocal"`

	TemperatureC float64 `json:"temperatureC" yaml:"temperatureC"`
	TemperatureF float64 `json:"temperatureF" yaml:"temperatureF"`
	FeelsLikeC   float64 `json:"feelsLikeC" yaml:"feelsLikeC"`
	FeelsLikeF   float64 `json:"feelsLikeF" yaml:"feelsLikeF"`

	HumidityPct int     `json:"humidityPct" yaml:"humidityPct"`
	WindKph     float64 `json:"windKph" yaml:"windKph"`
	PressureHpa int     `json:"pressureHpa" yaml:"pressureHpa"`

	ConditionCode int    `json:"conditionCode" yaml:"conditionCode"`
	ConditionText string `json:"conditionText" yaml:"conditionText"`
	IsDaytime     bool   `json:"isDaytime" yaml:"isDaytime"`
	IconID        string `json:"iconId" yaml:"iconId"`

	SunriseLocal LocalTime `json:"sunriseLocal" yaml:"sunriseLocal"`
	SunsetLocal  LocalTime `json:"sunsetLocal" yaml:"sunsetLocal"`

	BackgroundTheme Theme `json:"backgroundTheme" yaml:"backgroundTheme"`
	AmbientSound    Sound `json:"ambientSound,omitempty" yaml:"ambientSound,omitempty"`
}

// Temperature returns the precomputed temperature for unit.
func (s WeatherSnapshot) Temperature(unit Unit) float64 {
	if unit == Fahrenheit {
		return s.TemperatureF
	}
	return s.TemperatureC
}

// FeelsLike returns the precomputed feels-like temperature for unit.
func (s WeatherSnapshot) FeelsLike(unit Unit) float64 {
	if unit == Fahrenheit {
		return s.FeelsLikeF
	}
	return s.FeelsLikeC
}
