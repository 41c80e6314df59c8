package view

import (
	"fmt"
	"math"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// Display is a snapshot formatted for one unit, the way a widget shows it.
type Display struct {
	Location    string `json:"location" yaml:"location"`
	Unit        string `json:"unit" yaml:"unit"`
	Temperature int    `json:"temperature" yaml:"temperature"`
	FeelsLike   int    `json:"feelsLike" yaml:"feelsLike"`
	Condition   string `json:"condition" yaml:"condition"`
	Icon        string `json:"icon" yaml:"icon"`
	Humidity    string `json:"humidity" yaml:"humidity"`
	Wind        string `json:"wind" yaml:"wind"`
	Pressure    string `json:"pressure" yaml:"pressure"`
	LocalTime   string `json:"localTime" yaml:"localTime"`
	LocalDate   string `json:"localDate" yaml:"localDate"`
	Sunrise     string `json:"sunrise" yaml:"sunrise"`
	Sunset      string `json:"sunset" yaml:"sunset"`
	Background  string `json:"background,omitempty" yaml:"background,omitempty"`
	Sound       string `json:"sound,omitempty" yaml:"sound,omitempty"`

	Snapshot weather.WeatherSnapshot `json:"snapshot" yaml:"snapshot"`
}

// Format reads the precomputed fields for unit; it never converts.
func Format(s weather.WeatherSnapshot, unit weather.Unit) Display {
	return Display{
		Location:    s.Place.Label(),
		Unit:        unit.Symbol(),
		Temperature: int(math.Round(s.Temperature(unit))),
		FeelsLike:   int(math.Round(s.FeelsLike(unit))),
		Condition:   s.ConditionText,
		Icon:        s.IconID,
		Humidity:    fmt.Sprintf("%d%%", s.HumidityPct),
		Wind:        fmt.Sprintf("%g km/h", s.WindKph),
		Pressure:    fmt.Sprintf("%d hPa", s.PressureHpa),
		LocalTime:   s.ObservedAtLocal.Format("15:04"),
		LocalDate:   s.ObservedAtLocal.Format("Monday, January 2, 2006"),
		Sunrise:     s.SunriseLocal.Format("15:04"),
		Sunset:      s.SunsetLocal.Format("15:04"),
		Background:  string(s.BackgroundTheme),
		Sound:       string(s.AmbientSound),
		Snapshot:    s,
	}
}
