package weather

import (
	"fmt"
	"strings"
)

// Unit is a temperature display preference.
type Unit string

const (
	Celsius    Unit = "c"
	Fahrenheit Unit = "f"
)

// ParseUnit accepts "c", "celsius", "f" or "fahrenheit" in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
}

// Symbol is the display suffix for the unit.
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

func ToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func ToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// IsDaytime reports whether a local hour falls in [6, 18).
func IsDaytime(hour int) bool {
	return hour >= 6 && hour < 18
}
