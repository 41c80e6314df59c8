package weather

import "sort"

// UnknownCondition describes any code missing from the catalog.
const UnknownCondition = "Unknown"

// DefaultIcon is shown for codes missing from the catalog.
const DefaultIcon = "wi-day-cloudy"

// Open-Meteo (WMO) weather codes.
var conditionDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

type iconPair struct {
	day   string
	night string
}

func same(icon string) iconPair {
	return iconPair{day: icon, night: icon}
}

// Weather Icons class names. Only clear and partly cloudy codes differ by
// time of day.
var conditionIcons = map[int]iconPair{
	0:  {day: "wi-day-sunny", night: "wi-night-clear"},
	1:  {day: "wi-day-cloudy", night: "wi-night-alt-cloudy"},
	2:  {day: "wi-day-cloudy-high", night: "wi-night-alt-cloudy-high"},
	3:  same("wi-cloudy"),
	45: same("wi-fog"),
	48: same("wi-fog"),
	51: same("wi-sprinkle"),
	53: same("wi-sprinkle"),
	55: same("wi-sprinkle"),
	56: same("wi-rain-mix"),
	57: same("wi-rain-mix"),
	61: same("wi-rain"),
	63: same("wi-rain"),
	65: same("wi-rain"),
	66: same("wi-rain-mix"),
	67: same("wi-rain-mix"),
	71: same("wi-snow"),
	73: same("wi-snow"),
	75: same("wi-snow"),
	77: same("wi-snow"),
	80: same("wi-showers"),
	81: same("wi-showers"),
	82: same("wi-showers"),
	85: same("wi-snow-wind"),
	86: same("wi-snow-wind"),
	95: same("wi-thunderstorm"),
	96: same("wi-thunderstorm"),
	99: same("wi-thunderstorm"),
}

// Describe returns the human-readable description of a weather code.
func Describe(code int) string {
	if d, ok := conditionDescriptions[code]; ok {
		return d
	}
	return UnknownCondition
}

// IconFor returns the icon id for a weather code at the given time of day.
func IconFor(code int, daytime bool) string {
	icons, ok := conditionIcons[code]
	if !ok {
		return DefaultIcon
	}
	if daytime {
		return icons.day
	}
	return icons.night
}

// Codes lists every catalogued weather code in ascending order.
func Codes() []int {
	codes := make([]int, 0, len(conditionDescriptions))
	for code := range conditionDescriptions {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
