package weather

import (
	"strings"

	"github.com/i474232898/weather-lookup/internal/common"
)

// Theme is a background mood derived from condition text and time of day.
type Theme string

const (
	ThemeNone         Theme = ""
	ThemeClearDay     Theme = "clear-day"
	ThemeClearNight   Theme = "clear-night"
	ThemeCloudsDay    Theme = "clouds-day"
	ThemeCloudsNight  Theme = "clouds-night"
	ThemeRainDay      Theme = "rain-day"
	ThemeRainNight    Theme = "rain-night"
	ThemeThunderstorm Theme = "thunderstorm"
	ThemeSnow         Theme = "snow"
	ThemeMist         Theme = "mist"
)

// Sound is an ambient sound tag. SoundNone means silence.
type Sound string

const (
	SoundNone    Sound = ""
	SoundRain    Sound = "rain"
	SoundThunder Sound = "thunder"
	SoundWind    Sound = "wind"
)

type themeRule struct {
	bucket   string
	keywords []string
	day      Theme
	night    Theme
}

// Checked in order; the first rule whose keyword appears in the lower-cased
// condition text wins.
var themeRules = []themeRule{
	{bucket: "clear", keywords: []string{"clear"}, day: ThemeClearDay, night: ThemeClearNight},
	{bucket: "clouds", keywords: []string{"cloud", "overcast"}, day: ThemeCloudsDay, night: ThemeCloudsNight},
	{bucket: "rain", keywords: []string{"rain", "drizzle"}, day: ThemeRainDay, night: ThemeRainNight},
	{bucket: "thunderstorm", keywords: []string{"thunder", "storm"}, day: ThemeThunderstorm, night: ThemeThunderstorm},
	{bucket: "snow", keywords: []string{"snow", "sleet", "blizzard"}, day: ThemeSnow, night: ThemeSnow},
	{bucket: "mist", keywords: []string{"fog", "mist"}, day: ThemeMist, night: ThemeMist},
}

// BackgroundFor picks the background theme for a condition description.
func BackgroundFor(conditionText string, daytime bool) Theme {
	text := strings.ToLower(conditionText)
	for _, rule := range themeRules {
		if !common.HasAny(text, rule.keywords...) {
			continue
		}
		if daytime {
			return rule.day
		}
		return rule.night
	}
	return ThemeNone
}

// Bucket names the mood a theme belongs to, ignoring day and night.
// ThemeNone belongs to "none".
func (t Theme) Bucket() string {
	for _, rule := range themeRules {
		if t == rule.day || t == rule.night {
			return rule.bucket
		}
	}
	return "none"
}

// AmbientSoundFor picks the ambient sound for a condition description.
// It does not depend on the background theme.
func AmbientSoundFor(conditionText string) Sound {
	text := strings.ToLower(conditionText)
	switch {
	case common.HasAny(text, "rain", "drizzle"):
		return SoundRain
	case common.HasAny(text, "thunder", "storm"):
		return SoundThunder
	case strings.Contains(text, "wind"):
		// No catalog description mentions wind today; kept for a catalog
		// that does.
		return SoundWind
	default:
		return SoundNone
	}
}
