package weather

import "math"

// Build normalizes a resolved place and raw provider conditions into a
// WeatherSnapshot. It fails with ErrIncompleteData when a required field is
// missing and never returns a partially filled snapshot.
func Build(place Place, raw RawConditions) (WeatherSnapshot, error) {
	if raw.TemperatureC == nil {
		return WeatherSnapshot{}, incomplete("temperature")
	}
	if raw.WeatherCode == nil {
		return WeatherSnapshot{}, incomplete("weather code")
	}
	if raw.Time == "" {
		return WeatherSnapshot{}, incomplete("observation time")
	}
	observed, err := ParseLocalTime(raw.Time)
	if err != nil {
		return WeatherSnapshot{}, incomplete("parseable observation time")
	}

	// The provider has no apparent temperature in this request profile, so
	// feels-like is the ambient temperature.
	tempC := *raw.TemperatureC
	tempF := ToFahrenheit(tempC)

	// The leading hourly sample stands in for "now" whatever the hour.
	humidity, ok := first(raw.HourlyHumidity)
	if !ok {
		return WeatherSnapshot{}, incomplete("hourly humidity")
	}

	wind, err := windSpeed(raw)
	if err != nil {
		return WeatherSnapshot{}, err
	}

	sunrise, err := requiredLocalTime(raw.Sunrise, "sunrise")
	if err != nil {
		return WeatherSnapshot{}, err
	}
	sunset, err := requiredLocalTime(raw.Sunset, "sunset")
	if err != nil {
		return WeatherSnapshot{}, err
	}

	daytime := IsDaytime(observed.Hour())
	code := *raw.WeatherCode
	text := Describe(code)

	return WeatherSnapshot{
		Place:           place,
		ObservedAtLocal: observed,
		TemperatureC:    tempC,
		TemperatureF:    tempF,
		FeelsLikeC:      tempC,
		FeelsLikeF:      tempF,
		HumidityPct:     int(math.Round(humidity)),
		WindKph:         wind,
		PressureHpa:     pressure(raw),
		ConditionCode:   code,
		ConditionText:   text,
		IsDaytime:       daytime,
		IconID:          IconFor(code, daytime),
		SunriseLocal:    sunrise,
		SunsetLocal:     sunset,
		BackgroundTheme: BackgroundFor(text, daytime),
		AmbientSound:    AmbientSoundFor(text),
	}, nil
}

func first(series []*float64) (float64, bool) {
	if len(series) == 0 || series[0] == nil {
		return 0, false
	}
	return *series[0], true
}

// windSpeed prefers the instantaneous reading and falls back to the leading
// hourly sample.
func windSpeed(raw RawConditions) (float64, error) {
	if raw.WindSpeedKph != nil {
		return *raw.WindSpeedKph, nil
	}
	if v, ok := first(raw.HourlyWindSpeed); ok {
		return v, nil
	}
	return 0, incomplete("wind speed")
}

func pressure(raw RawConditions) int {
	if raw.PressureHpa == nil {
		return PlaceholderPressureHpa
	}
	return *raw.PressureHpa
}

func requiredLocalTime(s, field string) (LocalTime, error) {
	if s == "" {
		return LocalTime{}, incomplete(field)
	}
	t, err := ParseLocalTime(s)
	if err != nil {
		return LocalTime{}, incomplete("parseable " + field)
	}
	return t, nil
}
