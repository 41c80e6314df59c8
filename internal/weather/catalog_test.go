package weather

import (
	"math"
	"testing"
)

func TestToFahrenheit(t *testing.T) {
	for _, c := range []float64{-40, -17.5, 0, 12.3, 20, 37, 100} {
		if got, want := ToFahrenheit(c), c*9/5+32; got != want {
			t.Errorf("ToFahrenheit(%v) = %v, want %v", c, got, want)
		}
		if got := ToCelsius(ToFahrenheit(c)); math.Abs(got-c) > 1e-9 {
			t.Errorf("ToCelsius(ToFahrenheit(%v)) = %v", c, got)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{in: "c", want: Celsius},
		{in: "Celsius", want: Celsius},
		{in: " F ", want: Fahrenheit},
		{in: "fahrenheit", want: Fahrenheit},
		{in: "kelvin", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseUnit(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseUnit(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsDaytime(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := hour >= 6 && hour < 18
		if got := IsDaytime(hour); got != want {
			t.Errorf("IsDaytime(%d) = %v, want %v", hour, got, want)
		}
	}
}

func TestCatalogSize(t *testing.T) {
	if got := len(Codes()); got != 28 {
		t.Fatalf("expected 28 catalogued codes, got %d", got)
	}
	for _, code := range Codes() {
		if Describe(code) == UnknownCondition {
			t.Errorf("code %d has no description", code)
		}
		if _, ok := conditionIcons[code]; !ok {
			t.Errorf("code %d has no icon", code)
		}
	}
}

func TestUnknownCodes(t *testing.T) {
	for _, code := range []int{-1, 4, 44, 50, 60, 100, 1000} {
		if got := Describe(code); got != UnknownCondition {
			t.Errorf("Describe(%d) = %q, want %q", code, got, UnknownCondition)
		}
		for _, day := range []bool{true, false} {
			if got := IconFor(code, day); got != DefaultIcon {
				t.Errorf("IconFor(%d, %v) = %q, want %q", code, day, got, DefaultIcon)
			}
		}
	}
}

func TestIconDayNightVariants(t *testing.T) {
	for _, code := range Codes() {
		day, night := IconFor(code, true), IconFor(code, false)
		switch code {
		case 0, 1, 2:
			if day == night {
				t.Errorf("code %d: expected distinct day/night icons, both %q", code, day)
			}
		default:
			if day != night {
				t.Errorf("code %d: expected same icon, got day %q night %q", code, day, night)
			}
		}
	}
}
