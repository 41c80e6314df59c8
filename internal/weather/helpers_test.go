package weather

import (
	"context"
	"sync"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// rawAt returns complete raw conditions observed at the given local time.
func rawAt(tempC float64, code int, observed string) RawConditions {
	return RawConditions{
		TemperatureC:    floatPtr(tempC),
		WindSpeedKph:    floatPtr(11.2),
		WeatherCode:     intPtr(code),
		Time:            observed,
		HourlyHumidity:  []*float64{floatPtr(64), floatPtr(70)},
		HourlyWindSpeed: []*float64{floatPtr(9.5)},
		Sunrise:         "2024-06-01T05:47",
		Sunset:          "2024-06-01T21:43",
		PressureHpa:     intPtr(PlaceholderPressureHpa),
	}
}

type fakeSearcher struct {
	places []Place
	err    error

	mu    sync.Mutex
	calls []string
}

func (f *fakeSearcher) SearchPlaces(ctx context.Context, name string, count int) ([]Place, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	if count < len(f.places) {
		return f.places[:count], nil
	}
	return f.places, nil
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeReverse struct {
	places []Place
	err    error
}

func (f *fakeReverse) ReversePlaces(ctx context.Context, lat, lon float64) ([]Place, error) {
	return f.places, f.err
}

type fakeFetcher struct {
	raw RawConditions
	err error
}

func (f *fakeFetcher) Name() string { return "fake" }

func (f *fakeFetcher) Fetch(ctx context.Context, lat, lon float64) (RawConditions, error) {
	return f.raw, f.err
}

type fakeLocator struct {
	lat, lon float64
	err      error
}

func (f *fakeLocator) Locate(ctx context.Context) (float64, float64, error) {
	return f.lat, f.lon, f.err
}

type rendered struct {
	snapshot WeatherSnapshot
	unit     Unit
}

type recordingPresenter struct {
	mu          sync.Mutex
	renders     []rendered
	suggestions [][]Place
	errors      []string
	loading     []bool
}

func (p *recordingPresenter) Render(snapshot WeatherSnapshot, unit Unit) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renders = append(p.renders, rendered{snapshot: snapshot, unit: unit})
}

func (p *recordingPresenter) RenderSuggestions(places []Place) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.suggestions = append(p.suggestions, places)
}

func (p *recordingPresenter) ShowError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errors = append(p.errors, message)
}

func (p *recordingPresenter) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = append(p.loading, loading)
}

var paris = Place{Name: "Paris", Region: "Île-de-France", Country: "France", Latitude: 48.85341, Longitude: 2.3488}
