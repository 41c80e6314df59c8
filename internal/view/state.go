package view

import (
	"sync"
	"time"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// View is everything a client needs to draw the widget.
type View struct {
	Current     *Display        `json:"current,omitempty"`
	Suggestions []weather.Place `json:"suggestions"`
	Error       string          `json:"error,omitempty"`
	Loading     bool            `json:"loading"`
	LastUpdated *time.Time      `json:"lastUpdated,omitempty"`
}

// State is a concurrency-safe in-memory weather.Presenter. It holds only
// what is on screen now; nothing is kept from earlier renders.
type State struct {
	mu sync.RWMutex

	current     *Display
	suggestions []weather.Place
	errMessage  string
	lastUpdated time.Time

	// Overlapping cycles each set and clear loading; the indicator is on
	// while any of them runs.
	loading int

	now func() time.Time
}

// NewState creates an empty State.
func NewState() *State {
	return &State{
		suggestions: []weather.Place{},
		now:         time.Now,
	}
}

// Render replaces the displayed weather and clears any shown error.
func (s *State) Render(snapshot weather.WeatherSnapshot, unit weather.Unit) {
	d := Format(snapshot, unit)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &d
	s.errMessage = ""
	s.lastUpdated = s.now()
}

// RenderSuggestions replaces the suggestion list.
func (s *State) RenderSuggestions(places []weather.Place) {
	list := make([]weather.Place, len(places))
	copy(list, places)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = list
}

// ShowError shows message until the next render or DismissError.
func (s *State) ShowError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = message
}

// DismissError hides the shown error.
func (s *State) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = ""
}

func (s *State) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if loading {
		s.loading++
		return
	}
	if s.loading > 0 {
		s.loading--
	}
}

// View returns a copy of the current presentation state.
func (s *State) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View{
		Suggestions: make([]weather.Place, len(s.suggestions)),
		Error:       s.errMessage,
		Loading:     s.loading > 0,
	}
	copy(v.Suggestions, s.suggestions)

	if s.current != nil {
		d := *s.current
		v.Current = &d
	}
	if !s.lastUpdated.IsZero() {
		t := s.lastUpdated
		v.LastUpdated = &t
	}
	return v
}
