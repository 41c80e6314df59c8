package suggest

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/i474232898/weather-lookup/internal/common"
	"github.com/i474232898/weather-lookup/internal/metrics"
	"github.com/i474232898/weather-lookup/internal/weather"
)

const (
	DefaultDebounce = 300 * time.Millisecond
	DefaultTimeout  = 10 * time.Second
)

// Lookup fetches candidate places for a query.
type Lookup func(ctx context.Context, query string) ([]weather.Place, error)

// Renderer receives suggestion lists. weather.Presenter satisfies it.
type Renderer interface {
	RenderSuggestions(places []weather.Place)
}

// Timer is a scheduled call that can be stopped.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures an Engine.
type Option func(*Engine)

// WithDebounce sets the quiet window after the last input.
func WithDebounce(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.debounce = d
		}
	}
}

// WithTimeout bounds each lookup.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithAfterFunc replaces the timer source, mainly for tests.
func WithAfterFunc(after AfterFunc) Option {
	return func(e *Engine) {
		e.afterFunc = after
	}
}

// Engine debounces keystrokes into suggestion lookups. Only the query typed
// last within the quiet window is looked up, and a response is rendered
// only if no newer lookup was issued after it.
type Engine struct {
	lookup    Lookup
	renderer  Renderer
	debounce  time.Duration
	timeout   time.Duration
	afterFunc AfterFunc

	tracker Tracker

	mu         sync.Mutex
	pending    Timer
	generation uint64
	closed     bool
}

// New creates an Engine.
func New(lookup Lookup, renderer Renderer, opts ...Option) *Engine {
	e := &Engine{
		lookup:    lookup,
		renderer:  renderer,
		debounce:  DefaultDebounce,
		timeout:   DefaultTimeout,
		afterFunc: realAfterFunc,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Input handles one keystroke's worth of query text.
func (e *Engine) Input(query string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.generation++
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}

	if common.RuneLen(query) < weather.MinSuggestQueryLen {
		e.tracker.Invalidate()
		e.renderer.RenderSuggestions([]weather.Place{})
		return
	}

	generation := e.generation
	e.pending = e.afterFunc(e.debounce, func() {
		e.fire(generation, query)
	})
}

// Close stops any pending lookup; later input is ignored and in-flight
// results are dropped.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
	e.tracker.Invalidate()
}

func (e *Engine) fire(generation uint64, query string) {
	e.mu.Lock()
	// A keystroke arrived between the timer firing and this call.
	if e.closed || generation != e.generation {
		e.mu.Unlock()
		return
	}
	e.pending = nil
	ticket := e.tracker.Issue()
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	places, err := e.lookup(ctx, query)
	if err != nil {
		log.Printf("ERROR: suggestion lookup for %q failed: %v", query, err)
		metrics.RecordSuggestion("failed")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.tracker.IsLatest(ticket) {
		log.Printf("DEBUG: dropping stale suggestions for %q", query)
		metrics.RecordSuggestion("stale")
		return
	}
	e.renderer.RenderSuggestions(places)
	metrics.RecordSuggestion("rendered")
}
