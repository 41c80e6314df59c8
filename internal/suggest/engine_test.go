package suggest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// fakeClock fires timers synchronously when advanced.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// AdvanceTo moves the clock to at, running due timers in deadline order.
func (c *fakeClock) AdvanceTo(at time.Duration) {
	for {
		c.mu.Lock()
		var next *fakeTimer
		for _, t := range c.timers {
			if t.stopped || t.fired || t.at > at {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			if at > c.now {
				c.now = at
			}
			c.mu.Unlock()
			return
		}
		next.fired = true
		c.now = next.at
		c.mu.Unlock()

		next.f()
	}
}

type lookupCall struct {
	query string
	at    time.Duration
}

type recordingRenderer struct {
	mu    sync.Mutex
	lists [][]weather.Place
}

func (r *recordingRenderer) RenderSuggestions(places []weather.Place) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists = append(r.lists, places)
}

func (r *recordingRenderer) rendered() [][]weather.Place {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]weather.Place(nil), r.lists...)
}

type harness struct {
	clock    *fakeClock
	renderer *recordingRenderer
	engine   *Engine

	mu    sync.Mutex
	calls []lookupCall
}

func newHarness(t *testing.T, lookup func(h *harness, query string) ([]weather.Place, error)) *harness {
	t.Helper()
	h := &harness{clock: &fakeClock{}, renderer: &recordingRenderer{}}
	h.engine = New(
		func(ctx context.Context, query string) ([]weather.Place, error) {
			h.mu.Lock()
			h.calls = append(h.calls, lookupCall{query: query, at: h.clock.now})
			h.mu.Unlock()
			return lookup(h, query)
		},
		h.renderer,
		WithDebounce(300*time.Millisecond),
		WithAfterFunc(h.clock.AfterFunc),
	)
	t.Cleanup(h.engine.Close)
	return h
}

// typeAt feeds each query at its offset, advancing the clock between them.
func (h *harness) typeAt(inputs map[time.Duration]string, order ...time.Duration) {
	for _, at := range order {
		h.clock.AdvanceTo(at)
		h.engine.Input(inputs[at])
	}
}

func echoLookup(h *harness, query string) ([]weather.Place, error) {
	return []weather.Place{{Name: query}}, nil
}

func TestEngineDebounceCollapsesKeystrokes(t *testing.T) {
	h := newHarness(t, echoLookup)

	h.typeAt(map[time.Duration]string{
		0:                      "Lo",
		100 * time.Millisecond: "Lon",
		350 * time.Millisecond: "Lond",
	}, 0, 100*time.Millisecond, 350*time.Millisecond)
	h.clock.AdvanceTo(2 * time.Second)

	if len(h.calls) != 1 {
		t.Fatalf("expected 1 lookup, got %d: %+v", len(h.calls), h.calls)
	}
	if h.calls[0].query != "Lond" {
		t.Errorf("expected lookup for Lond, got %q", h.calls[0].query)
	}
	if h.calls[0].at < 650*time.Millisecond {
		t.Errorf("lookup fired too early at %v", h.calls[0].at)
	}

	lists := h.renderer.rendered()
	if len(lists) != 1 || lists[0][0].Name != "Lond" {
		t.Errorf("expected one rendered list for Lond, got %+v", lists)
	}
}

func TestEngineFiresOncePerQuietWindow(t *testing.T) {
	h := newHarness(t, echoLookup)

	// The gap between "Lon" and "Lond" exceeds the window, so both fire.
	h.typeAt(map[time.Duration]string{
		0:                      "Lo",
		100 * time.Millisecond: "Lon",
		450 * time.Millisecond: "Lond",
	}, 0, 100*time.Millisecond, 450*time.Millisecond)
	h.clock.AdvanceTo(2 * time.Second)

	if len(h.calls) != 2 {
		t.Fatalf("expected 2 lookups, got %+v", h.calls)
	}
	if h.calls[0].query != "Lon" || h.calls[0].at != 400*time.Millisecond {
		t.Errorf("unexpected first lookup %+v", h.calls[0])
	}
	if h.calls[1].query != "Lond" || h.calls[1].at != 750*time.Millisecond {
		t.Errorf("unexpected second lookup %+v", h.calls[1])
	}
}

func TestEngineShortQueryClearsWithoutLookup(t *testing.T) {
	h := newHarness(t, echoLookup)

	h.engine.Input("Lo")
	h.clock.AdvanceTo(100 * time.Millisecond)
	h.engine.Input("L")
	h.clock.AdvanceTo(time.Second)

	if len(h.calls) != 0 {
		t.Fatalf("expected no lookups, got %+v", h.calls)
	}
	lists := h.renderer.rendered()
	if len(lists) != 1 || lists[0] == nil || len(lists[0]) != 0 {
		t.Errorf("expected a single empty list, got %+v", lists)
	}
}

func TestEngineDropsStaleResponse(t *testing.T) {
	// While "Par" is in flight the user types on; "Paris" is issued later
	// and answers first, so the late "Par" answer must be discarded.
	h := newHarness(t, func(h *harness, query string) ([]weather.Place, error) {
		if query == "Par" {
			h.engine.Input("Paris")
			h.clock.AdvanceTo(h.clock.now + 300*time.Millisecond)
		}
		return []weather.Place{{Name: query}}, nil
	})

	h.engine.Input("Par")
	h.clock.AdvanceTo(300 * time.Millisecond)

	if len(h.calls) != 2 {
		t.Fatalf("expected 2 lookups, got %+v", h.calls)
	}
	lists := h.renderer.rendered()
	if len(lists) != 1 {
		t.Fatalf("expected only the newest list rendered, got %+v", lists)
	}
	if lists[0][0].Name != "Paris" {
		t.Errorf("expected Paris suggestions, got %+v", lists[0])
	}
}

func TestEngineShortQueryInvalidatesInFlight(t *testing.T) {
	h := newHarness(t, func(h *harness, query string) ([]weather.Place, error) {
		h.engine.Input("")
		return []weather.Place{{Name: query}}, nil
	})

	h.engine.Input("Ber")
	h.clock.AdvanceTo(time.Second)

	lists := h.renderer.rendered()
	if len(lists) != 1 || len(lists[0]) != 0 {
		t.Errorf("expected only the cleared list, got %+v", lists)
	}
}

func TestEngineLookupErrorRendersNothing(t *testing.T) {
	h := newHarness(t, func(*harness, string) ([]weather.Place, error) {
		return nil, weather.FetchError("geocoding", errors.New("timeout"))
	})

	h.engine.Input("Rome")
	h.clock.AdvanceTo(time.Second)

	if len(h.calls) != 1 {
		t.Fatalf("expected 1 lookup, got %d", len(h.calls))
	}
	if lists := h.renderer.rendered(); len(lists) != 0 {
		t.Errorf("expected nothing rendered, got %+v", lists)
	}
}

func TestEngineClose(t *testing.T) {
	h := newHarness(t, echoLookup)

	h.engine.Input("Oslo")
	h.engine.Close()
	h.engine.Input("Oslo")
	h.clock.AdvanceTo(time.Second)

	if len(h.calls) != 0 {
		t.Errorf("expected no lookups after close, got %+v", h.calls)
	}
}

func TestTracker(t *testing.T) {
	var tr Tracker

	a := tr.Issue()
	if !tr.IsLatest(a) {
		t.Fatal("fresh ticket should be latest")
	}
	b := tr.Issue()
	if tr.IsLatest(a) || !tr.IsLatest(b) {
		t.Error("only the newest ticket should be latest")
	}
	tr.Invalidate()
	if tr.IsLatest(b) {
		t.Error("invalidate should make outstanding tickets stale")
	}
	if c := tr.Issue(); c <= b {
		t.Errorf("tickets should increase, got %d after %d", c, b)
	}
}
