package suggest

import "sync/atomic"

// Ticket identifies one issued lookup.
type Ticket uint64

// Tracker hands out increasing tickets so that a response can be checked
// against the most recently issued request.
type Tracker struct {
	latest atomic.Uint64
}

// Issue returns a ticket newer than every ticket issued before.
func (t *Tracker) Issue() Ticket {
	return Ticket(t.latest.Add(1))
}

// IsLatest reports whether no ticket has been issued after ticket.
func (t *Tracker) IsLatest(ticket Ticket) bool {
	return uint64(ticket) == t.latest.Load()
}

// Invalidate makes every outstanding ticket stale.
func (t *Tracker) Invalidate() {
	t.latest.Add(1)
}
