// Package clock provides Clock implementations for the ledger services.
package clock

import (
	"sync"
	"time"

	"github.com/example/electoral/internal/ports/secondary"
)

// System reads the wall clock.
type System struct{}

// Now returns the current time.
func (System) Now() time.Time { return time.Now() }

// Manual is a settable clock for tests and dry runs.
// It never moves backwards: Set to an earlier instant is ignored.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the clock's current instant.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d. Negative durations are ignored.
func (m *Manual) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Set moves the clock to t if t is not before the current instant.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	if t.After(m.now) {
		m.now = t
	}
	m.mu.Unlock()
}

var (
	_ secondary.Clock = System{}
	_ secondary.Clock = (*Manual)(nil)
)
