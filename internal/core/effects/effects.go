// Package effects defines effect types as data structures representing I/O operations.
// Effects are pure data - they describe what should happen once a ledger
// mutation has committed, not how it happens.
package effects

// Effect is the base interface for all effects.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a structured log line.
type LogEffect struct {
	Level   string // "debug", "info", "warn", "error"
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// NotifyEffect represents a notification for observers.
// OccurredAt is unix seconds. CandidateID is zero for election-level events.
type NotifyEffect struct {
	Kind        string
	ElectionID  int64
	CandidateID int64
	Actor       string
	OccurredAt  int64
}

func (e NotifyEffect) EffectType() string { return "notify" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
