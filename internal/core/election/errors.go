// Package election contains the pure business logic for the election ledger.
// This is part of the Functional Core - no I/O, only pure functions.
package election

import "errors"

// Error kinds surfaced by ledger operations. Use errors.Is to match them.
var (
	ErrInvalidSchedule    = errors.New("invalid schedule")
	ErrNotFound           = errors.New("not found")
	ErrRegistrationClosed = errors.New("registration closed")
	ErrVotingClosed       = errors.New("voting closed")
	ErrAlreadyVoted       = errors.New("already voted")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyInitialized = errors.New("already initialized")

	// ErrStorage marks failures of the persistence collaborator. It is never
	// returned for caller-input problems.
	ErrStorage = errors.New("storage failure")
)

var callerKinds = []error{
	ErrInvalidSchedule,
	ErrNotFound,
	ErrRegistrationClosed,
	ErrVotingClosed,
	ErrAlreadyVoted,
	ErrInvalidInput,
	ErrAlreadyInitialized,
}

// GuardError is a rejected guard: a kind plus the human-readable reason.
type GuardError struct {
	Kind   error
	Reason string
}

func (e *GuardError) Error() string { return e.Reason }

func (e *GuardError) Unwrap() error { return e.Kind }

// IsCallerError reports whether err is one of the caller-input kinds.
func IsCallerError(err error) bool {
	for _, kind := range callerKinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// KindName returns a stable name for the kind of err, used in logs and CLI output.
func KindName(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidSchedule):
		return "InvalidSchedule"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrRegistrationClosed):
		return "RegistrationClosed"
	case errors.Is(err, ErrVotingClosed):
		return "VotingClosed"
	case errors.Is(err, ErrAlreadyVoted):
		return "AlreadyVoted"
	case errors.Is(err, ErrInvalidInput):
		return "InvalidInput"
	case errors.Is(err, ErrAlreadyInitialized):
		return "AlreadyInitialized"
	case errors.Is(err, ErrStorage):
		return "Storage"
	default:
		return "Unknown"
	}
}
