package election

// Phase is the lifecycle phase of an election. It is always derived from
// the clock and the election's dates, never stored.
type Phase string

const (
	PhasePending Phase = "pending"
	PhaseOpen    Phase = "open"
	PhaseClosed  Phase = "closed"
)

// PhaseAt derives the phase at now (unix seconds).
// Pending before start, Open in [start, end), Closed from end onwards.
func PhaseAt(now, startDate, endDate int64) Phase {
	switch {
	case now < startDate:
		return PhasePending
	case now < endDate:
		return PhaseOpen
	default:
		return PhaseClosed
	}
}

// AcceptsCandidates reports whether candidate registration is allowed.
func (p Phase) AcceptsCandidates() bool { return p == PhasePending }

// AcceptsVotes reports whether votes are allowed.
func (p Phase) AcceptsVotes() bool { return p == PhaseOpen }
