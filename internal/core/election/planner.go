package election

import (
	"github.com/example/electoral/internal/core/effects"
)

// Notification kinds published after a committed mutation.
const (
	EventElectionCreated = "ElectionCreated"
	EventCandidateAdded  = "CandidateAdded"
)

// PlanElectionCreated returns the effects that follow a committed election creation.
func PlanElectionCreated(electionID int64, caller string, at int64) []effects.Effect {
	return []effects.Effect{
		effects.NotifyEffect{
			Kind:       EventElectionCreated,
			ElectionID: electionID,
			Actor:      caller,
			OccurredAt: at,
		},
		effects.LogEffect{
			Level:   "info",
			Message: "election created",
			Fields:  map[string]any{"election_id": electionID, "owner": caller},
		},
	}
}

// PlanCandidateAdded returns the effects that follow a committed candidate registration.
func PlanCandidateAdded(electionID, candidateID int64, caller string, at int64) []effects.Effect {
	return []effects.Effect{
		effects.NotifyEffect{
			Kind:        EventCandidateAdded,
			ElectionID:  electionID,
			CandidateID: candidateID,
			Actor:       caller,
			OccurredAt:  at,
		},
		effects.LogEffect{
			Level:   "info",
			Message: "candidate added",
			Fields:  map[string]any{"election_id": electionID, "candidate_id": candidateID},
		},
	}
}

// PlanVoteCast returns the effects that follow a committed vote.
// Votes publish no notification; only an audit log line is produced.
func PlanVoteCast(electionID, candidateID int64, voter string) []effects.Effect {
	return []effects.Effect{
		effects.LogEffect{
			Level:   "info",
			Message: "vote recorded",
			Fields:  map[string]any{"election_id": electionID, "candidate_id": candidateID, "voter": voter},
		},
	}
}
