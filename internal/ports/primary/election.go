// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"
	"time"
)

// ElectionService defines the primary port for the election registry.
// The caller identity is read from ctx (see ctxutil.WithCaller).
type ElectionService interface {
	// Initialize sets the registry owner. Repeating it with the same owner is a no-op.
	Initialize(ctx context.Context, owner string) error

	// Owner returns the registry owner.
	Owner(ctx context.Context) (string, error)

	// CreateElection creates a new election owned by the caller.
	CreateElection(ctx context.Context, req CreateElectionRequest) (*CreateElectionResponse, error)

	// AddCandidate registers a candidate while the election is still pending.
	AddCandidate(ctx context.Context, req AddCandidateRequest) (*AddCandidateResponse, error)

	// Vote records one vote by the caller while the election is open.
	Vote(ctx context.Context, req VoteRequest) error

	// GetElections returns every election in creation order.
	GetElections(ctx context.Context) ([]*Election, error)

	// GetElection retrieves an election by ID.
	GetElection(ctx context.Context, electionID int64) (*Election, error)

	// GetElectionCandidates returns the election's candidates in registration order.
	GetElectionCandidates(ctx context.Context, electionID int64) ([]*Candidate, error)

	// Results returns the tally of an election.
	Results(ctx context.Context, electionID int64) (*Results, error)
}

// CreateElectionRequest contains parameters for creating an election.
// Dates are truncated to whole seconds.
type CreateElectionRequest struct {
	Name      string
	PostName  string
	StartDate time.Time
	EndDate   time.Time
}

// CreateElectionResponse contains the result of creating an election.
type CreateElectionResponse struct {
	ElectionID int64
	Election   *Election
}

// AddCandidateRequest contains parameters for registering a candidate.
type AddCandidateRequest struct {
	ElectionID int64
	Name       string
}

// AddCandidateResponse contains the result of registering a candidate.
type AddCandidateResponse struct {
	CandidateID int64
	Candidate   *Candidate
}

// VoteRequest contains parameters for casting a vote.
type VoteRequest struct {
	ElectionID  int64
	CandidateID int64
}

// Election is the public view of an election.
// Phase is derived from the clock at read time.
type Election struct {
	ID        int64
	Name      string
	PostName  string
	Owner     string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	Phase     string
}

// Candidate is the public view of a candidate.
type Candidate struct {
	ID         int64
	ElectionID int64
	Name       string
	VoteCount  int64
	CreatedAt  time.Time
}

// Results is the tally of one election.
type Results struct {
	Election   *Election
	Candidates []*Candidate
	TotalVotes int64
	LeaderIDs  []int64
}

// IsLeader reports whether candidateID holds the highest count.
func (r *Results) IsLeader(candidateID int64) bool {
	for _, id := range r.LeaderIDs {
		if id == candidateID {
			return true
		}
	}
	return false
}
