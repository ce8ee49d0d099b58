package election

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Kind    error  // Error kind (populated when not allowed)
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
// The returned error matches Kind with errors.Is.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return &GuardError{Kind: r.Kind, Reason: r.Reason}
}

func allow() GuardResult {
	return GuardResult{Allowed: true}
}

func deny(kind error, format string, args ...any) GuardResult {
	return GuardResult{
		Allowed: false,
		Kind:    kind,
		Reason:  fmt.Sprintf(format, args...),
	}
}

// ScheduleContext provides context for election creation guards.
// All timestamps are unix seconds.
type ScheduleContext struct {
	Caller    string
	Now       int64
	StartDate int64
	EndDate   int64
}

// CanCreateElection evaluates whether an election with the given schedule can be created.
// Rules, checked in order: start must be in the future, end must be in the
// future, end must be later than start.
func CanCreateElection(ctx ScheduleContext) GuardResult {
	if strings.TrimSpace(ctx.Caller) == "" {
		return deny(ErrInvalidInput, "Caller identity is required to create an election")
	}
	if ctx.StartDate <= ctx.Now {
		return deny(ErrInvalidSchedule, "Election starting date must be in the future")
	}
	if ctx.EndDate <= ctx.Now {
		return deny(ErrInvalidSchedule, "Election ending date must be in the future")
	}
	if ctx.EndDate <= ctx.StartDate {
		return deny(ErrInvalidSchedule, "Election ending date must be later than starting date")
	}
	return allow()
}

// RegistrationContext provides context for candidate registration guards.
type RegistrationContext struct {
	Caller         string
	ElectionID     int64
	ElectionExists bool
	Now            int64
	StartDate      int64
}

// CanAddCandidate evaluates whether a candidate can be registered.
// Rule: registration is only allowed strictly before the election starts.
func CanAddCandidate(ctx RegistrationContext) GuardResult {
	if strings.TrimSpace(ctx.Caller) == "" {
		return deny(ErrInvalidInput, "Caller identity is required to add a candidate")
	}
	if !ctx.ElectionExists {
		return deny(ErrNotFound, "Election %d not found", ctx.ElectionID)
	}
	if ctx.Now >= ctx.StartDate {
		return deny(ErrRegistrationClosed, "Candidate registration for election %d closed when voting started", ctx.ElectionID)
	}
	return allow()
}

// VoteContext provides context for vote guards.
// CandidateElectionID is the election the candidate was registered to.
type VoteContext struct {
	Voter               string
	ElectionID          int64
	ElectionExists      bool
	CandidateID         int64
	CandidateExists     bool
	CandidateElectionID int64
	Now                 int64
	StartDate           int64
	EndDate             int64
	HasVoted            bool
}

// CanVote evaluates whether a vote can be accepted.
// Rules, checked in order: election and candidate must exist and belong
// together, voting must be open, the voter must not have voted yet.
func CanVote(ctx VoteContext) GuardResult {
	if strings.TrimSpace(ctx.Voter) == "" {
		return deny(ErrInvalidInput, "Voter identity is required to vote")
	}
	if !ctx.ElectionExists {
		return deny(ErrNotFound, "Election %d not found", ctx.ElectionID)
	}
	if !ctx.CandidateExists {
		return deny(ErrNotFound, "Candidate %d not found", ctx.CandidateID)
	}
	if ctx.CandidateElectionID != ctx.ElectionID {
		return deny(ErrNotFound, "Candidate %d is not registered in election %d", ctx.CandidateID, ctx.ElectionID)
	}
	if !PhaseAt(ctx.Now, ctx.StartDate, ctx.EndDate).AcceptsVotes() {
		return deny(ErrVotingClosed, "Votes can only be cast during voting hours of election %d", ctx.ElectionID)
	}
	if ctx.HasVoted {
		return deny(ErrAlreadyVoted, "%s has already voted in election %d", ctx.Voter, ctx.ElectionID)
	}
	return allow()
}

// InitContext provides context for registry initialization guards.
type InitContext struct {
	RequestedOwner string
	CurrentOwner   string
	Initialized    bool
}

// CanInitialize evaluates whether the registry owner can be set.
// Rule: the owner is set once; repeating it with the same owner is a no-op.
func CanInitialize(ctx InitContext) GuardResult {
	if strings.TrimSpace(ctx.RequestedOwner) == "" {
		return deny(ErrInvalidInput, "Registry owner must not be empty")
	}
	if ctx.Initialized && ctx.CurrentOwner != ctx.RequestedOwner {
		return deny(ErrAlreadyInitialized, "Registry is already owned by %s", ctx.CurrentOwner)
	}
	return allow()
}
