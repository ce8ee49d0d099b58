// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// Ledger is the secondary port for election persistence.
// Every mutation runs inside Update as one atomic unit: if fn returns an
// error, nothing fn wrote is kept. Reads run inside View and observe a
// state consistent with some serial order of committed updates.
type Ledger interface {
	// View runs fn against a consistent read snapshot.
	View(ctx context.Context, fn func(tx LedgerReader) error) error

	// Update runs fn with exclusive write access and commits if fn returns nil.
	Update(ctx context.Context, fn func(tx LedgerWriter) error) error
}

// LedgerReader is the read side of a ledger transaction.
type LedgerReader interface {
	// GetElection retrieves an election by ID. found is false when no
	// election has that ID.
	GetElection(ctx context.Context, id int64) (record *ElectionRecord, found bool, err error)

	// ListElections returns every election in creation order.
	ListElections(ctx context.Context) ([]*ElectionRecord, error)

	// GetCandidate retrieves a candidate by its global ID.
	GetCandidate(ctx context.Context, id int64) (record *CandidateRecord, found bool, err error)

	// ListCandidates returns the candidates of one election in registration order.
	ListCandidates(ctx context.Context, electionID int64) ([]*CandidateRecord, error)

	// HasVoted reports whether a vote receipt exists for (electionID, voter).
	HasVoted(ctx context.Context, electionID int64, voter string) (bool, error)

	// GetOwner returns the registry owner. found is false before initialization.
	GetOwner(ctx context.Context) (owner string, found bool, err error)
}

// LedgerWriter is the write side of a ledger transaction.
type LedgerWriter interface {
	LedgerReader

	// NextElectionID advances the election counter and returns the new value.
	NextElectionID(ctx context.Context) (int64, error)

	// NextCandidateID advances the global candidate counter and returns the new value.
	NextCandidateID(ctx context.Context) (int64, error)

	// CreateElection persists a new election.
	// The record must have ID pre-populated by the service layer.
	CreateElection(ctx context.Context, election *ElectionRecord) error

	// CreateCandidate persists a new candidate with a zero vote count.
	// The record must have ID pre-populated by the service layer.
	CreateCandidate(ctx context.Context, candidate *CandidateRecord) error

	// RecordVote writes the receipt and increments the candidate's vote count.
	RecordVote(ctx context.Context, receipt *VoteReceiptRecord) error

	// SetOwner stores the registry owner.
	SetOwner(ctx context.Context, owner string, at int64) error
}

// ElectionRecord represents an election as stored in persistence.
// Dates are unix seconds.
type ElectionRecord struct {
	ID        int64
	Name      string
	PostName  string
	Owner     string
	StartDate int64
	EndDate   int64
	CreatedAt int64
}

// CandidateRecord represents a candidate as stored in persistence.
type CandidateRecord struct {
	ID         int64
	ElectionID int64
	Name       string
	VoteCount  int64
	CreatedAt  int64
}

// VoteReceiptRecord marks that Voter has voted in ElectionID.
type VoteReceiptRecord struct {
	ElectionID  int64
	Voter       string
	CandidateID int64
	CastAt      int64
}
