package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/electoral/internal/core/effects"
	coreelection "github.com/example/electoral/internal/core/election"
	"github.com/example/electoral/internal/ctxutil"
	"github.com/example/electoral/internal/ports/primary"
	"github.com/example/electoral/internal/ports/secondary"
)

const serviceModule = "electoral/registry"

// ElectionServiceImpl implements the ElectionService interface.
type ElectionServiceImpl struct {
	ledger   secondary.Ledger
	clock    secondary.Clock
	executor EffectExecutor
	logger   *slog.Logger
}

// NewElectionService creates a new ElectionService with injected dependencies.
func NewElectionService(
	ledger secondary.Ledger,
	clock secondary.Clock,
	executor EffectExecutor,
	logger *slog.Logger,
) *ElectionServiceImpl {
	return &ElectionServiceImpl{
		ledger:   ledger,
		clock:    clock,
		executor: executor,
		logger:   ResolveLogger(logger),
	}
}

// Initialize sets the registry owner.
func (s *ElectionServiceImpl) Initialize(ctx context.Context, owner string) error {
	err := s.ledger.Update(ctx, func(tx secondary.LedgerWriter) error {
		current, initialized, err := tx.GetOwner(ctx)
		if err != nil {
			return err
		}
		guard := coreelection.CanInitialize(coreelection.InitContext{
			RequestedOwner: owner,
			CurrentOwner:   current,
			Initialized:    initialized,
		})
		if !guard.Allowed {
			return guard.Error()
		}
		if initialized {
			return nil
		}
		return tx.SetOwner(ctx, owner, s.now())
	})
	if err != nil {
		return s.fail(ctx, "initialize", err)
	}
	s.logger.Info("registry initialized",
		"event", "registry_initialized",
		"module", serviceModule,
		"layer", "application",
		"owner", owner,
	)
	return nil
}

// Owner returns the registry owner.
func (s *ElectionServiceImpl) Owner(ctx context.Context) (string, error) {
	var owner string
	err := s.ledger.View(ctx, func(tx secondary.LedgerReader) error {
		current, initialized, err := tx.GetOwner(ctx)
		if err != nil {
			return err
		}
		if !initialized {
			return &coreelection.GuardError{Kind: coreelection.ErrNotFound, Reason: "Registry has not been initialized"}
		}
		owner = current
		return nil
	})
	if err != nil {
		return "", s.fail(ctx, "owner", err)
	}
	return owner, nil
}

// CreateElection creates a new election owned by the caller.
func (s *ElectionServiceImpl) CreateElection(ctx context.Context, req primary.CreateElectionRequest) (*primary.CreateElectionResponse, error) {
	caller := ctxutil.CallerFromContext(ctx)

	var record *secondary.ElectionRecord
	err := s.ledger.Update(ctx, func(tx secondary.LedgerWriter) error {
		// 1. Guard check against the clock at commit time
		now := s.now()
		guard := coreelection.CanCreateElection(coreelection.ScheduleContext{
			Caller:    caller,
			Now:       now,
			StartDate: req.StartDate.Unix(),
			EndDate:   req.EndDate.Unix(),
		})
		if !guard.Allowed {
			return guard.Error()
		}

		// 2. Allocate the next election ID
		id, err := tx.NextElectionID(ctx)
		if err != nil {
			return fmt.Errorf("failed to allocate election ID: %w", err)
		}

		// 3. Persist
		record = &secondary.ElectionRecord{
			ID:        id,
			Name:      req.Name,
			PostName:  req.PostName,
			Owner:     caller,
			StartDate: req.StartDate.Unix(),
			EndDate:   req.EndDate.Unix(),
			CreatedAt: now,
		}
		return tx.CreateElection(ctx, record)
	})
	if err != nil {
		return nil, s.fail(ctx, "create_election", err)
	}

	// 4. Notify observers once committed
	s.execute(ctx, coreelection.PlanElectionCreated(record.ID, caller, record.CreatedAt))

	return &primary.CreateElectionResponse{
		ElectionID: record.ID,
		Election:   s.recordToElection(record, record.CreatedAt),
	}, nil
}

// AddCandidate registers a candidate while the election is still pending.
func (s *ElectionServiceImpl) AddCandidate(ctx context.Context, req primary.AddCandidateRequest) (*primary.AddCandidateResponse, error) {
	caller := ctxutil.CallerFromContext(ctx)

	var record *secondary.CandidateRecord
	err := s.ledger.Update(ctx, func(tx secondary.LedgerWriter) error {
		election, found, err := tx.GetElection(ctx, req.ElectionID)
		if err != nil {
			return err
		}

		now := s.now()
		regCtx := coreelection.RegistrationContext{
			Caller:         caller,
			ElectionID:     req.ElectionID,
			ElectionExists: found,
			Now:            now,
		}
		if found {
			regCtx.StartDate = election.StartDate
		}
		if guard := coreelection.CanAddCandidate(regCtx); !guard.Allowed {
			return guard.Error()
		}

		id, err := tx.NextCandidateID(ctx)
		if err != nil {
			return fmt.Errorf("failed to allocate candidate ID: %w", err)
		}

		record = &secondary.CandidateRecord{
			ID:         id,
			ElectionID: req.ElectionID,
			Name:       req.Name,
			CreatedAt:  now,
		}
		return tx.CreateCandidate(ctx, record)
	})
	if err != nil {
		return nil, s.fail(ctx, "add_candidate", err)
	}

	s.execute(ctx, coreelection.PlanCandidateAdded(record.ElectionID, record.ID, caller, record.CreatedAt))

	return &primary.AddCandidateResponse{
		CandidateID: record.ID,
		Candidate:   s.recordToCandidate(record),
	}, nil
}

// Vote records one vote by the caller while the election is open.
func (s *ElectionServiceImpl) Vote(ctx context.Context, req primary.VoteRequest) error {
	voter := ctxutil.CallerFromContext(ctx)

	err := s.ledger.Update(ctx, func(tx secondary.LedgerWriter) error {
		voteCtx := coreelection.VoteContext{
			Voter:       voter,
			ElectionID:  req.ElectionID,
			CandidateID: req.CandidateID,
			Now:         s.now(),
		}

		election, found, err := tx.GetElection(ctx, req.ElectionID)
		if err != nil {
			return err
		}
		if found {
			voteCtx.ElectionExists = true
			voteCtx.StartDate = election.StartDate
			voteCtx.EndDate = election.EndDate

			candidate, candidateFound, err := tx.GetCandidate(ctx, req.CandidateID)
			if err != nil {
				return err
			}
			if candidateFound {
				voteCtx.CandidateExists = true
				voteCtx.CandidateElectionID = candidate.ElectionID
			}

			if voter != "" {
				voted, err := tx.HasVoted(ctx, req.ElectionID, voter)
				if err != nil {
					return err
				}
				voteCtx.HasVoted = voted
			}
		}

		if guard := coreelection.CanVote(voteCtx); !guard.Allowed {
			return guard.Error()
		}

		return tx.RecordVote(ctx, &secondary.VoteReceiptRecord{
			ElectionID:  req.ElectionID,
			Voter:       voter,
			CandidateID: req.CandidateID,
			CastAt:      voteCtx.Now,
		})
	})
	if err != nil {
		return s.fail(ctx, "vote", err)
	}

	s.execute(ctx, coreelection.PlanVoteCast(req.ElectionID, req.CandidateID, voter))
	return nil
}

// GetElections returns every election in creation order.
func (s *ElectionServiceImpl) GetElections(ctx context.Context) ([]*primary.Election, error) {
	var records []*secondary.ElectionRecord
	err := s.ledger.View(ctx, func(tx secondary.LedgerReader) error {
		var err error
		records, err = tx.ListElections(ctx)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "get_elections", err)
	}

	now := s.now()
	elections := make([]*primary.Election, len(records))
	for i, r := range records {
		elections[i] = s.recordToElection(r, now)
	}
	return elections, nil
}

// GetElection retrieves an election by ID.
func (s *ElectionServiceImpl) GetElection(ctx context.Context, electionID int64) (*primary.Election, error) {
	var record *secondary.ElectionRecord
	err := s.ledger.View(ctx, func(tx secondary.LedgerReader) error {
		var err error
		record, err = mustGetElection(ctx, tx, electionID)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "get_election", err)
	}
	return s.recordToElection(record, s.now()), nil
}

// GetElectionCandidates returns the election's candidates in registration order.
func (s *ElectionServiceImpl) GetElectionCandidates(ctx context.Context, electionID int64) ([]*primary.Candidate, error) {
	var records []*secondary.CandidateRecord
	err := s.ledger.View(ctx, func(tx secondary.LedgerReader) error {
		if _, err := mustGetElection(ctx, tx, electionID); err != nil {
			return err
		}
		var err error
		records, err = tx.ListCandidates(ctx, electionID)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "get_election_candidates", err)
	}

	candidates := make([]*primary.Candidate, len(records))
	for i, r := range records {
		candidates[i] = s.recordToCandidate(r)
	}
	return candidates, nil
}

// Results returns the tally of an election.
func (s *ElectionServiceImpl) Results(ctx context.Context, electionID int64) (*primary.Results, error) {
	var (
		election   *secondary.ElectionRecord
		candidates []*secondary.CandidateRecord
	)
	err := s.ledger.View(ctx, func(tx secondary.LedgerReader) error {
		var err error
		if election, err = mustGetElection(ctx, tx, electionID); err != nil {
			return err
		}
		candidates, err = tx.ListCandidates(ctx, electionID)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "results", err)
	}

	votes := make([]coreelection.CandidateVotes, len(candidates))
	out := make([]*primary.Candidate, len(candidates))
	for i, c := range candidates {
		votes[i] = coreelection.CandidateVotes{CandidateID: c.ID, VoteCount: c.VoteCount}
		out[i] = s.recordToCandidate(c)
	}
	tally := coreelection.ComputeTally(votes)

	return &primary.Results{
		Election:   s.recordToElection(election, s.now()),
		Candidates: out,
		TotalVotes: tally.TotalVotes,
		LeaderIDs:  tally.LeaderIDs,
	}, nil
}

// Helper methods

func mustGetElection(ctx context.Context, tx secondary.LedgerReader, electionID int64) (*secondary.ElectionRecord, error) {
	record, found, err := tx.GetElection(ctx, electionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &coreelection.GuardError{
			Kind:   coreelection.ErrNotFound,
			Reason: fmt.Sprintf("Election %d not found", electionID),
		}
	}
	return record, nil
}

func (s *ElectionServiceImpl) now() int64 {
	return s.clock.Now().Unix()
}

// fail logs a failed operation and returns the error to surface to the caller.
// Anything that is not a caller-input kind is reported as a storage failure.
func (s *ElectionServiceImpl) fail(ctx context.Context, op string, err error) error {
	if coreelection.IsCallerError(err) {
		s.logger.WarnContext(ctx, "operation rejected",
			"event", "registry_"+op+"_rejected",
			"module", serviceModule,
			"layer", "application",
			"caller", ctxutil.CallerFromContext(ctx),
			"kind", coreelection.KindName(err),
			"reason", err.Error(),
		)
		return err
	}
	s.logger.ErrorContext(ctx, "operation failed",
		"event", "registry_"+op+"_failed",
		"module", serviceModule,
		"layer", "application",
		"error", err.Error(),
	)
	return fmt.Errorf("%s: %w: %w", op, coreelection.ErrStorage, err)
}

// execute runs post-commit effects. Failures are logged and never undo the commit.
func (s *ElectionServiceImpl) execute(ctx context.Context, effs []effects.Effect) {
	if s.executor == nil {
		return
	}
	if err := s.executor.Execute(ctx, effs); err != nil {
		s.logger.ErrorContext(ctx, "post-commit effects failed",
			"event", "registry_effects_failed",
			"module", serviceModule,
			"layer", "application",
			"error", err.Error(),
		)
	}
}

func (s *ElectionServiceImpl) recordToElection(r *secondary.ElectionRecord, now int64) *primary.Election {
	return &primary.Election{
		ID:        r.ID,
		Name:      r.Name,
		PostName:  r.PostName,
		Owner:     r.Owner,
		StartDate: time.Unix(r.StartDate, 0).UTC(),
		EndDate:   time.Unix(r.EndDate, 0).UTC(),
		CreatedAt: time.Unix(r.CreatedAt, 0).UTC(),
		Phase:     string(coreelection.PhaseAt(now, r.StartDate, r.EndDate)),
	}
}

func (s *ElectionServiceImpl) recordToCandidate(r *secondary.CandidateRecord) *primary.Candidate {
	return &primary.Candidate{
		ID:         r.ID,
		ElectionID: r.ElectionID,
		Name:       r.Name,
		VoteCount:  r.VoteCount,
		CreatedAt:  time.Unix(r.CreatedAt, 0).UTC(),
	}
}

// Ensure ElectionServiceImpl implements the interface
var _ primary.ElectionService = (*ElectionServiceImpl)(nil)
