// Package sqlite contains SQLite implementations of the secondary ports.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	coreelection "github.com/example/electoral/internal/core/election"
	"github.com/example/electoral/internal/ports/secondary"
)

// querier is the subset of *sql.Tx used by the ledger queries.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Ledger implements secondary.Ledger with SQLite transactions.
type Ledger struct {
	db *sql.DB
}

// NewLedger creates a new SQLite ledger.
// The database should be opened with db.DSN so write transactions begin immediately.
func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// View runs fn inside a read transaction.
func (l *Ledger) View(ctx context.Context, fn func(tx secondary.LedgerReader) error) error {
	tx, err := l.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("failed to begin read transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&reader{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to finish read transaction: %w", err)
	}
	return nil
}

// Update runs fn inside a write transaction and commits if fn returns nil.
func (l *Ledger) Update(ctx context.Context, fn func(tx secondary.LedgerWriter) error) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&writer{reader: reader{q: tx}}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type reader struct {
	q querier
}

const electionColumns = "id, name, post_name, owner, start_date, end_date, created_at"

const candidateColumns = "id, election_id, name, vote_count, created_at"

func scanElection(row interface{ Scan(...any) error }) (*secondary.ElectionRecord, error) {
	record := &secondary.ElectionRecord{}
	err := row.Scan(&record.ID, &record.Name, &record.PostName, &record.Owner, &record.StartDate, &record.EndDate, &record.CreatedAt)
	return record, err
}

func scanCandidate(row interface{ Scan(...any) error }) (*secondary.CandidateRecord, error) {
	record := &secondary.CandidateRecord{}
	err := row.Scan(&record.ID, &record.ElectionID, &record.Name, &record.VoteCount, &record.CreatedAt)
	return record, err
}

// GetElection retrieves an election by its ID.
func (r *reader) GetElection(ctx context.Context, id int64) (*secondary.ElectionRecord, bool, error) {
	record, err := scanElection(r.q.QueryRowContext(ctx,
		"SELECT "+electionColumns+" FROM elections WHERE id = ?", id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get election: %w", err)
	}
	return record, true, nil
}

// ListElections retrieves all elections in creation order.
func (r *reader) ListElections(ctx context.Context) ([]*secondary.ElectionRecord, error) {
	rows, err := r.q.QueryContext(ctx, "SELECT "+electionColumns+" FROM elections ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}
	defer rows.Close()

	var elections []*secondary.ElectionRecord
	for rows.Next() {
		record, err := scanElection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		elections = append(elections, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}
	return elections, nil
}

// GetCandidate retrieves a candidate by its ID.
func (r *reader) GetCandidate(ctx context.Context, id int64) (*secondary.CandidateRecord, bool, error) {
	record, err := scanCandidate(r.q.QueryRowContext(ctx,
		"SELECT "+candidateColumns+" FROM candidates WHERE id = ?", id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get candidate: %w", err)
	}
	return record, true, nil
}

// ListCandidates retrieves the candidates of an election in registration order.
func (r *reader) ListCandidates(ctx context.Context, electionID int64) ([]*secondary.CandidateRecord, error) {
	rows, err := r.q.QueryContext(ctx,
		"SELECT "+candidateColumns+" FROM candidates WHERE election_id = ? ORDER BY id",
		electionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*secondary.CandidateRecord
	for rows.Next() {
		record, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

// HasVoted reports whether a receipt exists for (electionID, voter).
func (r *reader) HasVoted(ctx context.Context, electionID int64, voter string) (bool, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM vote_receipts WHERE election_id = ? AND voter = ?",
		electionID, voter,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check vote receipt: %w", err)
	}
	return count > 0, nil
}

// GetOwner returns the registry owner.
func (r *reader) GetOwner(ctx context.Context) (string, bool, error) {
	var owner string
	err := r.q.QueryRowContext(ctx, "SELECT owner FROM registry WHERE id = 1").Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get registry owner: %w", err)
	}
	return owner, true, nil
}

type writer struct {
	reader
}

// NextElectionID advances the election counter.
func (w *writer) NextElectionID(ctx context.Context) (int64, error) {
	return w.advance(ctx, "election")
}

// NextCandidateID advances the candidate counter.
func (w *writer) NextCandidateID(ctx context.Context) (int64, error) {
	return w.advance(ctx, "candidate")
}

func (w *writer) advance(ctx context.Context, counter string) (int64, error) {
	result, err := w.q.ExecContext(ctx, "UPDATE counters SET value = value + 1 WHERE name = ?", counter)
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s counter: %w", counter, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return 0, fmt.Errorf("counter %s is missing", counter)
	}

	var value int64
	if err := w.q.QueryRowContext(ctx, "SELECT value FROM counters WHERE name = ?", counter).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to read %s counter: %w", counter, err)
	}
	return value, nil
}

// CreateElection persists a new election.
// The record must have ID pre-populated by the service layer.
func (w *writer) CreateElection(ctx context.Context, election *secondary.ElectionRecord) error {
	if election.ID <= 0 {
		return fmt.Errorf("election ID must be pre-populated by service layer")
	}
	_, err := w.q.ExecContext(ctx,
		"INSERT INTO elections ("+electionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		election.ID, election.Name, election.PostName, election.Owner,
		election.StartDate, election.EndDate, election.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create election: %w", err)
	}
	return nil
}

// CreateCandidate persists a new candidate with a zero vote count.
func (w *writer) CreateCandidate(ctx context.Context, candidate *secondary.CandidateRecord) error {
	if candidate.ID <= 0 {
		return fmt.Errorf("candidate ID must be pre-populated by service layer")
	}
	_, err := w.q.ExecContext(ctx,
		"INSERT INTO candidates (id, election_id, name, vote_count, created_at) VALUES (?, ?, ?, 0, ?)",
		candidate.ID, candidate.ElectionID, candidate.Name, candidate.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// RecordVote writes the receipt and increments the candidate's count.
// A receipt that already exists surfaces as ErrAlreadyVoted.
func (w *writer) RecordVote(ctx context.Context, receipt *secondary.VoteReceiptRecord) error {
	_, err := w.q.ExecContext(ctx,
		"INSERT INTO vote_receipts (election_id, voter, candidate_id, cast_at) VALUES (?, ?, ?, ?)",
		receipt.ElectionID, receipt.Voter, receipt.CandidateID, receipt.CastAt,
	)
	if isUniqueViolation(err) {
		return &coreelection.GuardError{
			Kind:   coreelection.ErrAlreadyVoted,
			Reason: fmt.Sprintf("%s has already voted in election %d", receipt.Voter, receipt.ElectionID),
		}
	}
	if err != nil {
		return fmt.Errorf("failed to record vote receipt: %w", err)
	}

	result, err := w.q.ExecContext(ctx,
		"UPDATE candidates SET vote_count = vote_count + 1 WHERE id = ? AND election_id = ?",
		receipt.CandidateID, receipt.ElectionID,
	)
	if err != nil {
		return fmt.Errorf("failed to increment vote count: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("candidate %d not found in election %d", receipt.CandidateID, receipt.ElectionID)
	}
	return nil
}

// SetOwner stores the registry owner.
func (w *writer) SetOwner(ctx context.Context, owner string, at int64) error {
	_, err := w.q.ExecContext(ctx,
		"INSERT INTO registry (id, owner, initialized_at) VALUES (1, ?, ?)",
		owner, at,
	)
	if err != nil {
		return fmt.Errorf("failed to set registry owner: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// Ensure Ledger implements the interface
var _ secondary.Ledger = (*Ledger)(nil)
