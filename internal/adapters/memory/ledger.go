// Package memory contains an in-process implementation of the ledger port.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/electoral/internal/ports/secondary"
)

type receiptKey struct {
	electionID int64
	voter      string
}

// Ledger implements secondary.Ledger in memory.
// Update holds the write lock for the whole unit and applies staged writes
// only when fn succeeds; View holds the read lock.
type Ledger struct {
	mu sync.RWMutex

	owner        string
	ownerSet     bool
	electionSeq  int64
	candidateSeq int64

	elections     map[int64]*secondary.ElectionRecord
	electionOrder []int64
	candidates    map[int64]*secondary.CandidateRecord
	byElection    map[int64][]int64
	receipts      map[receiptKey]*secondary.VoteReceiptRecord
}

// NewLedger creates an empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{
		elections:  make(map[int64]*secondary.ElectionRecord),
		candidates: make(map[int64]*secondary.CandidateRecord),
		byElection: make(map[int64][]int64),
		receipts:   make(map[receiptKey]*secondary.VoteReceiptRecord),
	}
}

// View runs fn under the read lock.
func (l *Ledger) View(ctx context.Context, fn func(tx secondary.LedgerReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return fn(&reader{l: l})
}

// Update runs fn under the write lock and commits staged writes if fn returns nil.
func (l *Ledger) Update(ctx context.Context, fn func(tx secondary.LedgerWriter) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := &writer{
		reader:       reader{l: l},
		electionSeq:  l.electionSeq,
		candidateSeq: l.candidateSeq,
		votes:        make(map[int64]int64),
	}
	tx.reader.tx = tx
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// reader serves reads from committed state, overlaid with the staged
// writes of tx when running inside Update.
type reader struct {
	l  *Ledger
	tx *writer
}

func (r *reader) GetElection(ctx context.Context, id int64) (*secondary.ElectionRecord, bool, error) {
	if e, ok := r.l.elections[id]; ok {
		return copyElection(e), true, nil
	}
	if r.tx != nil {
		for _, e := range r.tx.elections {
			if e.ID == id {
				return copyElection(e), true, nil
			}
		}
	}
	return nil, false, nil
}

func (r *reader) ListElections(ctx context.Context) ([]*secondary.ElectionRecord, error) {
	out := make([]*secondary.ElectionRecord, 0, len(r.l.electionOrder))
	for _, id := range r.l.electionOrder {
		out = append(out, copyElection(r.l.elections[id]))
	}
	if r.tx != nil {
		for _, e := range r.tx.elections {
			out = append(out, copyElection(e))
		}
	}
	return out, nil
}

func (r *reader) GetCandidate(ctx context.Context, id int64) (*secondary.CandidateRecord, bool, error) {
	var found *secondary.CandidateRecord
	if c, ok := r.l.candidates[id]; ok {
		found = copyCandidate(c)
	} else if r.tx != nil {
		for _, c := range r.tx.candidates {
			if c.ID == id {
				found = copyCandidate(c)
				break
			}
		}
	}
	if found == nil {
		return nil, false, nil
	}
	if r.tx != nil {
		found.VoteCount += r.tx.votes[id]
	}
	return found, true, nil
}

func (r *reader) ListCandidates(ctx context.Context, electionID int64) ([]*secondary.CandidateRecord, error) {
	ids := r.l.byElection[electionID]
	out := make([]*secondary.CandidateRecord, 0, len(ids))
	for _, id := range ids {
		c := copyCandidate(r.l.candidates[id])
		if r.tx != nil {
			c.VoteCount += r.tx.votes[id]
		}
		out = append(out, c)
	}
	if r.tx != nil {
		for _, c := range r.tx.candidates {
			if c.ElectionID == electionID {
				staged := copyCandidate(c)
				staged.VoteCount += r.tx.votes[c.ID]
				out = append(out, staged)
			}
		}
	}
	return out, nil
}

func (r *reader) HasVoted(ctx context.Context, electionID int64, voter string) (bool, error) {
	key := receiptKey{electionID: electionID, voter: voter}
	if _, ok := r.l.receipts[key]; ok {
		return true, nil
	}
	if r.tx != nil {
		for _, v := range r.tx.receipts {
			if v.ElectionID == electionID && v.Voter == voter {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *reader) GetOwner(ctx context.Context) (string, bool, error) {
	if r.tx != nil && r.tx.ownerSet {
		return r.tx.owner, true, nil
	}
	return r.l.owner, r.l.ownerSet, nil
}

// writer stages writes until commit.
type writer struct {
	reader

	electionSeq  int64
	candidateSeq int64
	elections    []*secondary.ElectionRecord
	candidates   []*secondary.CandidateRecord
	receipts     []*secondary.VoteReceiptRecord
	votes        map[int64]int64
	owner        string
	ownerSet     bool
}

func (w *writer) NextElectionID(ctx context.Context) (int64, error) {
	w.electionSeq++
	return w.electionSeq, nil
}

func (w *writer) NextCandidateID(ctx context.Context) (int64, error) {
	w.candidateSeq++
	return w.candidateSeq, nil
}

func (w *writer) CreateElection(ctx context.Context, election *secondary.ElectionRecord) error {
	if election.ID <= 0 {
		return fmt.Errorf("election ID must be pre-populated by service layer")
	}
	if _, exists, _ := w.GetElection(ctx, election.ID); exists {
		return fmt.Errorf("election %d already exists", election.ID)
	}
	w.elections = append(w.elections, copyElection(election))
	return nil
}

func (w *writer) CreateCandidate(ctx context.Context, candidate *secondary.CandidateRecord) error {
	if candidate.ID <= 0 {
		return fmt.Errorf("candidate ID must be pre-populated by service layer")
	}
	if _, exists, _ := w.GetElection(ctx, candidate.ElectionID); !exists {
		return fmt.Errorf("election %d not found", candidate.ElectionID)
	}
	if _, exists, _ := w.GetCandidate(ctx, candidate.ID); exists {
		return fmt.Errorf("candidate %d already exists", candidate.ID)
	}
	staged := copyCandidate(candidate)
	staged.VoteCount = 0
	w.candidates = append(w.candidates, staged)
	return nil
}

func (w *writer) RecordVote(ctx context.Context, receipt *secondary.VoteReceiptRecord) error {
	voted, _ := w.HasVoted(ctx, receipt.ElectionID, receipt.Voter)
	if voted {
		return fmt.Errorf("receipt for %s in election %d already exists", receipt.Voter, receipt.ElectionID)
	}
	candidate, exists, _ := w.GetCandidate(ctx, receipt.CandidateID)
	if !exists || candidate.ElectionID != receipt.ElectionID {
		return fmt.Errorf("candidate %d not found in election %d", receipt.CandidateID, receipt.ElectionID)
	}
	r := *receipt
	w.receipts = append(w.receipts, &r)
	w.votes[receipt.CandidateID]++
	return nil
}

func (w *writer) SetOwner(ctx context.Context, owner string, at int64) error {
	w.owner = owner
	w.ownerSet = true
	return nil
}

func (w *writer) commit() {
	l := w.l
	l.electionSeq = w.electionSeq
	l.candidateSeq = w.candidateSeq
	for _, e := range w.elections {
		l.elections[e.ID] = e
		l.electionOrder = append(l.electionOrder, e.ID)
	}
	for _, c := range w.candidates {
		l.candidates[c.ID] = c
		l.byElection[c.ElectionID] = append(l.byElection[c.ElectionID], c.ID)
	}
	for id, n := range w.votes {
		l.candidates[id].VoteCount += n
	}
	for _, r := range w.receipts {
		l.receipts[receiptKey{electionID: r.ElectionID, voter: r.Voter}] = r
	}
	if w.ownerSet {
		l.owner = w.owner
		l.ownerSet = true
	}
}

func copyElection(e *secondary.ElectionRecord) *secondary.ElectionRecord {
	c := *e
	return &c
}

func copyCandidate(c *secondary.CandidateRecord) *secondary.CandidateRecord {
	cp := *c
	return &cp
}

// Ensure Ledger implements the interface
var _ secondary.Ledger = (*Ledger)(nil)
