package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	coreelection "github.com/example/electoral/internal/core/election"
	"github.com/example/electoral/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

var (
	testStart = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	testEnd   = testStart.Add(24 * time.Hour)
)

// mockElectionService implements primary.ElectionService for testing
type mockElectionService struct {
	initializeFn     func(ctx context.Context, owner string) error
	ownerFn          func(ctx context.Context) (string, error)
	createElectionFn func(ctx context.Context, req primary.CreateElectionRequest) (*primary.CreateElectionResponse, error)
	addCandidateFn   func(ctx context.Context, req primary.AddCandidateRequest) (*primary.AddCandidateResponse, error)
	voteFn           func(ctx context.Context, req primary.VoteRequest) error
	getElectionsFn   func(ctx context.Context) ([]*primary.Election, error)
	getElectionFn    func(ctx context.Context, electionID int64) (*primary.Election, error)
	getCandidatesFn  func(ctx context.Context, electionID int64) ([]*primary.Candidate, error)
	resultsFn        func(ctx context.Context, electionID int64) (*primary.Results, error)

	// Track calls for verification
	lastCreateReq primary.CreateElectionRequest
	lastAddReq    primary.AddCandidateRequest
	lastVoteReq   primary.VoteRequest
}

func (m *mockElectionService) Initialize(ctx context.Context, owner string) error {
	if m.initializeFn != nil {
		return m.initializeFn(ctx, owner)
	}
	return nil
}

func (m *mockElectionService) Owner(ctx context.Context) (string, error) {
	if m.ownerFn != nil {
		return m.ownerFn(ctx)
	}
	return "deployer", nil
}

func (m *mockElectionService) CreateElection(ctx context.Context, req primary.CreateElectionRequest) (*primary.CreateElectionResponse, error) {
	m.lastCreateReq = req
	if m.createElectionFn != nil {
		return m.createElectionFn(ctx, req)
	}
	return &primary.CreateElectionResponse{
		ElectionID: 1,
		Election:   &primary.Election{ID: 1, Name: req.Name, PostName: req.PostName, StartDate: req.StartDate, EndDate: req.EndDate},
	}, nil
}

func (m *mockElectionService) AddCandidate(ctx context.Context, req primary.AddCandidateRequest) (*primary.AddCandidateResponse, error) {
	m.lastAddReq = req
	if m.addCandidateFn != nil {
		return m.addCandidateFn(ctx, req)
	}
	return &primary.AddCandidateResponse{
		CandidateID: 3,
		Candidate:   &primary.Candidate{ID: 3, ElectionID: req.ElectionID, Name: req.Name},
	}, nil
}

func (m *mockElectionService) Vote(ctx context.Context, req primary.VoteRequest) error {
	m.lastVoteReq = req
	if m.voteFn != nil {
		return m.voteFn(ctx, req)
	}
	return nil
}

func (m *mockElectionService) GetElections(ctx context.Context) ([]*primary.Election, error) {
	if m.getElectionsFn != nil {
		return m.getElectionsFn(ctx)
	}
	return []*primary.Election{}, nil
}

func (m *mockElectionService) GetElection(ctx context.Context, electionID int64) (*primary.Election, error) {
	if m.getElectionFn != nil {
		return m.getElectionFn(ctx, electionID)
	}
	return &primary.Election{ID: electionID, Name: "Student Council", PostName: "President", Owner: "deployer", Phase: "pending"}, nil
}

func (m *mockElectionService) GetElectionCandidates(ctx context.Context, electionID int64) ([]*primary.Candidate, error) {
	if m.getCandidatesFn != nil {
		return m.getCandidatesFn(ctx, electionID)
	}
	return []*primary.Candidate{}, nil
}

func (m *mockElectionService) Results(ctx context.Context, electionID int64) (*primary.Results, error) {
	if m.resultsFn != nil {
		return m.resultsFn(ctx, electionID)
	}
	return &primary.Results{Election: &primary.Election{ID: electionID, Phase: "open"}}, nil
}

// ============================================================================
// Create Tests
// ============================================================================

func TestElectionAdapter_Create_Success(t *testing.T) {
	mock := &mockElectionService{}
	var buf bytes.Buffer
	adapter := NewElectionAdapter(mock, &buf)

	err := adapter.Create(context.Background(), "Student Council", "President", testStart, testEnd)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mock.lastCreateReq.Name != "Student Council" || mock.lastCreateReq.PostName != "President" {
		t.Errorf("unexpected request %+v", mock.lastCreateReq)
	}
	if !mock.lastCreateReq.StartDate.Equal(testStart) || !mock.lastCreateReq.EndDate.Equal(testEnd) {
		t.Errorf("expected dates to be forwarded, got %+v", mock.lastCreateReq)
	}
	if !strings.Contains(buf.String(), "Created election 1: Student Council (President)") {
		t.Errorf("expected output to contain 'Created election 1', got '%s'", buf.String())
	}
}

func TestElectionAdapter_Create_ServiceError(t *testing.T) {
	mock := &mockElectionService{
		createElectionFn: func(ctx context.Context, req primary.CreateElectionRequest) (*primary.CreateElectionResponse, error) {
			return nil, &coreelection.GuardError{Kind: coreelection.ErrInvalidSchedule, Reason: "Election starting date must be in the future"}
		},
	}
	var buf bytes.Buffer
	adapter := NewElectionAdapter(mock, &buf)

	err := adapter.Create(context.Background(), "Backdated", "Treasurer", testStart, testEnd)

	if !errors.Is(err, coreelection.ErrInvalidSchedule) {
		t.Fatalf("expected InvalidSchedule to pass through, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on failure, got '%s'", buf.String())
	}
}

// ============================================================================
// List / Show Tests
// ============================================================================

func TestElectionAdapter_List_WithResults(t *testing.T) {
	mock := &mockElectionService{
		getElectionsFn: func(ctx context.Context) ([]*primary.Election, error) {
			return []*primary.Election{
				{ID: 1, Name: "Student Council", PostName: "President", Phase: "pending", StartDate: testStart, EndDate: testEnd},
				{ID: 2, Name: "Board", PostName: "Treasurer", Phase: "closed", StartDate: testStart, EndDate: testEnd},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewElectionAdapter(mock, &buf)

	err := adapter.List(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := buf.String()
	for _, want := range []string{"Student Council", "Treasurer", "pending", "closed"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain '%s', got '%s'", want, output)
		}
	}
}

func TestElectionAdapter_List_Empty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewElectionAdapter(&mockElectionService{}, &buf)

	if err := adapter.List(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "No elections found") {
		t.Errorf("expected 'No elections found', got '%s'", buf.String())
	}
}

func TestElectionAdapter_Show_IncludesCandidates(t *testing.T) {
	mock := &mockElectionService{
		getCandidatesFn: func(ctx context.Context, electionID int64) ([]*primary.Candidate, error) {
			return []*primary.Candidate{{ID: 1, ElectionID: electionID, Name: "Alice", VoteCount: 4}}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewElectionAdapter(mock, &buf)

	if err := adapter.Show(context.Background(), 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := buf.String()
	for _, want := range []string{"Election: 1", "Owner:    deployer", "Alice"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain '%s', got '%s'", want, output)
		}
	}
}

func TestElectionAdapter_Show_NotFound(t *testing.T) {
	mock := &mockElectionService{
		getElectionFn: func(ctx context.Context, electionID int64) (*primary.Election, error) {
			return nil, &coreelection.GuardError{Kind: coreelection.ErrNotFound, Reason: "Election 9 not found"}
		},
	}
	adapter := NewElectionAdapter(mock, &bytes.Buffer{})

	err := adapter.Show(context.Background(), 9)

	if !errors.Is(err, coreelection.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

// ============================================================================
// Candidate / Vote Tests
// ============================================================================

func TestElectionAdapter_AddCandidate(t *testing.T) {
	mock := &mockElectionService{}
	var buf bytes.Buffer
	adapter := NewElectionAdapter(mock, &buf)

	if err := adapter.AddCandidate(context.Background(), 1, "Alice"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mock.lastAddReq.ElectionID != 1 || mock.lastAddReq.Name != "Alice" {
		t.Errorf("unexpected request %+v", mock.lastAddReq)
	}
	if !strings.Contains(buf.String(), "Added candidate 3 to election 1: Alice") {
		t.Errorf("unexpected output '%s'", buf.String())
	}
}

func TestElectionAdapter_ListCandidates_Empty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewElectionAdapter(&mockElectionService{}, &buf)

	if err := adapter.ListCandidates(context.Background(), 4); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "No candidates registered for election 4") {
		t.Errorf("unexpected output '%s'", buf.String())
	}
}

func TestElectionAdapter_Vote(t *testing.T) {
	mock := &mockElectionService{}
	var buf bytes.Buffer
	adapter := NewElectionAdapter(mock, &buf)

	if err := adapter.Vote(context.Background(), 1, 2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mock.lastVoteReq.ElectionID != 1 || mock.lastVoteReq.CandidateID != 2 {
		t.Errorf("unexpected request %+v", mock.lastVoteReq)
	}
	if !strings.Contains(buf.String(), "Vote recorded for candidate 2 in election 1") {
		t.Errorf("unexpected output '%s'", buf.String())
	}
}

func TestElectionAdapter_Vote_AlreadyVoted(t *testing.T) {
	mock := &mockElectionService{
		voteFn: func(ctx context.Context, req primary.VoteRequest) error {
			return &coreelection.GuardError{Kind: coreelection.ErrAlreadyVoted, Reason: "x has already voted in election 1"}
		},
	}
	var buf bytes.Buffer
	adapter := NewElectionAdapter(mock, &buf)

	err := adapter.Vote(context.Background(), 1, 2)

	if !errors.Is(err, coreelection.ErrAlreadyVoted) {
		t.Fatalf("expected AlreadyVoted, got %v", err)
	}
	if strings.Contains(buf.String(), "Vote recorded") {
		t.Error("expected no success output")
	}
}

// ============================================================================
// Results Tests
// ============================================================================

func TestElectionAdapter_Results(t *testing.T) {
	tests := []struct {
		name      string
		phase     string
		leaders   []int64
		wantLabel string
	}{
		{"open election shows leader", "open", []int64{1}, "← leading"},
		{"closed election shows winner", "closed", []int64{1}, "← winner"},
		{"tie is labelled", "closed", []int64{1, 2}, "← tied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockElectionService{
				resultsFn: func(ctx context.Context, electionID int64) (*primary.Results, error) {
					return &primary.Results{
						Election: &primary.Election{ID: electionID, Name: "Student Council", PostName: "President", Phase: tt.phase},
						Candidates: []*primary.Candidate{
							{ID: 1, Name: "Alice", VoteCount: 2},
							{ID: 2, Name: "Bob", VoteCount: 2},
						},
						TotalVotes: 4,
						LeaderIDs:  tt.leaders,
					}, nil
				},
			}
			var buf bytes.Buffer
			adapter := NewElectionAdapter(mock, &buf)

			if err := adapter.Results(context.Background(), 1); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			output := buf.String()
			if !strings.Contains(output, "Total votes: 4") {
				t.Errorf("expected total votes, got '%s'", output)
			}
			if !strings.Contains(output, "50.0%") {
				t.Errorf("expected vote share, got '%s'", output)
			}
			if !strings.Contains(output, tt.wantLabel) {
				t.Errorf("expected '%s', got '%s'", tt.wantLabel, output)
			}
		})
	}
}

func TestElectionAdapter_InitializeAndOwner(t *testing.T) {
	var gotOwner string
	mock := &mockElectionService{
		initializeFn: func(ctx context.Context, owner string) error {
			gotOwner = owner
			return nil
		},
	}
	var buf bytes.Buffer
	adapter := NewElectionAdapter(mock, &buf)

	if err := adapter.Initialize(context.Background(), "deployer"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := adapter.Owner(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotOwner != "deployer" {
		t.Errorf("expected owner deployer, got '%s'", gotOwner)
	}
	if !strings.Contains(buf.String(), "Registry owned by deployer") || !strings.HasSuffix(buf.String(), "deployer\n") {
		t.Errorf("unexpected output '%s'", buf.String())
	}
}
