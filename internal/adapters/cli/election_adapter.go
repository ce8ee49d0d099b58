// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting, but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	coreelection "github.com/example/electoral/internal/core/election"
	"github.com/example/electoral/internal/ports/primary"
)

const rule = "────────────────────────────────────────────────────────────────────────"

// ElectionAdapter is a thin adapter that translates CLI operations to ElectionService calls.
// It depends only on the ElectionService interface, enabling easy testing with mocks.
type ElectionAdapter struct {
	service primary.ElectionService
	out     io.Writer
}

// NewElectionAdapter creates a new ElectionAdapter with the given service.
func NewElectionAdapter(service primary.ElectionService, out io.Writer) *ElectionAdapter {
	return &ElectionAdapter{
		service: service,
		out:     out,
	}
}

// Initialize sets the registry owner.
func (a *ElectionAdapter) Initialize(ctx context.Context, owner string) error {
	if err := a.service.Initialize(ctx, owner); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Registry owned by %s\n", owner)
	return nil
}

// Owner prints the registry owner.
func (a *ElectionAdapter) Owner(ctx context.Context) error {
	owner, err := a.service.Owner(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, owner)
	return nil
}

// Create creates a new election.
func (a *ElectionAdapter) Create(ctx context.Context, name, postName string, start, end time.Time) error {
	resp, err := a.service.CreateElection(ctx, primary.CreateElectionRequest{
		Name:      name,
		PostName:  postName,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created election %d: %s (%s)\n", resp.ElectionID, resp.Election.Name, resp.Election.PostName)
	fmt.Fprintf(a.out, "  Voting: %s → %s\n", formatTime(resp.Election.StartDate), formatTime(resp.Election.EndDate))
	return nil
}

// List lists every election.
func (a *ElectionAdapter) List(ctx context.Context) error {
	elections, err := a.service.GetElections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list elections: %w", err)
	}

	if len(elections) == 0 {
		fmt.Fprintln(a.out, "No elections found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-6s %-9s %-20s %-20s %-20s %s\n", "ID", "PHASE", "START", "END", "POST", "NAME")
	fmt.Fprintln(a.out, rule)
	for _, e := range elections {
		fmt.Fprintf(a.out, "%-6d %-9s %-20s %-20s %-20s %s\n",
			e.ID, phaseLabel(e.Phase), formatTime(e.StartDate), formatTime(e.EndDate), e.PostName, e.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single election and its candidates.
func (a *ElectionAdapter) Show(ctx context.Context, electionID int64) error {
	election, err := a.service.GetElection(ctx, electionID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nElection: %d\n", election.ID)
	fmt.Fprintf(a.out, "Name:     %s\n", election.Name)
	fmt.Fprintf(a.out, "Post:     %s\n", election.PostName)
	fmt.Fprintf(a.out, "Owner:    %s\n", election.Owner)
	fmt.Fprintf(a.out, "Phase:    %s\n", phaseLabel(election.Phase))
	fmt.Fprintf(a.out, "Start:    %s\n", formatTime(election.StartDate))
	fmt.Fprintf(a.out, "End:      %s\n", formatTime(election.EndDate))
	fmt.Fprintf(a.out, "Created:  %s\n", formatTime(election.CreatedAt))
	fmt.Fprintln(a.out)

	return a.ListCandidates(ctx, electionID)
}

// AddCandidate registers a candidate.
func (a *ElectionAdapter) AddCandidate(ctx context.Context, electionID int64, name string) error {
	resp, err := a.service.AddCandidate(ctx, primary.AddCandidateRequest{
		ElectionID: electionID,
		Name:       name,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Added candidate %d to election %d: %s\n", resp.CandidateID, electionID, resp.Candidate.Name)
	return nil
}

// ListCandidates lists the candidates of an election.
func (a *ElectionAdapter) ListCandidates(ctx context.Context, electionID int64) error {
	candidates, err := a.service.GetElectionCandidates(ctx, electionID)
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		fmt.Fprintf(a.out, "No candidates registered for election %d\n", electionID)
		return nil
	}

	fmt.Fprintf(a.out, "%-6s %-8s %s\n", "ID", "VOTES", "NAME")
	fmt.Fprintln(a.out, rule)
	for _, c := range candidates {
		fmt.Fprintf(a.out, "%-6d %-8d %s\n", c.ID, c.VoteCount, c.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Vote casts the caller's vote.
func (a *ElectionAdapter) Vote(ctx context.Context, electionID, candidateID int64) error {
	err := a.service.Vote(ctx, primary.VoteRequest{
		ElectionID:  electionID,
		CandidateID: candidateID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Vote recorded for candidate %d in election %d\n", candidateID, electionID)
	return nil
}

// Results prints the tally of an election, highlighting the leaders.
func (a *ElectionAdapter) Results(ctx context.Context, electionID int64) error {
	results, err := a.service.Results(ctx, electionID)
	if err != nil {
		return err
	}

	e := results.Election
	fmt.Fprintf(a.out, "\n%s - %s [%s]\n", e.Name, e.PostName, phaseLabel(e.Phase))
	fmt.Fprintf(a.out, "Total votes: %d\n\n", results.TotalVotes)

	if len(results.Candidates) == 0 {
		fmt.Fprintln(a.out, "No candidates registered")
		return nil
	}

	leader := "leading"
	if e.Phase == string(coreelection.PhaseClosed) {
		leader = "winner"
	}
	if len(results.LeaderIDs) > 1 {
		leader = "tied"
	}

	fmt.Fprintf(a.out, "%-6s %-8s %-8s %s\n", "ID", "VOTES", "SHARE", "NAME")
	fmt.Fprintln(a.out, rule)
	for _, c := range results.Candidates {
		share := fmt.Sprintf("%.1f%%", coreelection.Share(c.VoteCount, results.TotalVotes))
		line := fmt.Sprintf("%-6d %-8d %-8s %s", c.ID, c.VoteCount, share, c.Name)
		if results.IsLeader(c.ID) {
			line += " " + color.New(color.FgGreen, color.Bold).Sprintf("← %s", leader)
		}
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintln(a.out)

	return nil
}

func phaseLabel(phase string) string {
	switch coreelection.Phase(phase) {
	case coreelection.PhasePending:
		return color.New(color.FgYellow).Sprint(phase)
	case coreelection.PhaseOpen:
		return color.New(color.FgGreen).Sprint(phase)
	case coreelection.PhaseClosed:
		return color.New(color.FgRed).Sprint(phase)
	default:
		return phase
	}
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
