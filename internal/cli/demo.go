package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cliadapter "github.com/example/electoral/internal/adapters/cli"
	coreelection "github.com/example/electoral/internal/core/election"
	"github.com/example/electoral/internal/ctxutil"
	"github.com/example/electoral/internal/ports/secondary"
	"github.com/example/electoral/internal/wire"
)

// DemoCmd returns the demo command
func DemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a dry-run election against an in-memory registry",
		Long: `Create an election, register candidates, and vote against a throwaway
in-memory registry driven by a simulated clock. The configured database is
never touched. Notifications observed on the event bus are printed at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout(), time.Now().Truncate(time.Second))
		},
	}
}

func runDemo(ctx context.Context, out io.Writer, start time.Time) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sb := wire.NewSandbox(start, wire.Logger())
	observed, cancel := sb.Bus.Subscribe()
	defer cancel()

	adapter := cliadapter.NewElectionAdapter(sb.Service, out)
	as := func(caller string) context.Context { return ctxutil.WithCaller(ctx, caller) }
	step := func(format string, args ...any) {
		fmt.Fprintf(out, "\n%s\n", color.New(color.Bold).Sprintf(format, args...))
	}

	if err := adapter.Initialize(as("deployer"), "deployer"); err != nil {
		return err
	}

	step("1. Create an election opening in one day")
	day := 24 * time.Hour
	if err := adapter.Create(as("deployer"), "Student Council", "President", start.Add(day), start.Add(2*day)); err != nil {
		return err
	}
	const electionID = 1

	step("2. Create an election that starts in the past")
	expect(out, adapter.Create(as("deployer"), "Backdated", "Treasurer", start.Add(-day), start.Add(day)), coreelection.ErrInvalidSchedule)

	step("3. Register candidates, then try again once voting has started")
	for _, name := range []string{"Alice", "Bob"} {
		if err := adapter.AddCandidate(as("deployer"), electionID, name); err != nil {
			return err
		}
	}
	sb.Clock.Advance(day + time.Hour)
	expect(out, adapter.AddCandidate(as("deployer"), electionID, "Carol"), coreelection.ErrRegistrationClosed)

	step("4. Vote during voting hours")
	if err := adapter.Vote(as("voter-x"), electionID, 1); err != nil {
		return err
	}
	expect(out, adapter.Vote(as("voter-x"), electionID, 1), coreelection.ErrAlreadyVoted)
	if err := adapter.Vote(as("voter-y"), electionID, 1); err != nil {
		return err
	}

	step("5. Vote after the election has ended")
	sb.Clock.Advance(day)
	expect(out, adapter.Vote(as("voter-z"), electionID, 2), coreelection.ErrVotingClosed)

	if err := adapter.Results(ctx, electionID); err != nil {
		return err
	}

	step("Observed notifications")
	printObserved(out, observed)
	return nil
}

// expect prints a rejection and reports whether it had the wanted kind.
func expect(out io.Writer, err error, want error) {
	switch {
	case err == nil:
		fmt.Fprintf(out, "%s expected %s, but the call succeeded\n", color.RedString("✗"), coreelection.KindName(want))
	case coreelection.KindName(err) == coreelection.KindName(want):
		fmt.Fprintf(out, "%s rejected (%s): %s\n", color.GreenString("✓"), coreelection.KindName(err), err)
	default:
		fmt.Fprintf(out, "%s expected %s, got %s: %s\n", color.RedString("✗"), coreelection.KindName(want), coreelection.KindName(err), err)
	}
}

// printObserved drains whatever the subscriber has buffered.
func printObserved(out io.Writer, observed <-chan secondary.Event) {
	for {
		select {
		case e := <-observed:
			if e.CandidateID != 0 {
				fmt.Fprintf(out, "  %s{election: %d, candidate: %d} by %s\n", e.Kind, e.ElectionID, e.CandidateID, e.Actor)
			} else {
				fmt.Fprintf(out, "  %s{election: %d} by %s\n", e.Kind, e.ElectionID, e.Actor)
			}
		default:
			return
		}
	}
}
