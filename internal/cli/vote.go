package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/electoral/internal/wire"
)

// VoteCmd returns the vote command
func VoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote [election-id] [candidate-id]",
		Short: "Cast a vote as the caller",
		Long: `Cast one vote for a candidate while the election is open.
Each caller may vote once per election. Use --as to vote as another identity.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			electionID, err := parseID("election", args[0])
			if err != nil {
				return err
			}
			candidateID, err := parseID("candidate", args[1])
			if err != nil {
				return err
			}
			adapter, err := wire.ElectionAdapter()
			if err != nil {
				return err
			}
			return adapter.Vote(callerContext(cmd), electionID, candidateID)
		},
	}
}

// ResultsCmd returns the results command
func ResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "results [election-id]",
		Short: "Show the tally of an election",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			electionID, err := parseID("election", args[0])
			if err != nil {
				return err
			}
			adapter, err := wire.ElectionAdapter()
			if err != nil {
				return err
			}
			return adapter.Results(callerContext(cmd), electionID)
		},
	}
}
