package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/electoral/internal/wire"
)

var candidateAddCmd = &cobra.Command{
	Use:   "add [election-id] [name]",
	Short: "Register a candidate in an election",
	Long:  "Register a candidate. Registration closes once voting starts.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		electionID, err := parseID("election", args[0])
		if err != nil {
			return err
		}
		adapter, err := wire.ElectionAdapter()
		if err != nil {
			return err
		}
		return adapter.AddCandidate(callerContext(cmd), electionID, args[1])
	},
}

var candidateListCmd = &cobra.Command{
	Use:   "list [election-id]",
	Short: "List the candidates of an election",
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
		return adapter.ListCandidates(callerContext(cmd), electionID)
	},
}

// CandidateCmd returns the candidate command
func CandidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidate",
		Short: "Manage candidates",
	}

	cmd.AddCommand(candidateAddCmd)
	cmd.AddCommand(candidateListCmd)

	return cmd
}
