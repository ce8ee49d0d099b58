package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/electoral/internal/wire"
)

var electionCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new election",
	Long: `Create a new election with a voting window.

Times accept RFC3339 (2026-01-02T15:04:05Z), unix seconds, or an offset
from now (+90m, +2h, +3d). Both must be in the future and start must be
before end.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		post, _ := cmd.Flags().GetString("post")
		startFlag, _ := cmd.Flags().GetString("start")
		endFlag, _ := cmd.Flags().GetString("end")

		now := time.Now()
		start, err := ParseMoment(startFlag, now)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		end, err := ParseMoment(endFlag, now)
		if err != nil {
			return fmt.Errorf("--end: %w", err)
		}

		adapter, err := wire.ElectionAdapter()
		if err != nil {
			return err
		}
		return adapter.Create(callerContext(cmd), args[0], post, start, end)
	},
}

var electionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all elections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter, err := wire.ElectionAdapter()
		if err != nil {
			return err
		}
		return adapter.List(callerContext(cmd))
	},
}

var electionShowCmd = &cobra.Command{
	Use:   "show [election-id]",
	Short: "Show election details and candidates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("election", args[0])
		if err != nil {
			return err
		}
		adapter, err := wire.ElectionAdapter()
		if err != nil {
			return err
		}
		return adapter.Show(callerContext(cmd), id)
	},
}

// ElectionCmd returns the election command
func ElectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "election",
		Short: "Manage elections",
		Long:  "Create, list, and inspect elections in the registry",
	}

	electionCreateCmd.Flags().StringP("post", "p", "", "Post the election is held for (required)")
	electionCreateCmd.Flags().String("start", "", "Start of voting (required)")
	electionCreateCmd.Flags().String("end", "", "End of voting (required)")
	_ = electionCreateCmd.MarkFlagRequired("post")
	_ = electionCreateCmd.MarkFlagRequired("start")
	_ = electionCreateCmd.MarkFlagRequired("end")

	cmd.AddCommand(electionCreateCmd)
	cmd.AddCommand(electionListCmd)
	cmd.AddCommand(electionShowCmd)

	return cmd
}
