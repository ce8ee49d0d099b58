package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/electoral/internal/wire"
)

// EventsCmd returns the events command
func EventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List registry notifications",
		Long:  "List ElectionCreated and CandidateAdded notifications from the event log, oldest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			electionID, _ := cmd.Flags().GetInt64("election")
			limit, _ := cmd.Flags().GetInt("limit")

			adapter, err := wire.NotificationAdapter()
			if err != nil {
				return err
			}
			return adapter.List(callerContext(cmd), kind, electionID, limit)
		},
	}

	cmd.Flags().StringP("kind", "k", "", "Filter by kind (ElectionCreated, CandidateAdded)")
	cmd.Flags().Int64P("election", "e", 0, "Filter by election ID")
	cmd.Flags().IntP("limit", "n", 50, "Show at most the newest N notifications (0 for all)")

	return cmd
}
