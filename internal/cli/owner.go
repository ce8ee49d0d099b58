package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/electoral/internal/wire"
)

// OwnerCmd returns the owner command
func OwnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owner",
		Short: "Show the registry owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.ElectionAdapter()
			if err != nil {
				return err
			}
			return adapter.Owner(callerContext(cmd))
		},
	}
}
