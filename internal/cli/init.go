package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/electoral/internal/config"
	"github.com/example/electoral/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the electoral ledger and set the registry owner",
		Long: `Initialize the electoral ledger at ~/.electoral/electoral.db (or $ELECTORAL_HOME)
and record the registry owner. The owner defaults to the caller identity.

Re-running init with the same owner is a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureConfigFile(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			owner, _ := cmd.Flags().GetString("owner")
			if owner == "" {
				owner = resolveActor()
			}

			adapter, err := wire.ElectionAdapter()
			if err != nil {
				return err
			}
			if err := adapter.Initialize(callerContext(cmd), owner); err != nil {
				return err
			}

			fmt.Printf("✓ Ledger ready at %s\n", activeConfig.DBPath)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  electoral election create \"Student Council\" --post President --start +1h --end +1d")
			fmt.Println("  electoral election list")

			return nil
		},
	}

	cmd.Flags().String("owner", "", "Registry owner (default: caller identity)")

	return cmd
}

// ensureConfigFile writes config.json with the active settings if none exists.
func ensureConfigFile() error {
	_, err := config.LoadConfig(configDir)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := config.SaveConfig(configDir, activeConfig); err != nil {
		return err
	}
	fmt.Printf("✓ Config file created at %s/config.json\n", configDir)
	return nil
}
