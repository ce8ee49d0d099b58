package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor := resolveActor()
			fmt.Printf("Config dir: %s\n", configDir)
			fmt.Printf("Database:   %s\n", activeConfig.DBPath)
			fmt.Printf("Actor:      %s\n", actor)
			fmt.Printf("Log level:  %s\n", activeConfig.LogLevel)
			fmt.Printf("Log format: %s\n", activeConfig.LogFormat)
			return nil
		},
	})

	return cmd
}
