package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/electoral/internal/cli"
	"github.com/example/electoral/internal/version"
	"github.com/example/electoral/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "electoral",
		Short:   "Electoral - a registry of time-boxed elections",
		Version: version.String(),
		Long: `Electoral keeps a ledger of elections, their candidates, and one vote per
caller per election. Candidates register until voting starts; votes are
accepted only during voting hours.`,
		SilenceUsage:      true,
		PersistentPreRunE: cli.Bootstrap,
	}
	cli.BindGlobalFlags(rootCmd)

	// Registry
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.OwnerCmd())

	// Elections
	rootCmd.AddCommand(cli.ElectionCmd())
	rootCmd.AddCommand(cli.CandidateCmd())
	rootCmd.AddCommand(cli.VoteCmd())
	rootCmd.AddCommand(cli.ResultsCmd())
	rootCmd.AddCommand(cli.EventsCmd())

	// Tools
	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.DemoCmd())

	err := rootCmd.Execute()
	if closeErr := wire.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
