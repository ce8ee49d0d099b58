// Package cli holds the cobra commands of the electoral CLI.
package cli

import (
	"context"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/example/electoral/internal/config"
	"github.com/example/electoral/internal/ctxutil"
	"github.com/example/electoral/internal/wire"
)

var (
	flagActor    string
	flagDB       string
	flagLogLevel string

	activeConfig *config.Config
	configDir    string
)

// BindGlobalFlags registers the persistent flags shared by every command.
func BindGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&flagActor, "as", "", "Caller identity for this command (default: config actor, then OS user)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "Path to the ledger database (overrides config and ELECTORAL_DB)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// Bootstrap loads configuration and hands it to wire. Used as PersistentPreRunE.
func Bootstrap(cmd *cobra.Command, args []string) error {
	cfg, dir, err := config.Load()
	if err != nil {
		return err
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagActor != "" {
		cfg.Actor = flagActor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	activeConfig = cfg
	configDir = dir
	wire.Configure(cfg)
	return nil
}

// callerContext returns the command context carrying the caller identity.
func callerContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctxutil.WithCaller(ctx, resolveActor())
}

// resolveActor picks the caller identity: --as, then config actor, then the OS user.
func resolveActor() string {
	if flagActor != "" {
		return flagActor
	}
	if activeConfig != nil && activeConfig.Actor != "" {
		return activeConfig.Actor
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
