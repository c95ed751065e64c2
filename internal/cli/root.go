// Package cli defines the command surface: the interactive menu (default),
// a migrate command that prepares the database and exits, and a
// non-interactive report command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bookishbrew/bookstore/internal/config"
	"github.com/bookishbrew/bookstore/internal/entrypoint"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Database string
}

// LoadConfig builds the environment config and applies flag overrides.
func (o *RootOptions) LoadConfig() *config.Config {
	cfg := config.NewConfig()
	if o.Database != "" {
		cfg.Database.Path = o.Database
	}
	return cfg
}

// NewRootCommand creates the root command. Running it without a subcommand
// starts the interactive menu.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "bookstore",
		Short:        "Bookish Brew store management",
		Long:         "A terminal-driven bookstore inventory and sales ledger backed by SQLite.",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return entrypoint.Run(opts.LoadConfig(), version)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the SQLite database (overrides DATABASE_PATH)")

	cmd.AddCommand(NewMenuCommand(opts, version))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}
