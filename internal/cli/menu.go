package cli

import (
	"github.com/spf13/cobra"

	"github.com/bookishbrew/bookstore/internal/entrypoint"
)

// NewMenuCommand creates the menu command, the explicit form of the default
// interactive mode.
func NewMenuCommand(opts *RootOptions, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive store menu",
		Long: `Start the interactive numbered menu for managing books, customers and
sales. The database schema is created and seeded on first start.

Example:
  bookstore menu --db ./book.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return entrypoint.Run(opts.LoadConfig(), version)
		},
	}
}
