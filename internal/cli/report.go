package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookishbrew/bookstore/internal/database"
	"github.com/bookishbrew/bookstore/internal/database/sales"
	"github.com/bookishbrew/bookstore/internal/services"
)

// NewReportCommand creates the report command: the aggregate sales report
// without entering the interactive menu.
func NewReportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the whole-history sales report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.LoadConfig()
			db, err := database.NewDatabase(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("failed to open database at %s: %w", cfg.Database.Path, err)
			}
			defer db.Close()

			reporting := services.NewReportingService(sales.NewRepository(db.DB))
			report, err := reporting.GenerateReport()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total Sales: %d\n", report.TotalSales)
			fmt.Fprintf(cmd.OutOrStdout(), "Total Revenue: %d\n", report.TotalRevenue)
			return nil
		},
	}
}
