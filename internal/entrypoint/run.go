// Package entrypoint wires configuration, the database and the services
// together and runs the interactive menu loop.
package entrypoint

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bookishbrew/bookstore/internal/config"
	"github.com/bookishbrew/bookstore/internal/console"
	"github.com/bookishbrew/bookstore/internal/database"
	"github.com/bookishbrew/bookstore/internal/database/books"
	"github.com/bookishbrew/bookstore/internal/database/customers"
	"github.com/bookishbrew/bookstore/internal/database/sales"
	"github.com/bookishbrew/bookstore/internal/services"
)

// SetupLogger configures the global zerolog logger. Diagnostic logging goes
// to stderr so it never interleaves with the menu on stdout.
func SetupLogger(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel).
		With().
		Timestamp().
		Logger()
}

// Run opens the database, builds the service graph and hands control to the
// menu controller until the operator quits.
func Run(cfg *config.Config, version string) error {
	SetupLogger(cfg.Logging.Level)
	log.Debug().Str("version", version).Str("database", cfg.Database.Path).Msg("starting store manager")

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database at %s: %w", cfg.Database.Path, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close database")
		}
	}()

	booksRepo := books.NewRepository(db.DB)
	customersRepo := customers.NewRepository(db.DB)
	salesRepo := sales.NewRepository(db.DB)

	inventoryService := services.NewInventoryService(booksRepo)
	customerService := services.NewCustomerService(customersRepo)
	salesService := services.NewSalesService(booksRepo, customersRepo, salesRepo)
	reportingService := services.NewReportingService(salesRepo)

	controller := console.NewController(
		os.Stdin,
		os.Stdout,
		inventoryService,
		customerService,
		salesService,
		reportingService,
	)
	return controller.Run()
}
