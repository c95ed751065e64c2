// Package migrations applies forward-only data migrations after the schema
// has been auto-migrated. Applied migrations are tracked by name in the
// schema_migrations table; there is no down path.
package migrations

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bookishbrew/bookstore/internal/entities"
)

type Migration struct {
	Name  string
	Apply func(tx *gorm.DB) error
}

type schemaMigration struct {
	Name      string `gorm:"primaryKey;size:255"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

var all = []Migration{
	{
		Name:  "populate_book_customer_association",
		Apply: populateBookCustomerAssociation,
	},
}

// Apply runs every pending migration inside its own transaction and records
// it in schema_migrations. Running Apply again is a no-op for migrations
// already recorded.
func Apply(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range all {
		var existing schemaMigration
		err := db.Where("name = ?", m.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check migration %s: %w", m.Name, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := m.Apply(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{Name: m.Name, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", m.Name, err)
		}
	}

	return nil
}

// Seeds the legacy book/customer association rows. The association table has
// no runtime read or write path; these rows exist for parity with the
// historical data set.
func populateBookCustomerAssociation(tx *gorm.DB) error {
	seed := []entities.BookCustomerAssociation{
		{BookID: 1, CustomerID: 1},
		{BookID: 2, CustomerID: 1},
		{BookID: 2, CustomerID: 2},
	}
	for _, row := range seed {
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed association (%d, %d): %w", row.BookID, row.CustomerID, err)
		}
	}
	return nil
}
