// Package database provides the data access layer for the store.
//
// The layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, schema migration, lifecycle
//	├── migrations/      # Forward-only data migrations
//	├── books/           # Book inventory operations
//	├── customers/       # Customer record operations
//	└── sales/           # Sales ledger and report aggregation
//
// Each sub-package provides a Repository type with domain-specific
// operations:
//
//	db, err := database.NewDatabase("./book.db")
//	booksRepo := books.NewRepository(db.DB)
//	book, err := booksRepo.GetBookByID(123)
//
// The repositories implement the store interfaces declared in
// internal/services/interfaces.go.
package database
