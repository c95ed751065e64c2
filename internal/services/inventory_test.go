package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookishbrew/bookstore/internal/database/books"
	"github.com/bookishbrew/bookstore/internal/database/customers"
	"github.com/bookishbrew/bookstore/internal/database/sales"
	"github.com/bookishbrew/bookstore/internal/entities"
)

type testStores struct {
	books     *books.Repository
	customers *customers.Repository
	sales     *sales.Repository
	db        *gorm.DB
}

func setupStores(t *testing.T) (*testStores, func()) {
	dbPath := "./test_services_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Customer{},
		&entities.BookCustomerAssociation{},
		&entities.Sale{},
	)
	require.NoError(t, err)

	stores := &testStores{
		books:     books.NewRepository(db),
		customers: customers.NewRepository(db),
		sales:     sales.NewRepository(db),
		db:        db,
	}

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return stores, cleanup
}

func validBookInput() BookInput {
	return BookInput{
		Title:           "Dune",
		Author:          "Frank Herbert",
		Genre:           "Science Fiction",
		PublicationDate: "1965-08-01",
		Price:           10,
		Quantity:        5,
	}
}

func TestInventoryService_AddBook_RoundTrip(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewInventoryService(stores.books)

	book, err := service.AddBook(validBookInput())
	require.NoError(t, err)
	assert.NotZero(t, book.ID)

	listed, err := service.ListBooks()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Dune", listed[0].Title)
	assert.Equal(t, "Frank Herbert", listed[0].Author)
	assert.Equal(t, "Science Fiction", listed[0].Genre)
	assert.Equal(t, "1965-08-01", listed[0].PublicationDate.Format(DateLayout))
	assert.Equal(t, 10, listed[0].Price)
	assert.Equal(t, 5, listed[0].Quantity)
}

func TestInventoryService_AddBook_BadDatePersistsNothing(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewInventoryService(stores.books)

	input := validBookInput()
	input.PublicationDate = "08/01/1965"

	_, err := service.AddBook(input)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	listed, err := service.ListBooks()
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestInventoryService_AddBook_NegativeQuantityRejected(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewInventoryService(stores.books)

	input := validBookInput()
	input.Quantity = -1

	_, err := service.AddBook(input)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestInventoryService_UpdateBookQuantity_IsAdditive(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewInventoryService(stores.books)

	book, err := service.AddBook(validBookInput())
	require.NoError(t, err)

	updated, err := service.UpdateBookQuantity(book.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Quantity)

	// Repeated application adds again; it is not idempotent.
	updated, err = service.UpdateBookQuantity(book.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 11, updated.Quantity)

	updated, err = service.UpdateBookQuantity(book.ID, -11)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
}

func TestInventoryService_UpdateBookQuantity_NotFound(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewInventoryService(stores.books)

	_, err := service.UpdateBookQuantity(999, 1)
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestInventoryService_UpdateBookQuantity_FloorAtZero(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewInventoryService(stores.books)

	book, err := service.AddBook(validBookInput())
	require.NoError(t, err)

	_, err = service.UpdateBookQuantity(book.ID, -6)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	stored, err := stores.books.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Quantity)
}

func TestInventoryService_DeleteBook_MissingIsReportedNotRaised(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewInventoryService(stores.books)

	found, err := service.DeleteBook(999)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInventoryService_SearchBooks(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewInventoryService(stores.books)

	_, err := service.AddBook(validBookInput())
	require.NoError(t, err)

	matches, err := service.SearchBooks("dune")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	matches, err = service.SearchBooks("austen")
	require.NoError(t, err)
	assert.Empty(t, matches)
}
