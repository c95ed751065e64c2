package sales

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookishbrew/bookstore/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_sales_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Customer{},
		&entities.Sale{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func seedBook(t *testing.T, db *gorm.DB, price, quantity int) *entities.Book {
	t.Helper()
	book := &entities.Book{
		Title:           "Dune",
		Author:          "Frank Herbert",
		Genre:           "Science Fiction",
		PublicationDate: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC),
		Price:           price,
		Quantity:        quantity,
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

func TestRepository_CreateWithStockDecrement(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db, 10, 5)

	sale := &entities.Sale{BookID: book.ID, CustomerID: 1, Quantity: 3, SaleDate: time.Now()}
	created, err := repo.CreateWithStockDecrement(sale)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, sale.ID)

	var stored entities.Book
	require.NoError(t, db.First(&stored, book.ID).Error)
	assert.Equal(t, 2, stored.Quantity)

	count, err := repo.CountSales()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepository_CreateWithStockDecrement_InsufficientStock(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db, 10, 2)

	sale := &entities.Sale{BookID: book.ID, CustomerID: 1, Quantity: 3, SaleDate: time.Now()}
	created, err := repo.CreateWithStockDecrement(sale)
	require.NoError(t, err)
	assert.False(t, created)

	// Neither the stock nor the ledger changed.
	var stored entities.Book
	require.NoError(t, db.First(&stored, book.ID).Error)
	assert.Equal(t, 2, stored.Quantity)

	count, err := repo.CountSales()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRepository_CreateWithStockDecrement_MissingBook(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	sale := &entities.Sale{BookID: 999, CustomerID: 1, Quantity: 1, SaleDate: time.Now()}
	created, err := repo.CreateWithStockDecrement(sale)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestRepository_AggregateTotals(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := seedBook(t, db, 10, 5)

	_, err := repo.CreateWithStockDecrement(&entities.Sale{BookID: book.ID, CustomerID: 1, Quantity: 3, SaleDate: time.Now()})
	require.NoError(t, err)
	_, err = repo.CreateWithStockDecrement(&entities.Sale{BookID: book.ID, CustomerID: 2, Quantity: 1, SaleDate: time.Now()})
	require.NoError(t, err)

	totalSales, totalRevenue, err := repo.AggregateTotals()
	require.NoError(t, err)
	assert.Equal(t, int64(2), totalSales)
	assert.Equal(t, int64(40), totalRevenue)
}

func TestRepository_AggregateTotals_ExcludesDeletedBooks(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	kept := seedBook(t, db, 10, 5)
	doomed := &entities.Book{Title: "Gone", Author: "Nobody", Genre: "Mystery", Price: 7, Quantity: 5}
	require.NoError(t, db.Create(doomed).Error)

	_, err := repo.CreateWithStockDecrement(&entities.Sale{BookID: kept.ID, CustomerID: 1, Quantity: 2, SaleDate: time.Now()})
	require.NoError(t, err)
	_, err = repo.CreateWithStockDecrement(&entities.Sale{BookID: doomed.ID, CustomerID: 1, Quantity: 1, SaleDate: time.Now()})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&entities.Book{}, doomed.ID).Error)

	// The orphaned sale is still in the ledger but drops out of the join.
	count, err := repo.CountSales()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	totalSales, totalRevenue, err := repo.AggregateTotals()
	require.NoError(t, err)
	assert.Equal(t, int64(1), totalSales)
	assert.Equal(t, int64(20), totalRevenue)
}

func TestRepository_AggregateTotals_EmptyLedger(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	totalSales, totalRevenue, err := repo.AggregateTotals()
	require.NoError(t, err)
	assert.Zero(t, totalSales)
	assert.Zero(t, totalRevenue)
}
