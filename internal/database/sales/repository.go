// Package sales provides database operations for the sales ledger.
// Sale rows are insert-only; nothing updates or deletes them.
package sales

import (
	"gorm.io/gorm"

	"github.com/bookishbrew/bookstore/internal/entities"
)

// Repository handles all sale database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sales repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithStockDecrement inserts the sale and decrements the book's stock
// in a single transaction. The stock update is guarded so the book row is
// only touched while it still holds enough quantity; when the guard fails
// the transaction rolls back, no sale is recorded, and false is returned.
func (r *Repository) CreateWithStockDecrement(sale *entities.Sale) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Book{}).
			Where("id = ? AND quantity >= ?", sale.BookID, sale.Quantity).
			Update("quantity", gorm.Expr("quantity - ?", sale.Quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		if err := tx.Create(sale).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// AggregateTotals joins the ledger with the books table and returns the
// whole-history sale count and revenue. Sales whose book has been deleted
// drop out of the join and contribute to neither total.
func (r *Repository) AggregateTotals() (totalSales int64, totalRevenue int64, err error) {
	var row struct {
		TotalSales   int64
		TotalRevenue int64
	}
	err = r.db.Model(&entities.Sale{}).
		Select("COUNT(sales.id) AS total_sales, COALESCE(SUM(books.price * sales.quantity), 0) AS total_revenue").
		Joins("JOIN books ON books.id = sales.book_id").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.TotalSales, row.TotalRevenue, nil
}

// CountSales returns the raw number of ledger rows, including sales whose
// book no longer exists.
func (r *Repository) CountSales() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Sale{}).Count(&count).Error
	return count, err
}
