// Package books provides database operations for the book inventory.
//
// Search is case-insensitive by choice: the underlying store's collation for
// LIKE is not portable, so the query lowers both sides explicitly.
package books

import (
	"gorm.io/gorm"

	"github.com/bookishbrew/bookstore/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Create(book).Error
}

func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks retrieves all books in insertion order.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("id ASC").Find(&books).Error
	return books, err
}

// SearchBooks matches the keyword as a substring of title, author or genre
// (case-insensitive, OR across the three columns).
func (r *Repository) SearchBooks(keyword string) ([]entities.Book, error) {
	var books []entities.Book
	searchPattern := "%" + keyword + "%"
	err := r.db.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?) OR LOWER(genre) LIKE LOWER(?)",
			searchPattern, searchPattern, searchPattern).
		Order("id ASC").
		Find(&books).Error
	return books, err
}

func (r *Repository) UpdateBook(book *entities.Book) error {
	return r.db.Save(book).Error
}

// DeleteBook hard-deletes a book and its association rows in one
// transaction. Returns false when no book with the given id exists. Sale
// rows referencing the book are left in place; the report excludes them
// once the book is gone.
func (r *Repository) DeleteBook(id uint) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entities.Book{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.Where("book_id = ?", id).Delete(&entities.BookCustomerAssociation{}).Error
	})
	return found, err
}
