package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bookishbrew/bookstore/internal/entities"
)

// DateLayout is the textual format for publication dates.
const DateLayout = "2006-01-02"

// BookInput carries the raw fields for a new book. PublicationDate is the
// unparsed YYYY-MM-DD string; parsing it is part of validation.
type BookInput struct {
	Title           string
	Author          string
	Genre           string
	PublicationDate string
	Price           int
	Quantity        int
}

// InventoryService implements add/update/list/search/delete on books.
type InventoryService struct {
	books BookStore
}

func NewInventoryService(books BookStore) *InventoryService {
	return &InventoryService{books: books}
}

// AddBook validates the input and persists a new book. A date that does not
// parse aborts the operation with a ValidationError; nothing is persisted.
func (s *InventoryService) AddBook(input BookInput) (*entities.Book, error) {
	publicationDate, err := time.Parse(DateLayout, input.PublicationDate)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid date format. Please enter the date in the format YYYY-MM-DD."}
	}
	if input.Price < 0 {
		return nil, &ValidationError{Message: "Price must not be negative."}
	}
	if input.Quantity < 0 {
		return nil, &ValidationError{Message: "Quantity must not be negative."}
	}

	book := &entities.Book{
		Title:           input.Title,
		Author:          input.Author,
		Genre:           input.Genre,
		PublicationDate: publicationDate,
		Price:           input.Price,
		Quantity:        input.Quantity,
	}
	if err := s.books.CreateBook(book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

// UpdateBookQuantity adds delta (which may be negative) to the book's stock.
// The result may not drop below zero.
func (s *InventoryService) UpdateBookQuantity(bookID uint, delta int) (*entities.Book, error) {
	book, err := s.books.GetBookByID(bookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Message: "Book not found. Please enter a valid book ID."}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up book %d: %w", bookID, err)
	}

	if book.Quantity+delta < 0 {
		return nil, &ValidationError{Message: "Quantity cannot drop below zero."}
	}
	book.Quantity += delta
	if err := s.books.UpdateBook(book); err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", bookID, err)
	}
	return book, nil
}

func (s *InventoryService) ListBooks() ([]entities.Book, error) {
	return s.books.GetAllBooks()
}

// SearchBooks returns books whose title, author or genre contains the
// keyword. An empty result is not an error.
func (s *InventoryService) SearchBooks(keyword string) ([]entities.Book, error) {
	return s.books.SearchBooks(keyword)
}

// DeleteBook removes a book. A missing id is reported through the returned
// bool, not through an error.
func (s *InventoryService) DeleteBook(bookID uint) (bool, error) {
	return s.books.DeleteBook(bookID)
}
