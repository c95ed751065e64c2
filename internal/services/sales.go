package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bookishbrew/bookstore/internal/entities"
)

// Receipt is the outcome of a successful sale.
type Receipt struct {
	SaleID       uint
	TotalPrice   int
	CustomerName string
}

// SalesService validates stock, records sales and decrements inventory.
type SalesService struct {
	books     BookStore
	customers CustomerStore
	sales     SaleStore
	now       func() time.Time
}

func NewSalesService(books BookStore, customers CustomerStore, sales SaleStore) *SalesService {
	return &SalesService{
		books:     books,
		customers: customers,
		sales:     sales,
		now:       time.Now,
	}
}

// ProcessSale records one sale: it resolves the book and customer, checks
// stock, then inserts the sale row and decrements the book's quantity in a
// single transaction. Either both writes commit or neither is visible.
//
// A failed book or customer lookup is reported as one NotFoundError without
// distinguishing which of the two was missing.
func (s *SalesService) ProcessSale(bookID, customerID uint, quantity int) (*Receipt, error) {
	if quantity <= 0 {
		return nil, &ValidationError{Message: "Quantity must be positive."}
	}

	book, err := s.books.GetBookByID(bookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Message: "Invalid book or customer ID."}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up book %d: %w", bookID, err)
	}

	customer, err := s.customers.GetCustomerByID(customerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Message: "Invalid book or customer ID."}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer %d: %w", customerID, err)
	}

	if quantity > book.Quantity {
		return nil, &ConstraintViolation{Message: "Insufficient quantity in stock."}
	}

	sale := &entities.Sale{
		BookID:     book.ID,
		CustomerID: customer.ID,
		Quantity:   quantity,
		SaleDate:   s.now(),
	}
	created, err := s.sales.CreateWithStockDecrement(sale)
	if err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}
	if !created {
		// The guarded update found less stock than the earlier read.
		return nil, &ConstraintViolation{Message: "Insufficient quantity in stock."}
	}

	return &Receipt{
		SaleID:       sale.ID,
		TotalPrice:   quantity * book.Price,
		CustomerName: customer.Name,
	}, nil
}
