package services

import "github.com/bookishbrew/bookstore/internal/entities"

// BookStore provides persistence for the book inventory.
type BookStore interface {
	CreateBook(book *entities.Book) error
	GetBookByID(id uint) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
	SearchBooks(keyword string) ([]entities.Book, error)
	UpdateBook(book *entities.Book) error
	DeleteBook(id uint) (bool, error)
}

// CustomerStore provides persistence for customer records.
type CustomerStore interface {
	CreateCustomer(customer *entities.Customer) error
	GetCustomerByID(id uint) (*entities.Customer, error)
	ListCustomers() ([]entities.Customer, error)
	DeleteCustomer(id uint) (bool, error)
}

// SaleStore provides persistence for the sales ledger.
type SaleStore interface {
	CreateWithStockDecrement(sale *entities.Sale) (bool, error)
	AggregateTotals() (totalSales int64, totalRevenue int64, err error)
}
