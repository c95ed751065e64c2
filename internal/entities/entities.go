package entities

import "time"

// Book is an inventory item with a price and a stock count.
// Quantity never drops below zero; the sales service enforces this
// before decrementing stock.
type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"index;size:512" json:"title"`
	Author          string    `gorm:"index;size:256" json:"author"`
	Genre           string    `gorm:"index;size:100" json:"genre"`
	PublicationDate time.Time `json:"publication_date"`
	Price           int       `json:"price"`
	Quantity        int       `json:"quantity"`
}

func (Book) TableName() string {
	return "books"
}

type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"index;size:256" json:"name"`
	Contact string `gorm:"size:32" json:"contact"` // digits only
}

func (Customer) TableName() string {
	return "customers"
}

// BookCustomerAssociation is a payload-free join row between a book and a
// customer. It is populated by the seed migration only; no runtime
// operation reads or writes it.
type BookCustomerAssociation struct {
	BookID     uint `gorm:"primaryKey" json:"book_id"`
	CustomerID uint `gorm:"primaryKey" json:"customer_id"`
}

func (BookCustomerAssociation) TableName() string {
	return "book_customer_association"
}

// Sale is an immutable record of one purchase transaction. It is never
// updated or deleted after creation. Deleting the referenced book or
// customer leaves the sale row in place; the report excludes sales whose
// book no longer resolves.
type Sale struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BookID     uint      `gorm:"index" json:"book_id"`
	CustomerID uint      `gorm:"index" json:"customer_id"`
	Quantity   int       `json:"quantity"`
	SaleDate   time.Time `gorm:"not null" json:"sale_date"`
}

func (Sale) TableName() string {
	return "sales"
}
