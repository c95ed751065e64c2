// Command generate_demo creates a demo database with sample inventory and
// customers for trying out the menu.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/bookishbrew/bookstore/internal/database"
	"github.com/bookishbrew/bookstore/internal/database/books"
	"github.com/bookishbrew/bookstore/internal/database/customers"
	"github.com/bookishbrew/bookstore/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	booksRepo := books.NewRepository(db.DB)
	for _, book := range demoBooks() {
		if err := booksRepo.CreateBook(&book); err != nil {
			log.Printf("Failed to save book %s: %v", book.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s (%d in stock)", book.Title, book.Author, book.Quantity)
	}

	customersRepo := customers.NewRepository(db.DB)
	for _, customer := range demoCustomers() {
		if err := customersRepo.CreateCustomer(&customer); err != nil {
			log.Printf("Failed to save customer %s: %v", customer.Name, err)
			continue
		}
		log.Printf("Saved customer: %s", customer.Name)
	}

	log.Printf("Demo database ready at %s", *dbPath)
}

func demoBooks() []entities.Book {
	date := func(year, month, day int) time.Time {
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}
	return []entities.Book{
		{Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Romance", PublicationDate: date(1813, 1, 28), Price: 12, Quantity: 8},
		{Title: "Moby-Dick", Author: "Herman Melville", Genre: "Adventure", PublicationDate: date(1851, 10, 18), Price: 15, Quantity: 5},
		{Title: "Frankenstein", Author: "Mary Shelley", Genre: "Gothic", PublicationDate: date(1818, 1, 1), Price: 10, Quantity: 12},
		{Title: "The Adventures of Sherlock Holmes", Author: "Arthur Conan Doyle", Genre: "Mystery", PublicationDate: date(1892, 10, 14), Price: 11, Quantity: 7},
		{Title: "Dracula", Author: "Bram Stoker", Genre: "Gothic", PublicationDate: date(1897, 5, 26), Price: 13, Quantity: 4},
	}
}

func demoCustomers() []entities.Customer {
	return []entities.Customer{
		{Name: "Ada Lovelace", Contact: "5550101"},
		{Name: "Charles Babbage", Contact: "5550102"},
		{Name: "Grace Hopper", Contact: "5550103"},
	}
}
