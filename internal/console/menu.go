package console

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bookishbrew/bookstore/internal/services"
)

const (
	menuMin = 1
	menuMax = 11
)

var menuOptions = []string{
	"1. Add Book",
	"2. Update Book Quantity",
	"3. List Books",
	"4. Delete Book",
	"5. Search Books",
	"6. Process Sale",
	"7. Add Customer",
	"8. List Customers",
	"9. Delete Customer",
	"10. Generate Report",
	"11. Quit",
}

// Controller drives the interactive menu loop: display the menu, read a
// choice, dispatch to exactly one service operation, repeat until quit.
// Nothing runs concurrently with anything else.
type Controller struct {
	prompter  *Prompter
	renderer  *Renderer
	inventory *services.InventoryService
	customers *services.CustomerService
	sales     *services.SalesService
	reports   *services.ReportingService
}

func NewController(
	in io.Reader,
	out io.Writer,
	inventory *services.InventoryService,
	customers *services.CustomerService,
	sales *services.SalesService,
	reports *services.ReportingService,
) *Controller {
	return &Controller{
		prompter:  NewPrompter(in, out),
		renderer:  NewRenderer(out),
		inventory: inventory,
		customers: customers,
		sales:     sales,
		reports:   reports,
	}
}

// Run loops until the operator picks Quit or the input stream ends.
// Service failures are reported and return control to the menu; only
// unexpected store errors terminate the loop.
func (c *Controller) Run() error {
	for {
		c.renderMenu()
		choice, err := c.choice()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case 1:
			err = c.addBook()
		case 2:
			err = c.updateBookQuantity()
		case 3:
			err = c.listBooks()
		case 4:
			err = c.deleteBook()
		case 5:
			err = c.searchBooks()
		case 6:
			err = c.processSale()
		case 7:
			err = c.addCustomer()
		case 8:
			err = c.listCustomers()
		case 9:
			err = c.deleteCustomer()
		case 10:
			err = c.generateReport()
		case 11:
			c.renderer.Info("Thank you for using Bookish BrewBook Store Management System!")
			return nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (c *Controller) renderMenu() {
	c.renderer.Heading("Welcome To The Bookish BrewBook Store Management")
	for _, option := range menuOptions {
		c.renderer.Option(option)
	}
}

// choice re-prompts until the input is a number in the closed set 1..11.
func (c *Controller) choice() (int, error) {
	for {
		line, err := c.prompter.Line("Enter your choice: ")
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && value >= menuMin && value <= menuMax {
			return value, nil
		}
		c.renderer.Error("Invalid choice. Please try again.")
	}
}

func (c *Controller) addBook() error {
	c.renderer.Screen("Add Book")
	title, err := c.prompter.Line("Title: ")
	if err != nil {
		return err
	}
	author, err := c.prompter.Line("Author: ")
	if err != nil {
		return err
	}
	genre, err := c.prompter.Line("Genre: ")
	if err != nil {
		return err
	}
	date, err := c.prompter.Line("Publication Date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	date = strings.TrimSpace(date)

	// A bad date aborts the whole operation before the numeric prompts;
	// price and quantity re-prompt instead.
	if _, parseErr := time.Parse(services.DateLayout, date); parseErr != nil {
		c.renderer.Error("Invalid date format. Please enter the date in the format YYYY-MM-DD.")
		return nil
	}

	price, err := c.prompter.Int("Price: ", "price")
	if err != nil {
		return err
	}
	quantity, err := c.prompter.Int("Quantity: ", "quantity")
	if err != nil {
		return err
	}

	_, err = c.inventory.AddBook(services.BookInput{
		Title:           title,
		Author:          author,
		Genre:           genre,
		PublicationDate: date,
		Price:           price,
		Quantity:        quantity,
	})
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.renderer.Error(validationErr.Message)
		return nil
	}
	if err != nil {
		return err
	}
	c.renderer.Info("Book added successfully!")
	return nil
}

func (c *Controller) updateBookQuantity() error {
	c.renderer.Screen("Update Book Quantity")
	bookID, err := c.prompter.CancelableID("Enter the ID of the book to update (or 'q' to go back): ", "book ID")
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	delta, err := c.prompter.Int("Enter the quantity to add: ", "quantity")
	if err != nil {
		return err
	}

	_, err = c.inventory.UpdateBookQuantity(bookID, delta)
	switch {
	case isRecoverable(err):
		c.renderer.Error(err.Error())
	case err != nil:
		return err
	default:
		c.renderer.Info("Book quantity updated successfully!")
	}
	c.prompter.Pause()
	return nil
}

func (c *Controller) listBooks() error {
	c.renderer.Screen("List Books")
	books, err := c.inventory.ListBooks()
	if err != nil {
		return err
	}
	for _, book := range books {
		c.renderer.Book(book)
	}
	c.prompter.Pause()
	return nil
}

func (c *Controller) deleteBook() error {
	c.renderer.Screen("Delete Book")
	bookID, err := c.prompter.CancelableID("Enter the ID of the book to delete (or 'q' to exit): ", "book ID")
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	found, err := c.inventory.DeleteBook(bookID)
	if err != nil {
		return err
	}
	if found {
		c.renderer.Info("Book deleted successfully!")
	} else {
		c.renderer.Info("Book not found.")
	}
	c.prompter.Pause()
	return nil
}

func (c *Controller) searchBooks() error {
	c.renderer.Screen("Search Books")
	keyword, err := c.prompter.Line("Enter a keyword to search: ")
	if err != nil {
		return err
	}

	books, err := c.inventory.SearchBooks(keyword)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		c.renderer.Error("No books found matching the keyword.")
	}
	for _, book := range books {
		c.renderer.Book(book)
	}
	c.prompter.Pause()
	return nil
}

func (c *Controller) processSale() error {
	c.renderer.Screen("Process Sale")

	books, err := c.inventory.ListBooks()
	if err != nil {
		return err
	}
	c.renderer.Info("Available Books:")
	for _, book := range books {
		c.renderer.Info("ID: %d, Title: %s, Author: %s, Price: %d, Quantity: %d",
			book.ID, book.Title, book.Author, book.Price, book.Quantity)
	}

	bookID, err := c.prompter.CancelableID("Enter the ID of the book to purchase (or 'q' to go back): ", "book ID")
	if errors.Is(err, ErrCancelled) {
		c.renderer.Info("Sale process cancelled.")
		c.prompter.Pause()
		return nil
	}
	if err != nil {
		return err
	}
	customerID, err := c.prompter.ID("Enter the ID of the customer: ", "customer ID")
	if err != nil {
		return err
	}
	quantity, err := c.prompter.Int("Enter the quantity sold: ", "quantity")
	if err != nil {
		return err
	}

	receipt, err := c.sales.ProcessSale(bookID, customerID, quantity)
	switch {
	case isRecoverable(err):
		c.renderer.Error(err.Error())
	case err != nil:
		return err
	default:
		c.renderer.Info("Sale processed successfully! Total price: %d", receipt.TotalPrice)
		c.renderer.Info("Thanks, %s, for supporting Bookish BrewBook Store!", receipt.CustomerName)
	}
	c.prompter.Pause()
	return nil
}

func (c *Controller) addCustomer() error {
	c.renderer.Screen("Add Customer")
	for {
		name, err := c.prompter.CancelableLine("Name (or 'q' to cancel): ")
		if errors.Is(err, ErrCancelled) {
			c.renderer.Info("Add customer canceled.")
			c.prompter.Pause()
			return nil
		}
		if err != nil {
			return err
		}
		contact, err := c.prompter.Line("Contact (must be a number): ")
		if err != nil {
			return err
		}

		_, err = c.customers.AddCustomer(name, contact)
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.renderer.Error(validationErr.Message)
			continue
		}
		if err != nil {
			return err
		}
		c.renderer.Info("Customer added successfully!")
		c.prompter.Pause()
		return nil
	}
}

func (c *Controller) listCustomers() error {
	c.renderer.Screen("List Customers")
	customers, err := c.customers.ListCustomers()
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		c.renderer.Info("No customers found.")
	}
	for _, customer := range customers {
		c.renderer.Customer(customer)
	}
	c.prompter.Pause()
	return nil
}

func (c *Controller) deleteCustomer() error {
	c.renderer.Screen("Delete Customer")
	customerID, err := c.prompter.CancelableID("Enter the ID of the customer to delete (or 'q' to exit): ", "customer ID")
	if errors.Is(err, ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	found, err := c.customers.DeleteCustomer(customerID)
	if err != nil {
		return err
	}
	if found {
		c.renderer.Info("Customer deleted successfully!")
	} else {
		c.renderer.Info("Customer not found.")
	}
	c.prompter.Pause()
	return nil
}

func (c *Controller) generateReport() error {
	c.renderer.Screen("Generate Report")
	report, err := c.reports.GenerateReport()
	if err != nil {
		return err
	}
	c.renderer.Record("Total Sales: %d", report.TotalSales)
	c.renderer.Record("Total Revenue: %d", report.TotalRevenue)
	c.prompter.Pause()
	return nil
}

// isRecoverable reports whether err belongs to the domain taxonomy: the
// operator sees the message and the menu loop continues.
func isRecoverable(err error) bool {
	if err == nil {
		return false
	}
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var constraintErr *services.ConstraintViolation
	return errors.As(err, &validationErr) || errors.As(err, &notFoundErr) || errors.As(err, &constraintErr)
}
