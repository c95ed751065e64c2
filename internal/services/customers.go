package services

import (
	"fmt"
	"strings"

	"github.com/bookishbrew/bookstore/internal/entities"
)

// CustomerService implements add/list/delete on customer records.
type CustomerService struct {
	customers CustomerStore
}

func NewCustomerService(customers CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

// AddCustomer persists a new customer. The name must be non-empty after
// trimming and the contact must consist entirely of digits.
func (s *CustomerService) AddCustomer(name, contact string) (*entities.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Message: "Please enter a non-empty name."}
	}
	if !isDigits(contact) {
		return nil, &ValidationError{Message: "Invalid input. Contact must be a number."}
	}

	customer := &entities.Customer{
		Name:    name,
		Contact: contact,
	}
	if err := s.customers.CreateCustomer(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// ListCustomers returns customers with both name and contact set; rows with
// blank fields are filtered at the store.
func (s *CustomerService) ListCustomers() ([]entities.Customer, error) {
	return s.customers.ListCustomers()
}

// DeleteCustomer removes a customer. A missing id is reported through the
// returned bool, not through an error.
func (s *CustomerService) DeleteCustomer(customerID uint) (bool, error) {
	return s.customers.DeleteCustomer(customerID)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
