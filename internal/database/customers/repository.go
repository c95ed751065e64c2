// Package customers provides database operations for customer records.
package customers

import (
	"gorm.io/gorm"

	"github.com/bookishbrew/bookstore/internal/entities"
)

// Repository handles all customer database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new customers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateCustomer(customer *entities.Customer) error {
	return r.db.Create(customer).Error
}

func (r *Repository) GetCustomerByID(id uint) (*entities.Customer, error) {
	var customer entities.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListCustomers returns customers with a non-empty name and contact.
// Legacy databases contain rows with blank fields; those are filtered out
// rather than surfaced.
func (r *Repository) ListCustomers() ([]entities.Customer, error) {
	var customers []entities.Customer
	err := r.db.
		Where("name <> '' AND contact <> ''").
		Order("id ASC").
		Find(&customers).Error
	return customers, err
}

// DeleteCustomer hard-deletes a customer and their association rows in one
// transaction. Returns false when no customer with the given id exists.
func (r *Repository) DeleteCustomer(id uint) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entities.Customer{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.Where("customer_id = ?", id).Delete(&entities.BookCustomerAssociation{}).Error
	})
	return found, err
}
