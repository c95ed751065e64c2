package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookishbrew/bookstore/internal/entities"
)

func TestCustomerService_AddCustomer(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewCustomerService(stores.customers)

	customer, err := service.AddCustomer("Ada Lovelace", "5550101")
	require.NoError(t, err)
	assert.NotZero(t, customer.ID)

	listed, err := service.ListCustomers()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Ada Lovelace", listed[0].Name)
}

func TestCustomerService_AddCustomer_EmptyName(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewCustomerService(stores.customers)

	_, err := service.AddCustomer("   ", "5550101")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCustomerService_AddCustomer_NonNumericContact(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewCustomerService(stores.customers)

	for _, contact := range []string{"", "555-0101", "phone", "555 0101"} {
		_, err := service.AddCustomer("Ada Lovelace", contact)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "contact %q should be rejected", contact)
	}
}

func TestCustomerService_ListCustomers_SkipsBlankRows(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewCustomerService(stores.customers)

	_, err := service.AddCustomer("Ada Lovelace", "5550101")
	require.NoError(t, err)
	require.NoError(t, stores.db.Create(&entities.Customer{Name: "", Contact: ""}).Error)

	listed, err := service.ListCustomers()
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestCustomerService_DeleteCustomer_Missing(t *testing.T) {
	stores, cleanup := setupStores(t)
	defer cleanup()
	service := NewCustomerService(stores.customers)

	found, err := service.DeleteCustomer(999)
	require.NoError(t, err)
	assert.False(t, found)
}
