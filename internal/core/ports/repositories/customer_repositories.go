package repositories

import (
	"context"

	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
)

// CustomerReader defines read operations for customer data.
// Every method is scoped to the owning user; a customer owned by someone else is reported as apperrors.ErrNotFound.
type CustomerReader interface {
	// FindCustomerByID retrieves a customer owned by userID.
	FindCustomerByID(ctx context.Context, userID string, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers owned by userID in insertion order.
	ListCustomers(ctx context.Context, userID string) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer updates the mutable fields of a customer owned by customer.UserID.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes a customer owned by userID together with its entries.
	DeleteCustomer(ctx context.Context, userID string, customerID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
