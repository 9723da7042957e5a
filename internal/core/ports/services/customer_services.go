package services

import (
	"context"

	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	"github.com/SscSPs/customer_ledger_app/internal/dto"
)

// CustomerReaderSvc defines read operations for customers of the requesting user
type CustomerReaderSvc interface {
	// ListCustomers returns the customers owned by userID.
	ListCustomers(ctx context.Context, userID string) ([]domain.Customer, error)

	// GetCustomerByID returns a customer owned by userID, or apperrors.ErrNotFound.
	GetCustomerByID(ctx context.Context, userID string, customerID string) (*domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customers of the requesting user
type CustomerWriterSvc interface {
	// CreateCustomer creates a customer owned by userID.
	CreateCustomer(ctx context.Context, userID string, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// UpdateCustomer applies the fields present in req to a customer owned by userID.
	UpdateCustomer(ctx context.Context, userID string, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer deletes a customer owned by userID along with its entries.
	DeleteCustomer(ctx context.Context, userID string, customerID string) error
}

// CustomerSummarySvc defines the aggregate view over a customer's entries
type CustomerSummarySvc interface {
	// GetCustomerSummary returns total credit, total debit and balance for a customer owned by userID.
	GetCustomerSummary(ctx context.Context, userID string, customerID string) (*domain.CustomerSummary, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
	CustomerSummarySvc
}
