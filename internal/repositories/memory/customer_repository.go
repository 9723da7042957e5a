package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_app/internal/core/ports/repositories"
)

type CustomerRepository struct {
	store *Store
}

var _ portsrepo.CustomerRepositoryFacade = (*CustomerRepository)(nil)

func (r *CustomerRepository) SaveCustomer(_ context.Context, customer domain.Customer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[customer.UserID]; !ok {
		return fmt.Errorf("%w: referenced row does not exist (customers_user_id_fkey)", apperrors.ErrValidation)
	}
	if _, exists := s.customers[customer.CustomerID]; exists {
		return fmt.Errorf("%w: customers_pkey", apperrors.ErrDuplicate)
	}
	s.customers[customer.CustomerID] = customerRecord{seq: s.next(), Customer: customer}
	return nil
}

func (r *CustomerRepository) FindCustomerByID(_ context.Context, userID string, customerID string) (*domain.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.customers[customerID]
	if !ok || rec.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	customer := rec.Customer
	return &customer, nil
}

func (r *CustomerRepository) ListCustomers(_ context.Context, userID string) ([]domain.Customer, error) {
	s := r.store
	s.mu.RLock()
	records := make([]customerRecord, 0)
	for _, rec := range s.customers {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].seq < records[j].seq
	})

	customers := make([]domain.Customer, len(records))
	for i, rec := range records {
		customers[i] = rec.Customer
	}
	return customers, nil
}

func (r *CustomerRepository) UpdateCustomer(_ context.Context, customer domain.Customer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.customers[customer.CustomerID]
	if !ok || rec.UserID != customer.UserID {
		return apperrors.ErrNotFound
	}
	rec.Name = customer.Name
	rec.Phone = customer.Phone
	rec.Address = customer.Address
	rec.LastUpdatedAt = customer.LastUpdatedAt
	s.customers[customer.CustomerID] = rec
	return nil
}

// DeleteCustomer removes the customer and cascades to its entries.
func (r *CustomerRepository) DeleteCustomer(_ context.Context, userID string, customerID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.customers[customerID]
	if !ok || rec.UserID != userID {
		return apperrors.ErrNotFound
	}
	delete(s.customers, customerID)
	for id, entry := range s.entries {
		if entry.CustomerID == customerID {
			delete(s.entries, id)
		}
	}
	return nil
}
