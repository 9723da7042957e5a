package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_app/internal/dto"
	"github.com/google/uuid"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	entryRepo    portsrepo.EntryAggregator
	now          func() time.Time
}

// CustomerServiceOption is a functional option for configuring the customer service
type CustomerServiceOption func(*customerService)

// WithCustomerClock overrides the clock used for audit timestamps.
func WithCustomerClock(now func() time.Time) CustomerServiceOption {
	return func(s *customerService) {
		s.now = now
	}
}

func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, entryRepo portsrepo.EntryAggregator, options ...CustomerServiceOption) portssvc.CustomerSvcFacade {
	svc := &customerService{
		customerRepo: customerRepo,
		entryRepo:    entryRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func validateCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewFieldError("name", "This field may not be blank.")
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return apperrors.NewFieldError("name",
			fmt.Sprintf("Ensure this field has no more than %d characters.", domain.MaxCustomerNameLength))
	}
	return nil
}

func validateCustomerPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return apperrors.NewFieldError("phone", "This field may not be blank.")
	}
	if utf8.RuneCountInString(phone) > domain.MaxCustomerPhoneLength {
		return apperrors.NewFieldError("phone",
			fmt.Sprintf("Ensure this field has no more than %d characters.", domain.MaxCustomerPhoneLength))
	}
	return nil
}

func (s *customerService) CreateCustomer(ctx context.Context, userID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if err := validateCustomerName(req.Name); err != nil {
		return nil, err
	}
	if err := validateCustomerPhone(req.Phone); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, userID string) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, userID string, customerID string) (*domain.Customer, error) {
	if !isUUID(customerID) {
		return nil, apperrors.ErrNotFound
	}
	customer, err := s.customerRepo.FindCustomerByID(ctx, userID, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get customer", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, userID string, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.GetCustomerByID(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := validateCustomerName(*req.Name); err != nil {
			return nil, err
		}
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		if err := validateCustomerPhone(*req.Phone); err != nil {
			return nil, err
		}
		customer.Phone = *req.Phone
	}
	if req.Address.Set {
		customer.Address = req.Address.Value
	}
	customer.LastUpdatedAt = s.now().UTC()

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, userID string, customerID string) error {
	if !isUUID(customerID) {
		return apperrors.ErrNotFound
	}
	if err := s.customerRepo.DeleteCustomer(ctx, userID, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}

func (s *customerService) GetCustomerSummary(ctx context.Context, userID string, customerID string) (*domain.CustomerSummary, error) {
	if _, err := s.GetCustomerByID(ctx, userID, customerID); err != nil {
		return nil, err
	}

	sums, err := s.entryRepo.SumEntriesByType(ctx, userID, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum customer entries", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to compute customer summary: %w", err)
	}

	summary := domain.NewCustomerSummary(customerID, sums[domain.Credit], sums[domain.Debit])
	return &summary, nil
}
