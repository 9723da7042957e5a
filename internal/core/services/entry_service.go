package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	"github.com/SscSPs/customer_ledger_app/internal/core/ports"
	portsrepo "github.com/SscSPs/customer_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_app/internal/dto"
	"github.com/SscSPs/customer_ledger_app/internal/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type entryService struct {
	BaseService
	entryRepo    portsrepo.EntryRepositoryFacade
	customerRepo portsrepo.CustomerReader
	publisher    ports.EventPublisher
	now          func() time.Time
}

// EntryServiceOption is a functional option for configuring the entry service
type EntryServiceOption func(*entryService)

// WithEventPublisher publishes entry lifecycle events after each committed write.
func WithEventPublisher(publisher ports.EventPublisher) EntryServiceOption {
	return func(s *entryService) {
		s.publisher = publisher
	}
}

// WithEntryClock overrides the clock used for audit timestamps and events.
func WithEntryClock(now func() time.Time) EntryServiceOption {
	return func(s *entryService) {
		s.now = now
	}
}

func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, customerRepo portsrepo.CustomerReader, options ...EntryServiceOption) portssvc.EntrySvcFacade {
	svc := &entryService{
		entryRepo:    entryRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// parseFilter turns raw query parameters into an EntryFilter.
// A lone start_date or end_date is ignored.
func parseFilter(params dto.ListEntriesParams) (domain.EntryFilter, error) {
	var filter domain.EntryFilter

	if params.Customer != "" {
		if !isUUID(params.Customer) {
			return filter, apperrors.NewFieldError("customer", "Must be a valid UUID.")
		}
		filter.CustomerID = params.Customer
	}

	if params.Type != "" {
		entryType, err := domain.ParseEntryType(params.Type)
		if err != nil {
			return filter, apperrors.NewFieldError("type", "Select a valid choice. That choice is not one of the available choices.")
		}
		filter.Type = entryType
	}

	if params.StartDate != "" && params.EndDate != "" {
		start, err := domain.ParseDate(params.StartDate)
		if err != nil {
			return filter, apperrors.NewFieldError("start_date", "Enter a valid date.")
		}
		end, err := domain.ParseDate(params.EndDate)
		if err != nil {
			return filter, apperrors.NewFieldError("end_date", "Enter a valid date.")
		}
		filter.StartDate = &start
		filter.EndDate = &end
	}

	return filter, nil
}

func (s *entryService) ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) ([]domain.LedgerEntry, error) {
	filter, err := parseFilter(params)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntries(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func (s *entryService) GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.LedgerEntry, error) {
	if !isUUID(entryID) {
		return nil, apperrors.ErrNotFound
	}
	entry, err := s.entryRepo.FindEntryByID(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return entry, nil
}

// ownedCustomer checks that customerID names one of the requester's customers.
// Unknown and foreign customers are both reported as an invalid reference.
func (s *entryService) ownedCustomer(ctx context.Context, userID string, customerID string) error {
	invalid := apperrors.NewFieldError("customer", fmt.Sprintf("Invalid pk %q - object does not exist.", customerID))
	if !isUUID(customerID) {
		return invalid
	}
	if _, err := s.customerRepo.FindCustomerByID(ctx, userID, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return invalid
		}
		s.LogError(ctx, err, "Failed to verify entry customer", slog.String("customer_id", customerID))
		return fmt.Errorf("failed to verify customer: %w", err)
	}
	return nil
}

func parseEntryType(value string) (domain.EntryType, error) {
	entryType, err := domain.ParseEntryType(value)
	if err != nil {
		return "", apperrors.NewFieldError("type", fmt.Sprintf("%q is not a valid choice.", value))
	}
	return entryType, nil
}

func validateAmount(amount *decimal.Decimal) error {
	if amount == nil {
		return apperrors.NewFieldError("amount", "This field is required.")
	}
	if err := domain.ValidateAmount(*amount); err != nil {
		return apperrors.NewFieldError("amount", err.Error())
	}
	return nil
}

func parseEntryDate(value string) (time.Time, error) {
	date, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewFieldError("entry_date", "Date has wrong format. Use YYYY-MM-DD.")
	}
	return date, nil
}

func (s *entryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.LedgerEntry, error) {
	entryType, err := parseEntryType(req.Type)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	entryDate, err := parseEntryDate(req.EntryDate)
	if err != nil {
		return nil, err
	}
	if err := s.ownedCustomer(ctx, userID, req.Customer); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	entry := domain.LedgerEntry{
		EntryID:     uuid.NewString(),
		UserID:      userID,
		CustomerID:  req.Customer,
		Type:        entryType,
		Amount:      *req.Amount,
		Note:        req.Note,
		EntryDate:   entryDate,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			// The customer was deleted between the ownership check and the insert.
			return nil, apperrors.NewFieldError("customer", fmt.Sprintf("Invalid pk %q - object does not exist.", req.Customer))
		}
		s.LogError(ctx, err, "Failed to save entry", slog.String("customer_id", req.Customer))
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.LogInfo(ctx, "Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("customer_id", entry.CustomerID),
		slog.String("type", string(entry.Type)))
	s.recordWrite(ctx, domain.EntryCreated, entry)
	return &entry, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateEntryRequest) (*domain.LedgerEntry, error) {
	entry, err := s.GetEntryByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		entryType, err := parseEntryType(*req.Type)
		if err != nil {
			return nil, err
		}
		entry.Type = entryType
	}
	if req.Amount != nil {
		if err := validateAmount(req.Amount); err != nil {
			return nil, err
		}
		entry.Amount = *req.Amount
	}
	if req.EntryDate != nil {
		entryDate, err := parseEntryDate(*req.EntryDate)
		if err != nil {
			return nil, err
		}
		entry.EntryDate = entryDate
	}
	if req.Note.Set {
		entry.Note = req.Note.Value
	}
	if req.Customer != nil && *req.Customer != entry.CustomerID {
		if err := s.ownedCustomer(ctx, userID, *req.Customer); err != nil {
			return nil, err
		}
		entry.CustomerID = *req.Customer
	}
	entry.LastUpdatedAt = s.now().UTC()

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, err
		case errors.Is(err, apperrors.ErrValidation):
			return nil, apperrors.NewFieldError("customer", fmt.Sprintf("Invalid pk %q - object does not exist.", entry.CustomerID))
		}
		s.LogError(ctx, err, "Failed to update entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	s.recordWrite(ctx, domain.EntryUpdated, *entry)
	return entry, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	entry, err := s.GetEntryByID(ctx, userID, entryID)
	if err != nil {
		return err
	}

	if err := s.entryRepo.DeleteEntry(ctx, userID, entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	s.recordWrite(ctx, domain.EntryDeleted, *entry)
	return nil
}

// recordWrite counts a committed write and publishes its event.
// Publishing failures are logged only; the write has already been committed.
func (s *entryService) recordWrite(ctx context.Context, eventType domain.EntryEventType, entry domain.LedgerEntry) {
	metrics.EntriesWritten.WithLabelValues(operationLabel(eventType), string(entry.Type)).Inc()

	if s.publisher == nil {
		return
	}
	event := domain.NewEntryEvent(eventType, entry, s.now().UTC())
	if err := s.publisher.Publish(ctx, event); err != nil {
		metrics.EventsPublishFailed.Inc()
		s.LogError(ctx, err, "Failed to publish entry event",
			slog.String("event", string(eventType)),
			slog.String("entry_id", entry.EntryID))
	}
}

func operationLabel(eventType domain.EntryEventType) string {
	switch eventType {
	case domain.EntryCreated:
		return "create"
	case domain.EntryUpdated:
		return "update"
	case domain.EntryDeleted:
		return "delete"
	default:
		return "unknown"
	}
}
