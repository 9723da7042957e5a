package services

import (
	"context"

	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	"github.com/SscSPs/customer_ledger_app/internal/dto"
)

// EntryReaderSvc defines read operations for ledger entries of the requesting user
type EntryReaderSvc interface {
	// ListEntries returns the entries owned by userID matching the query filters.
	ListEntries(ctx context.Context, userID string, params dto.ListEntriesParams) ([]domain.LedgerEntry, error)

	// GetEntryByID returns an entry owned by userID, or apperrors.ErrNotFound.
	GetEntryByID(ctx context.Context, userID string, entryID string) (*domain.LedgerEntry, error)
}

// EntryWriterSvc defines write operations for ledger entries of the requesting user
type EntryWriterSvc interface {
	// CreateEntry records an entry owned by userID against one of the user's customers.
	CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.LedgerEntry, error)

	// UpdateEntry applies the fields present in req to an entry owned by userID.
	UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateEntryRequest) (*domain.LedgerEntry, error)

	// DeleteEntry deletes an entry owned by userID.
	DeleteEntry(ctx context.Context, userID string, entryID string) error
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
