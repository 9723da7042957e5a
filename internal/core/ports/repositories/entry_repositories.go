package repositories

import (
	"context"

	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryReader defines read operations for ledger entry data, scoped to the owning user.
type EntryReader interface {
	// FindEntryByID retrieves an entry owned by userID.
	FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.LedgerEntry, error)

	// ListEntries retrieves the entries owned by userID that match the filter.
	ListEntries(ctx context.Context, userID string, filter domain.EntryFilter) ([]domain.LedgerEntry, error)
}

// EntryWriter defines write operations for ledger entry data
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// UpdateEntry updates an entry owned by entry.UserID.
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error

	// DeleteEntry removes an entry owned by userID.
	DeleteEntry(ctx context.Context, userID string, entryID string) error
}

// EntryAggregator defines aggregate queries over ledger entries
type EntryAggregator interface {
	// SumEntriesByType returns the exact sum of amounts per entry type for one customer,
	// restricted to entries owned by userID. Missing types sum to zero.
	SumEntriesByType(ctx context.Context, userID string, customerID string) (map[domain.EntryType]decimal.Decimal, error)
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
	EntryAggregator
}
