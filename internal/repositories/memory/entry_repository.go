package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type EntryRepository struct {
	store *Store
}

var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

// checkEntryReferences must be called with the lock held.
func (s *Store) checkEntryReferences(entry domain.LedgerEntry) error {
	if _, ok := s.users[entry.UserID]; !ok {
		return fmt.Errorf("%w: referenced row does not exist (ledger_entries_user_id_fkey)", apperrors.ErrValidation)
	}
	if _, ok := s.customers[entry.CustomerID]; !ok {
		return fmt.Errorf("%w: referenced row does not exist (ledger_entries_customer_id_fkey)", apperrors.ErrValidation)
	}
	return nil
}

func (r *EntryRepository) SaveEntry(_ context.Context, entry domain.LedgerEntry) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEntryReferences(entry); err != nil {
		return err
	}
	if _, exists := s.entries[entry.EntryID]; exists {
		return fmt.Errorf("%w: ledger_entries_pkey", apperrors.ErrDuplicate)
	}
	s.entries[entry.EntryID] = entryRecord{seq: s.next(), LedgerEntry: entry}
	return nil
}

func (r *EntryRepository) FindEntryByID(_ context.Context, userID string, entryID string) (*domain.LedgerEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.entries[entryID]
	if !ok || rec.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	entry := rec.LedgerEntry
	return &entry, nil
}

func (r *EntryRepository) ListEntries(_ context.Context, userID string, filter domain.EntryFilter) ([]domain.LedgerEntry, error) {
	s := r.store
	s.mu.RLock()
	records := make([]entryRecord, 0)
	for _, rec := range s.entries {
		if rec.UserID == userID && filter.Matches(rec.LedgerEntry) {
			records = append(records, rec)
		}
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.Before(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.seq < b.seq
	})

	entries := make([]domain.LedgerEntry, len(records))
	for i, rec := range records {
		entries[i] = rec.LedgerEntry
	}
	return entries, nil
}

func (r *EntryRepository) UpdateEntry(_ context.Context, entry domain.LedgerEntry) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[entry.EntryID]
	if !ok || rec.UserID != entry.UserID {
		return apperrors.ErrNotFound
	}
	if err := s.checkEntryReferences(entry); err != nil {
		return err
	}
	rec.CustomerID = entry.CustomerID
	rec.Type = entry.Type
	rec.Amount = entry.Amount
	rec.Note = entry.Note
	rec.EntryDate = entry.EntryDate
	rec.LastUpdatedAt = entry.LastUpdatedAt
	s.entries[entry.EntryID] = rec
	return nil
}

func (r *EntryRepository) DeleteEntry(_ context.Context, userID string, entryID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.entries[entryID]
	if !ok || rec.UserID != userID {
		return apperrors.ErrNotFound
	}
	delete(s.entries, entryID)
	return nil
}

func (r *EntryRepository) SumEntriesByType(_ context.Context, userID string, customerID string) (map[domain.EntryType]decimal.Decimal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	sums := map[domain.EntryType]decimal.Decimal{
		domain.Credit: decimal.Zero,
		domain.Debit:  decimal.Zero,
	}
	for _, rec := range s.entries {
		if rec.UserID == userID && rec.CustomerID == customerID {
			sums[rec.Type] = sums[rec.Type].Add(rec.Amount)
		}
	}
	return sums, nil
}
