// Package memory provides a process-local repository backend guarded by a single RWMutex.
// It mirrors the relational schema's constraints: unique usernames, foreign keys and cascading deletes.
package memory

import (
	"sync"

	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_app/internal/core/ports/repositories"
)

// Store holds every table of the in-memory backend.
type Store struct {
	mu sync.RWMutex

	users     map[string]domain.User
	usernames map[string]string // username -> user id
	customers map[string]customerRecord
	entries   map[string]entryRecord
	nextSeq   uint64
}

// seq preserves insertion order when timestamps collide.
type customerRecord struct {
	seq uint64
	domain.Customer
}

type entryRecord struct {
	seq uint64
	domain.LedgerEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]domain.User),
		usernames: make(map[string]string),
		customers: make(map[string]customerRecord),
		entries:   make(map[string]entryRecord),
	}
}

// NewRepositoryProvider wires the in-memory repositories onto a fresh store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	store := NewStore()
	return portsrepo.RepositoryProvider{
		UserRepo:     &UserRepository{store: store},
		CustomerRepo: &CustomerRepository{store: store},
		EntryRepo:    &EntryRepository{store: store},
	}
}

// next must be called with the write lock held.
func (s *Store) next() uint64 {
	s.nextSeq++
	return s.nextSeq
}
