package pgsql

import (
	portsrepo "github.com/SscSPs/customer_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed repositories onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
		EntryRepo:    newPgxEntryRepository(dbPool),
	}
}
