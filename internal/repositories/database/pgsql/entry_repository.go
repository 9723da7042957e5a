package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/customer_ledger_app/internal/models"
	"github.com/SscSPs/customer_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, user_id, customer_id, type, amount, note, entry_date, created_at, last_updated_at`

func scanEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.UserID,
		&m.CustomerID,
		&m.Type,
		&m.Amount,
		&m.Note,
		&m.EntryDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (entry_id, user_id, customer_id, type, amount, note, entry_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.UserID, m.CustomerID, m.Type, m.Amount, m.Note, m.EntryDate, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to save ledger entry %s", m.EntryID))
	}
	return nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, userID string, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE entry_id = $1 AND user_id = $2;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID, userID))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find ledger entry %s", entryID))
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// buildEntryFilter renders the WHERE clause for a user's entries; the user is always $1.
func buildEntryFilter(userID string, filter domain.EntryFilter) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if filter.CustomerID != "" {
		add("customer_id = $%d", filter.CustomerID)
	}
	if filter.Type != "" {
		add("type = $%d", string(filter.Type))
	}
	if filter.HasDateRange() {
		add("entry_date >= $%d", *filter.StartDate)
		add("entry_date <= $%d", *filter.EndDate)
	}
	return strings.Join(conditions, " AND "), args
}

func (r *PgxEntryRepository) ListEntries(ctx context.Context, userID string, filter domain.EntryFilter) ([]domain.LedgerEntry, error) {
	where, args := buildEntryFilter(userID, filter)
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE ` + where + ` ORDER BY entry_date, created_at, entry_id;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to list ledger entries for user %s", userID))
	}
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		UPDATE ledger_entries
		SET customer_id = $1, type = $2, amount = $3, note = $4, entry_date = $5, last_updated_at = $6
		WHERE entry_id = $7 AND user_id = $8;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.Type, m.Amount, m.Note, m.EntryDate, m.LastUpdatedAt, m.EntryID, m.UserID,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update ledger entry %s", m.EntryID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	query := `DELETE FROM ledger_entries WHERE entry_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, entryID, userID)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to delete ledger entry %s", entryID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEntryRepository) SumEntriesByType(ctx context.Context, userID string, customerID string) (map[domain.EntryType]decimal.Decimal, error) {
	query := `
		SELECT type, COALESCE(SUM(amount), 0)
		FROM ledger_entries
		WHERE user_id = $1 AND customer_id = $2
		GROUP BY type;
	`
	rows, err := r.Pool.Query(ctx, query, userID, customerID)
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to sum ledger entries for customer %s", customerID))
	}
	defer rows.Close()

	sums := map[domain.EntryType]decimal.Decimal{
		domain.Credit: decimal.Zero,
		domain.Debit:  decimal.Zero,
	}
	for rows.Next() {
		var entryType models.EntryType
		var total decimal.Decimal
		if err := rows.Scan(&entryType, &total); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry sum: %w", err)
		}
		sums[domain.EntryType(entryType)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry sums: %w", err)
	}
	return sums, nil
}
