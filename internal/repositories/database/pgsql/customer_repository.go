package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/customer_ledger_app/internal/models"
	"github.com/SscSPs/customer_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, user_id, name, phone, address, created_at, last_updated_at`

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.UserID,
		&m.Name,
		&m.Phone,
		&m.Address,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, user_id, name, phone, address, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.UserID, m.Name, m.Phone, m.Address, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to save customer %s", m.CustomerID))
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, userID string, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1 AND user_id = $2;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID, userID))
	if err != nil {
		return nil, translateError(err, fmt.Sprintf("failed to find customer %s", customerID))
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, userID string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE user_id = $1 ORDER BY created_at, customer_id;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers for user %s: %w", userID, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return mapping.ToDomainCustomerSlice(customers), nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $1, phone = $2, address = $3, last_updated_at = $4
		WHERE customer_id = $5 AND user_id = $6;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Name, m.Phone, m.Address, m.LastUpdatedAt, m.CustomerID, m.UserID)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to update customer %s", m.CustomerID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCustomer relies on ON DELETE CASCADE to remove the customer's entries.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, userID string, customerID string) error {
	query := `DELETE FROM customers WHERE customer_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, customerID, userID)
	if err != nil {
		return translateError(err, fmt.Sprintf("failed to delete customer %s", customerID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
