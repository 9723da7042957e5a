package models

import "database/sql"

// Customer represents a row of the customers table.
type Customer struct {
	CustomerID string         `db:"customer_id"`
	UserID     string         `db:"user_id"`
	Name       string         `db:"name"`
	Phone      string         `db:"phone"`
	Address    sql.NullString `db:"address"`
	AuditFields
}
