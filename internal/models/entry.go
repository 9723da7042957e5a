package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType mirrors the CHECK constraint on ledger_entries.type.
type EntryType string

const (
	Credit EntryType = "credit"
	Debit  EntryType = "debit"
)

// LedgerEntry represents a row of the ledger_entries table.
// Amount is stored as NUMERIC(10,2).
type LedgerEntry struct {
	EntryID    string          `db:"entry_id"`
	UserID     string          `db:"user_id"`
	CustomerID string          `db:"customer_id"`
	Type       EntryType       `db:"type"`
	Amount     decimal.Decimal `db:"amount"`
	Note       sql.NullString  `db:"note"`
	EntryDate  time.Time       `db:"entry_date"`
	AuditFields
}
