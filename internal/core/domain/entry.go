package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the closed set of ledger entry kinds.
type EntryType string

const (
	Credit EntryType = "credit"
	Debit  EntryType = "debit"
)

// ParseEntryType converts a raw value into an EntryType, rejecting anything but credit or debit.
func ParseEntryType(value string) (EntryType, error) {
	switch EntryType(value) {
	case Credit, Debit:
		return EntryType(value), nil
	default:
		return "", fmt.Errorf("invalid entry type %q, must be one of credit, debit", value)
	}
}

const (
	// AmountScale is the number of fractional digits stored for an amount.
	AmountScale = 2
	// AmountMaxDigits is the total number of digits an amount may carry (NUMERIC(10,2)).
	AmountMaxDigits = 10
)

// ValidateAmount checks that an amount is positive and fits NUMERIC(10,2) without rounding.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("amount must have at most %d decimal places", AmountScale)
	}
	maxAmount := decimal.New(1, AmountMaxDigits-AmountScale)
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount must have at most %d digits in total", AmountMaxDigits)
	}
	return nil
}

// FormatAmount renders an amount with exactly AmountScale fractional digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountScale)
}

// LedgerEntry is a single dated credit or debit recorded against a customer.
type LedgerEntry struct {
	EntryID    string          `json:"entryID"`    // Primary Key (UUID)
	UserID     string          `json:"userID"`     // Owner, FK -> users.user_id
	CustomerID string          `json:"customerID"` // FK -> customers.customer_id
	Type       EntryType       `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note"` // Nullable
	EntryDate  time.Time       `json:"entryDate"`
	AuditFields
}

// EntryFilter narrows a listing of a user's entries. Zero-valued fields are ignored.
type EntryFilter struct {
	CustomerID string
	Type       EntryType
	// StartDate and EndDate form an inclusive range and only apply when both are set.
	StartDate *time.Time
	EndDate   *time.Time
}

// HasDateRange reports whether the date range filter is in effect.
func (f EntryFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// Matches reports whether an entry satisfies the filter. Ownership is not checked here.
func (f EntryFilter) Matches(e LedgerEntry) bool {
	if f.CustomerID != "" && e.CustomerID != f.CustomerID {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.HasDateRange() {
		if e.EntryDate.Before(*f.StartDate) || e.EntryDate.After(*f.EndDate) {
			return false
		}
	}
	return true
}
