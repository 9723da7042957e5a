package domain

import "time"

// EntryEventType names a ledger entry lifecycle event.
type EntryEventType string

const (
	EntryCreated EntryEventType = "ledger.entry.created"
	EntryUpdated EntryEventType = "ledger.entry.updated"
	EntryDeleted EntryEventType = "ledger.entry.deleted"
)

// EntryEvent is published after a ledger entry write has been committed.
type EntryEvent struct {
	Event      EntryEventType `json:"event"`
	EntryID    string         `json:"entry_id"`
	UserID     string         `json:"user_id"`
	CustomerID string         `json:"customer_id"`
	Type       EntryType      `json:"type"`
	Amount     string         `json:"amount"`
	EntryDate  string         `json:"entry_date"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewEntryEvent builds an event describing entry at the given instant.
func NewEntryEvent(eventType EntryEventType, entry LedgerEntry, at time.Time) EntryEvent {
	return EntryEvent{
		Event:      eventType,
		EntryID:    entry.EntryID,
		UserID:     entry.UserID,
		CustomerID: entry.CustomerID,
		Type:       entry.Type,
		Amount:     FormatAmount(entry.Amount),
		EntryDate:  entry.EntryDate.Format(DateLayout),
		OccurredAt: at,
	}
}
