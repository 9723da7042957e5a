package dto

import (
	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to record a ledger entry, and the full
// representation expected by PUT. Amount accepts a JSON string or number.
type CreateEntryRequest struct {
	Customer  string           `json:"customer" binding:"required,uuid"`
	Type      string           `json:"type" binding:"required,oneof=credit debit"`
	Amount    *decimal.Decimal `json:"amount" binding:"required,money"`
	Note      *string          `json:"note"`
	EntryDate string           `json:"entry_date" binding:"required,datetime=2006-01-02"`
}

// UpdateEntryRequest defines the data allowed for a partial entry update.
type UpdateEntryRequest struct {
	Customer  *string          `json:"customer" binding:"omitempty,uuid"`
	Type      *string          `json:"type" binding:"omitempty,oneof=credit debit"`
	Amount    *decimal.Decimal `json:"amount" binding:"omitempty,money"`
	Note      Optional[string] `json:"note" swaggertype:"string"` // null clears it
	EntryDate *string          `json:"entry_date" binding:"omitempty,datetime=2006-01-02"`
}

// ToUpdateEntryRequest turns a full representation into an update touching every field.
// An omitted note clears it.
func (r CreateEntryRequest) ToUpdateEntryRequest() UpdateEntryRequest {
	customer, entryType, entryDate := r.Customer, r.Type, r.EntryDate
	return UpdateEntryRequest{
		Customer:  &customer,
		Type:      &entryType,
		Amount:    r.Amount,
		Note:      Some(r.Note),
		EntryDate: &entryDate,
	}
}

// ListEntriesParams defines the optional query filters for listing entries.
// StartDate and EndDate only apply when both are supplied.
type ListEntriesParams struct {
	Customer  string `form:"customer"`
	Type      string `form:"type"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	ID        string           `json:"id"`
	Customer  string           `json:"customer"`
	Type      domain.EntryType `json:"type"`
	Amount    string           `json:"amount"`
	Note      *string          `json:"note"`
	EntryDate string           `json:"entry_date"`
}

// ToEntryResponse converts a domain.LedgerEntry to EntryResponse DTO
func ToEntryResponse(e *domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		ID:        e.EntryID,
		Customer:  e.CustomerID,
		Type:      e.Type,
		Amount:    domain.FormatAmount(e.Amount),
		Note:      e.Note,
		EntryDate: e.EntryDate.Format(domain.DateLayout),
	}
}

// ToListEntryResponse converts a slice of domain.LedgerEntry to a slice of EntryResponse DTOs
func ToListEntryResponse(entries []domain.LedgerEntry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return res
}
