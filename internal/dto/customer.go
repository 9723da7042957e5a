package dto

import (
	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a customer, and the full
// representation expected by PUT.
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Phone   string  `json:"phone" binding:"required,max=20"`
	Address *string `json:"address"` // Optional
}

// UpdateCustomerRequest defines the data allowed for a partial customer update.
// Pointers distinguish omitted fields from zero values.
type UpdateCustomerRequest struct {
	Name    *string          `json:"name" binding:"omitempty,max=100"`
	Phone   *string          `json:"phone" binding:"omitempty,max=20"`
	Address Optional[string] `json:"address" swaggertype:"string"` // null clears it
}

// ToUpdateCustomerRequest turns a full representation into an update touching every field.
// An omitted address clears it.
func (r CreateCustomerRequest) ToUpdateCustomerRequest() UpdateCustomerRequest {
	name, phone := r.Name, r.Phone
	return UpdateCustomerRequest{
		Name:    &name,
		Phone:   &phone,
		Address: Some(r.Address),
	}
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address *string `json:"address"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.CustomerID,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to a slice of CustomerResponse DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

// CustomerSummaryResponse is the credit/debit position of one customer.
// Amounts are rendered with two fractional digits.
type CustomerSummaryResponse struct {
	TotalCredit string `json:"total_credit"`
	TotalDebit  string `json:"total_debit"`
	Balance     string `json:"balance"`
}

// ToCustomerSummaryResponse converts a domain.CustomerSummary to its DTO
func ToCustomerSummaryResponse(s domain.CustomerSummary) CustomerSummaryResponse {
	return CustomerSummaryResponse{
		TotalCredit: domain.FormatAmount(s.TotalCredit),
		TotalDebit:  domain.FormatAmount(s.TotalDebit),
		Balance:     domain.FormatAmount(s.Balance),
	}
}
