package domain

import "github.com/shopspring/decimal"

// CustomerSummary is the derived credit/debit position of one customer.
type CustomerSummary struct {
	CustomerID  string
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
	Balance     decimal.Decimal
}

// NewCustomerSummary builds a summary from the two per-type totals.
func NewCustomerSummary(customerID string, totalCredit, totalDebit decimal.Decimal) CustomerSummary {
	return CustomerSummary{
		CustomerID:  customerID,
		TotalCredit: totalCredit,
		TotalDebit:  totalDebit,
		Balance:     totalCredit.Sub(totalDebit),
	}
}
