package validation_test

import (
	"testing"

	"github.com/SscSPs/customer_ledger_app/internal/dto"
	"github.com/SscSPs/customer_ledger_app/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, validation.Register(v))
	return v
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validEntry() dto.CreateEntryRequest {
	return dto.CreateEntryRequest{
		Customer:  "5b8c9a7e-3f5e-4a7e-9d1c-2f6b0c1d2e3f",
		Type:      "credit",
		Amount:    amount("200.00"),
		EntryDate: "2024-01-15",
	}
}

func TestMoneyRule(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name   string
		amount string
		valid  bool
	}{
		{"two decimals", "200.50", true},
		{"integer", "7", true},
		{"largest", "99999999.99", true},
		{"zero", "0", false},
		{"negative", "-5.00", false},
		{"three decimals", "1.005", false},
		{"too many digits", "100000000.00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEntry()
			req.Amount = amount(tt.amount)
			err := v.Struct(req)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, validation.FieldErrors(err), "amount")
		})
	}
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	v := newValidator(t)

	req := dto.CreateEntryRequest{Type: "refund", EntryDate: "15/01/2024"}
	fields := validation.FieldErrors(v.Struct(req))

	assert.Equal(t, "This field is required.", fields["customer"])
	assert.Equal(t, "This field is required.", fields["amount"])
	assert.Equal(t, "Must be one of: credit, debit.", fields["type"])
	assert.Equal(t, "Date has wrong format. Use YYYY-MM-DD.", fields["entry_date"])
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, validation.FieldErrors(assert.AnError))
}

func TestRegisterWithGinIsIdempotent(t *testing.T) {
	require.NoError(t, validation.RegisterWithGin())
	require.NoError(t, validation.RegisterWithGin())
}
