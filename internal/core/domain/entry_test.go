package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryType(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    domain.EntryType
		wantErr bool
	}{
		{name: "credit", value: "credit", want: domain.Credit},
		{name: "debit", value: "debit", want: domain.Debit},
		{name: "upper case is rejected", value: "CREDIT", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "unknown", value: "transfer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseEntryType(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "two decimals", amount: "100.00"},
		{name: "integer", amount: "50"},
		{name: "one decimal", amount: "0.5"},
		{name: "largest value", amount: "99999999.99"},
		{name: "zero", amount: "0", wantErr: true},
		{name: "negative", amount: "-10.00", wantErr: true},
		{name: "three decimals", amount: "1.005", wantErr: true},
		{name: "too many digits", amount: "100000000.00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidateAmount(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "200.00", domain.FormatAmount(decimal.NewFromInt(200)))
	assert.Equal(t, "-12.50", domain.FormatAmount(decimal.RequireFromString("-12.5")))
	assert.Equal(t, "0.00", domain.FormatAmount(decimal.Zero))
}

func TestEntryFilter_Matches(t *testing.T) {
	day := func(s string) time.Time {
		d, err := domain.ParseDate(s)
		require.NoError(t, err)
		return d
	}
	start, end := day("2024-01-10"), day("2024-01-20")
	entry := domain.LedgerEntry{CustomerID: "c1", Type: domain.Credit, EntryDate: day("2024-01-10")}

	tests := []struct {
		name   string
		filter domain.EntryFilter
		entry  domain.LedgerEntry
		want   bool
	}{
		{name: "empty filter", filter: domain.EntryFilter{}, entry: entry, want: true},
		{name: "customer match", filter: domain.EntryFilter{CustomerID: "c1"}, entry: entry, want: true},
		{name: "customer mismatch", filter: domain.EntryFilter{CustomerID: "c2"}, entry: entry, want: false},
		{name: "type mismatch", filter: domain.EntryFilter{Type: domain.Debit}, entry: entry, want: false},
		{name: "start bound is inclusive", filter: domain.EntryFilter{StartDate: &start, EndDate: &end}, entry: entry, want: true},
		{
			name:   "end bound is inclusive",
			filter: domain.EntryFilter{StartDate: &start, EndDate: &end},
			entry:  domain.LedgerEntry{EntryDate: day("2024-01-20")},
			want:   true,
		},
		{
			name:   "outside range",
			filter: domain.EntryFilter{StartDate: &start, EndDate: &end},
			entry:  domain.LedgerEntry{EntryDate: day("2024-01-21")},
			want:   false,
		},
		{
			name:   "single bound is ignored",
			filter: domain.EntryFilter{StartDate: &end},
			entry:  domain.LedgerEntry{EntryDate: day("2023-12-31")},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.entry))
		})
	}
}

func TestNewCustomerSummary(t *testing.T) {
	summary := domain.NewCustomerSummary("c1", decimal.RequireFromString("200.00"), decimal.RequireFromString("250.10"))
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("-50.10")))
	assert.Equal(t, "-50.10", domain.FormatAmount(summary.Balance))
}
