package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/customer_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	entry := domain.LedgerEntry{
		EntryID:    "e1",
		UserID:     "u1",
		CustomerID: "c1",
		Type:       domain.Debit,
		Amount:     decimal.RequireFromString("50"),
		EntryDate:  time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
	}

	msg, err := buildMessage(domain.NewEntryEvent(domain.EntryCreated, entry, at))
	require.NoError(t, err)

	assert.Equal(t, []byte("c1"), msg.Key)
	assert.Equal(t, at, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "ledger.entry.created", string(msg.Headers[0].Value))

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "e1", body["entry_id"])
	assert.Equal(t, "debit", body["type"])
	assert.Equal(t, "50.00", body["amount"])
	assert.Equal(t, "2024-04-30", body["entry_date"])
}
