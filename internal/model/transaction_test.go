package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	txn := NewTransaction("Salary", decimal.RequireFromString("1000"), now)

	assert.Equal(t, "Salary", txn.Label)
	assert.True(t, txn.Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, now, txn.CreatedAt)
	assert.Equal(t, SourceManual, txn.Source)

	parsed, err := uuid.Parse(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestTransaction_Direction(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		want        Direction
		wantIncome  bool
		wantExpense bool
	}{
		{name: "income", amount: "1000", want: DirectionIncome, wantIncome: true},
		{name: "expense", amount: "-50", want: DirectionExpense, wantExpense: true},
		{name: "zero", amount: "0", want: DirectionNeutral},
		{name: "tiny income", amount: "0.0001", want: DirectionIncome, wantIncome: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := Transaction{Amount: decimal.RequireFromString(tt.amount)}
			assert.Equal(t, tt.want, txn.Direction())
			assert.Equal(t, tt.wantIncome, txn.IsIncome())
			assert.Equal(t, tt.wantExpense, txn.IsExpense())
		})
	}
}
