package viewmodel

import (
	"testing"
	"time"

	"github.com/Veraticus/finance-tracker/internal/model"
	"github.com/Veraticus/finance-tracker/internal/summary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTotal(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "950", want: "₹950.00"},
		{amount: "0", want: "₹0.00"},
		{amount: "-50", want: "-₹50.00"},
		{amount: "49.999", want: "₹50.00"},
		{amount: "1000.5", want: "₹1000.50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTotal(decimal.RequireFromString(tt.amount), "₹"))
		})
	}
}

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "1000", want: "+₹1000"},
		{amount: "-50", want: "-₹50"},
		{amount: "-49.99", want: "-₹49.99"},
		{amount: "1000.50", want: "+₹1000.5"},
		{amount: "0", want: "₹0"},
		{amount: "-0.00", want: "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSigned(decimal.RequireFromString(tt.amount), "₹"))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "95.2%", FormatPercent(1000.0/1050.0))
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "100.0%", FormatPercent(1))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "Salary", TruncateString("Salary", 10))
	assert.Equal(t, "Groce...", TruncateString("Groceries and more", 8))
	assert.Equal(t, "Gr", TruncateString("Groceries", 2))
	assert.Equal(t, "₹₹...", TruncateString("₹₹₹₹₹₹", 5))
}

func txn(label, amount string) model.Transaction {
	return model.NewTransaction(label, decimal.RequireFromString(amount), time.Now())
}

func TestNewSummaryView(t *testing.T) {
	s := summary.Compute([]model.Transaction{txn("Coffee", "-50"), txn("Salary", "1000")})

	view := NewSummaryView(s, "₹")

	assert.Equal(t, "₹950.00", view.Balance)
	assert.Equal(t, "₹1000.00", view.Income)
	assert.Equal(t, "₹50.00", view.Expense)
	assert.False(t, view.BalanceNegative)
	assert.False(t, view.Empty)

	require.Len(t, view.Slices, 2)
	assert.Equal(t, summary.SliceIncome, view.Slices[0].Name)
	assert.Equal(t, "₹1000.00", view.Slices[0].Value)
	assert.Equal(t, "95.2%", view.Slices[0].Percent)
	assert.Equal(t, summary.SliceExpense, view.Slices[1].Name)
	assert.Equal(t, "₹50.00", view.Slices[1].Value)
	assert.Equal(t, "4.8%", view.Slices[1].Percent)
}

func TestNewSummaryView_Empty(t *testing.T) {
	view := NewSummaryView(summary.Compute(nil), "₹")

	assert.True(t, view.Empty)
	assert.Equal(t, "₹0.00", view.Balance)
	require.Len(t, view.Slices, 2)
	for _, slice := range view.Slices {
		assert.Equal(t, "₹0.00", slice.Value)
		assert.Zero(t, slice.Share)
	}
}

func TestNewSummaryView_NegativeBalance(t *testing.T) {
	view := NewSummaryView(summary.Compute([]model.Transaction{txn("Rent", "-50")}), "$")

	assert.Equal(t, "-$50.00", view.Balance)
	assert.True(t, view.BalanceNegative)
	assert.Equal(t, "$50.00", view.Expense)
}

func TestNewEntryViews(t *testing.T) {
	rows := NewEntryViews([]model.Transaction{
		txn("Coffee", "-50"),
		txn("Salary", "1000"),
		txn("Refund", "0"),
	}, "₹")

	require.Len(t, rows, 3)
	assert.Equal(t, EntryView{ID: rows[0].ID, Label: "Coffee", Amount: "-₹50", Direction: model.DirectionExpense}, rows[0])
	assert.Equal(t, "+₹1000", rows[1].Amount)
	assert.Equal(t, model.DirectionIncome, rows[1].Direction)
	assert.Equal(t, "₹0", rows[2].Amount)
	assert.Equal(t, model.DirectionNeutral, rows[2].Direction)
}
