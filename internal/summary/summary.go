// Package summary derives totals and chart data from a transaction sequence.
// Every function here is pure and recomputes from scratch.
package summary

import (
	"github.com/Veraticus/finance-tracker/internal/model"
	"github.com/shopspring/decimal"
)

// Chart slice names.
const (
	SliceIncome  = "Income"
	SliceExpense = "Expense"
)

// Summary holds the derived totals of a transaction sequence.
// Expense is the (non-positive) sum of negative amounts.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
	Count   int
}

// Slice is one category of the proportion chart.
type Slice struct {
	Name  string
	Value decimal.Decimal
}

// Compute sums incomes and expenses. Zero amounts count toward Count only.
func Compute(txns []model.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, txn := range txns {
		switch {
		case txn.Amount.IsPositive():
			income = income.Add(txn.Amount)
		case txn.Amount.IsNegative():
			expense = expense.Add(txn.Amount)
		}
	}

	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Add(expense),
		Count:   len(txns),
	}
}

// Chart returns the two chart slices: income and the magnitude of expense.
func (s Summary) Chart() []Slice {
	return []Slice{
		{Name: SliceIncome, Value: s.Income},
		{Name: SliceExpense, Value: s.Expense.Abs()},
	}
}

// Total is the sum of both chart slices.
func (s Summary) Total() decimal.Decimal {
	return s.Income.Add(s.Expense.Abs())
}

// IncomeShare returns the fraction of the chart taken by income, in [0, 1].
// It is 0 when both slices are zero.
func (s Summary) IncomeShare() float64 {
	total := s.Total()
	if total.IsZero() {
		return 0
	}
	return s.Income.Div(total).InexactFloat64()
}

// Share returns the fraction of the chart taken by the named slice.
func (s Summary) Share(name string) float64 {
	total := s.Total()
	if total.IsZero() {
		return 0
	}
	for _, slice := range s.Chart() {
		if slice.Name == name {
			return slice.Value.Div(total).InexactFloat64()
		}
	}
	return 0
}

// IsEmpty returns true when no transactions were summarized.
func (s Summary) IsEmpty() bool {
	return s.Count == 0
}
