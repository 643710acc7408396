// Package viewmodel turns ledger state into plain, display-ready values.
package viewmodel

import (
	"github.com/Veraticus/finance-tracker/internal/model"
	"github.com/Veraticus/finance-tracker/internal/summary"
)

// SummaryView holds the formatted totals.
type SummaryView struct {
	Balance         string
	Income          string
	Expense         string
	Slices          []SliceView
	BalanceNegative bool
	Empty           bool
}

// SliceView is one chart slice ready for display.
type SliceView struct {
	Name    string
	Value   string
	Percent string
	Share   float64
}

// EntryView is a single list row.
type EntryView struct {
	ID        string
	Label     string
	Amount    string
	Direction model.Direction
}

// NewSummaryView formats the totals of s. Expense is shown as its magnitude.
func NewSummaryView(s summary.Summary, currency string) SummaryView {
	view := SummaryView{
		Balance:         FormatTotal(s.Balance, currency),
		Income:          FormatTotal(s.Income, currency),
		Expense:         FormatTotal(s.Expense.Abs(), currency),
		BalanceNegative: s.Balance.IsNegative(),
		Empty:           s.IsEmpty(),
	}

	for _, slice := range s.Chart() {
		share := s.Share(slice.Name)
		view.Slices = append(view.Slices, SliceView{
			Name:    slice.Name,
			Value:   FormatTotal(slice.Value, currency),
			Percent: FormatPercent(share),
			Share:   share,
		})
	}

	return view
}

// NewEntryViews builds list rows in the given order.
func NewEntryViews(txns []model.Transaction, currency string) []EntryView {
	rows := make([]EntryView, 0, len(txns))
	for _, txn := range txns {
		rows = append(rows, EntryView{
			ID:        txn.ID,
			Label:     txn.Label,
			Amount:    FormatSigned(txn.Amount, currency),
			Direction: txn.Direction(),
		})
	}
	return rows
}
