package components

import (
	"strings"
	"testing"

	"github.com/Veraticus/finance-tracker/internal/model"
	tuitest "github.com/Veraticus/finance-tracker/internal/tui/testing"
	"github.com/Veraticus/finance-tracker/internal/tui/themes"
	"github.com/Veraticus/finance-tracker/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func rows(n int) []viewmodel.EntryView {
	items := make([]viewmodel.EntryView, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, viewmodel.EntryView{
			Label:     "Item",
			Amount:    "+₹1",
			Direction: model.DirectionIncome,
		})
	}
	return items
}

func TestTransactionList_Empty(t *testing.T) {
	m := NewTransactionList(themes.Default)
	assert.Contains(t, tuitest.StripANSI(m.View()), "No transactions yet")
}

func TestTransactionList_RendersInOrder(t *testing.T) {
	m := NewTransactionList(themes.Default)
	m.SetItems([]viewmodel.EntryView{
		{Label: "Coffee", Amount: "-₹50", Direction: model.DirectionExpense},
		{Label: "Salary", Amount: "+₹1000", Direction: model.DirectionIncome},
		{Label: "Voucher", Amount: "₹0", Direction: model.DirectionNeutral},
	})

	out := tuitest.StripANSI(m.View())
	assert.True(t, tuitest.ContainsInOrder(out, "Coffee", "-₹50", "Salary", "+₹1000", "Voucher", "₹0"))
	assert.Contains(t, out, "┃")
}

func TestTransactionList_TruncatesLongLabels(t *testing.T) {
	m := NewTransactionList(themes.Default)
	m.Resize(20, 10)
	m.SetItems([]viewmodel.EntryView{
		{Label: strings.Repeat("x", 50), Amount: "-₹50", Direction: model.DirectionExpense},
	})

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "-₹50")
}

func TestTransactionList_Scroll(t *testing.T) {
	m := NewTransactionList(themes.Default)
	m.Resize(40, 6) // four rows per page
	m.SetItems(rows(10))

	assert.Contains(t, tuitest.StripANSI(m.View()), "1-4 of 10")

	m, _ = m.Update(tuitest.KeyPgDown())
	assert.Equal(t, 4, m.Offset())

	m, _ = m.Update(tuitest.KeyPgDown())
	assert.Equal(t, 6, m.Offset())
	assert.Contains(t, tuitest.StripANSI(m.View()), "7-10 of 10")

	m, _ = m.Update(tuitest.KeyPgDown())
	assert.Equal(t, 6, m.Offset())

	m, _ = m.Update(tuitest.KeyPgUp())
	m, _ = m.Update(tuitest.KeyPgUp())
	assert.Equal(t, 0, m.Offset())

	m.SetItems(rows(2))
	assert.NotContains(t, tuitest.StripANSI(m.View()), "of 2")
	assert.Len(t, m.Items(), 2)
}

func TestTransactionList_CustomKeys(t *testing.T) {
	m := NewTransactionList(themes.Default)
	m.SetKeyMap(ListKeyMap{
		PageUp:   key.NewBinding(key.WithKeys("u")),
		PageDown: key.NewBinding(key.WithKeys("d")),
	})
	m.Resize(40, 6)
	m.SetItems(rows(10))

	m, _ = m.Update(tuitest.KeyPgDown())
	assert.Equal(t, 0, m.Offset())

	m, _ = m.Update(tuitest.KeyPress("d"))
	assert.Equal(t, 4, m.Offset())

	m, _ = m.Update(tuitest.KeyPress("u"))
	assert.Equal(t, 0, m.Offset())
}
