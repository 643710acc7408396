// Package ledger holds the in-memory transaction store for a session.
package ledger

import (
	"log/slog"

	"github.com/Veraticus/finance-tracker/internal/model"
	"github.com/Veraticus/finance-tracker/internal/summary"
)

// Store is the owned, mutable holder of the session's transactions.
// It is driven from a single goroutine (the UI event loop) and is not
// safe for concurrent use.
type Store struct {
	current Snapshot
}

// Snapshot is an immutable view of the store, newest transaction first.
type Snapshot struct {
	items []model.Transaction
}

// NewStore creates a store seeded with the given transactions, which are
// appended in order so the last one ends up first.
func NewStore(seed ...model.Transaction) *Store {
	s := &Store{}
	for _, txn := range seed {
		s.Append(txn)
	}
	return s
}

// Append inserts txn at the front and returns the resulting snapshot.
// Snapshots handed out earlier are not affected.
func (s *Store) Append(txn model.Transaction) Snapshot {
	items := make([]model.Transaction, 0, len(s.current.items)+1)
	items = append(items, txn)
	items = append(items, s.current.items...)
	s.current = Snapshot{items: items}

	slog.Debug("Transaction appended",
		"id", txn.ID,
		"label", txn.Label,
		"amount", txn.Amount.String(),
		"source", txn.Source,
		"count", len(items))

	return s.current
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	return s.current
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	return s.current.Len()
}

// All returns a copy of the transactions, most recent first.
func (sn Snapshot) All() []model.Transaction {
	out := make([]model.Transaction, len(sn.items))
	copy(out, sn.items)
	return out
}

// Len returns the number of transactions in the snapshot.
func (sn Snapshot) Len() int {
	return len(sn.items)
}

// At returns the i-th most recent transaction.
func (sn Snapshot) At(i int) (model.Transaction, bool) {
	if i < 0 || i >= len(sn.items) {
		return model.Transaction{}, false
	}
	return sn.items[i], true
}

// Summary recomputes the totals for the snapshot.
func (sn Snapshot) Summary() summary.Summary {
	return summary.Compute(sn.items)
}
