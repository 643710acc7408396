// Package model defines the core domain models used throughout the application.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Source identifies where a transaction came from.
type Source string

// Transaction sources.
const (
	SourceManual Source = "manual"
	SourceOFX    Source = "ofx"
)

// Direction is the sign class of a transaction amount.
type Direction string

// Direction constants.
const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
	DirectionNeutral Direction = "neutral"
)

// Transaction is a single labelled, signed monetary entry.
// Positive amounts are income, negative amounts are expenses.
type Transaction struct {
	CreatedAt time.Time
	ID        string
	Label     string
	Source    Source
	Amount    decimal.Decimal
}

// NewTransaction builds a manual transaction created at the given time.
func NewTransaction(label string, amount decimal.Decimal, createdAt time.Time) Transaction {
	return Transaction{
		ID:        NewID(),
		Label:     label,
		Amount:    amount,
		CreatedAt: createdAt,
		Source:    SourceManual,
	}
}

// NewID returns a time-ordered unique identifier (UUIDv7).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Only fails when the random source does.
		return uuid.NewString()
	}
	return id.String()
}

// Direction reports whether the transaction is income, expense or neither.
func (t Transaction) Direction() Direction {
	switch t.Amount.Sign() {
	case 1:
		return DirectionIncome
	case -1:
		return DirectionExpense
	default:
		return DirectionNeutral
	}
}

// IsIncome returns true for strictly positive amounts.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense returns true for strictly negative amounts.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}
