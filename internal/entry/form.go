// Package entry implements the transaction entry form: its buffer state
// machine and the validation that runs when the form is submitted.
package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Veraticus/finance-tracker/internal/model"
	"github.com/shopspring/decimal"
)

// Limits applied to labels and amounts.
const (
	// MaxLabelLength is the longest label accepted, in characters.
	MaxLabelLength = 200
	// MaxAmountScale is the most digits accepted after the decimal point.
	MaxAmountScale = 8
	// MaxAmountDigits is the most digits accepted before the decimal point.
	MaxAmountDigits = 15
)

// Validation errors returned by Submit.
var (
	ErrEmptyLabel    = errors.New("label is required")
	ErrEmptyAmount   = errors.New("amount is required")
	ErrInvalidAmount = errors.New("amount is not a number")
	ErrLabelTooLong  = fmt.Errorf("label is longer than %d characters", MaxLabelLength)

	// ErrAmountOutOfRange is also an ErrInvalidAmount.
	ErrAmountOutOfRange = fmt.Errorf("%w: too many digits", ErrInvalidAmount)
)

// State is the fill state of the two form buffers.
type State int

// Form states.
const (
	StateEmpty State = iota
	StateLabelOnly
	StateAmountOnly
	StateBothFilled
)

// String returns a string representation of the form state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateLabelOnly:
		return "LabelOnly"
	case StateAmountOnly:
		return "AmountOnly"
	case StateBothFilled:
		return "BothFilled"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Draft holds the raw contents of the label and amount buffers.
type Draft struct {
	Label  string
	Amount string
}

// State derives the form state from the buffer contents. Whitespace-only
// buffers count as empty.
func (d Draft) State() State {
	hasLabel := strings.TrimSpace(d.Label) != ""
	hasAmount := strings.TrimSpace(d.Amount) != ""

	switch {
	case hasLabel && hasAmount:
		return StateBothFilled
	case hasLabel:
		return StateLabelOnly
	case hasAmount:
		return StateAmountOnly
	default:
		return StateEmpty
	}
}

// CanSubmit reports whether both buffers are filled. It does not check that
// the amount parses.
func (d Draft) CanSubmit() bool {
	return d.State() == StateBothFilled
}

// Submit validates the draft and builds the transaction it describes.
// On error no transaction is produced and the caller keeps the draft as is.
func (d Draft) Submit(now time.Time) (model.Transaction, error) {
	label := cleanLabel(d.Label)
	if label == "" {
		return model.Transaction{}, ErrEmptyLabel
	}
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return model.Transaction{}, ErrLabelTooLong
	}

	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.NewTransaction(label, amount, now), nil
}

// ParseAmount converts the amount buffer into an exact signed decimal.
// A leading '-' marks an expense. Anything that is not a finite number,
// including NaN, Inf and trailing garbage, is rejected with ErrInvalidAmount.
// So is any value with more than MaxAmountDigits integer digits or
// MaxAmountScale fractional digits, which keeps exponent notation such as
// 1e99999999 from expanding into a huge coefficient later on.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	exp := int(amount.Exponent())
	if exp < -MaxAmountScale || amount.NumDigits()+exp > MaxAmountDigits {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountOutOfRange, s)
	}
	return amount, nil
}

// Message returns the inline text shown to the user for a validation error.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyLabel):
		return "Enter a label for the transaction"
	case errors.Is(err, ErrEmptyAmount):
		return "Enter an amount (use - for expense)"
	case errors.Is(err, ErrAmountOutOfRange):
		return fmt.Sprintf("Amount must have at most %d digits before and %d after the point", MaxAmountDigits, MaxAmountScale)
	case errors.Is(err, ErrInvalidAmount):
		return "Amount must be a number, e.g. 250 or -49.99"
	case errors.Is(err, ErrLabelTooLong):
		return fmt.Sprintf("Label must be at most %d characters", MaxLabelLength)
	default:
		return err.Error()
	}
}

// cleanLabel trims whitespace and drops control characters.
func cleanLabel(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
