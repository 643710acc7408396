package entry

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/finance-tracker/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_State(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  State
	}{
		{name: "empty", draft: Draft{}, want: StateEmpty},
		{name: "whitespace only", draft: Draft{Label: "  ", Amount: "\t"}, want: StateEmpty},
		{name: "label only", draft: Draft{Label: "Rent"}, want: StateLabelOnly},
		{name: "amount only", draft: Draft{Amount: "-50"}, want: StateAmountOnly},
		{name: "both filled", draft: Draft{Label: "Rent", Amount: "-50"}, want: StateBothFilled},
		{name: "both filled with garbage amount", draft: Draft{Label: "Rent", Amount: "abc"}, want: StateBothFilled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.draft.State())
			assert.Equal(t, tt.want == StateBothFilled, tt.draft.CanSubmit())
		})
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Empty", StateEmpty.String())
	assert.Equal(t, "BothFilled", StateBothFilled.String())
	assert.Equal(t, "Unknown(9)", State(9).String())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "1000", want: "1000"},
		{in: "-50", want: "-50"},
		{in: " 12.34 ", want: "12.34"},
		{in: "+7", want: "7"},
		{in: ".5", want: "0.5"},
		{in: "0", want: "0"},
		{in: "1e3", want: "1000"},
		{in: "0.1", want: "0.1"},
		{in: "999999999999999.99999999", want: "999999999999999.99999999"},
		{in: "1e14", want: "100000000000000"},
		{in: "-0.00000001", want: "-0.00000001"},
		{in: "", wantErr: ErrEmptyAmount},
		{in: "   ", wantErr: ErrEmptyAmount},
		{in: "abc", wantErr: ErrInvalidAmount},
		{in: "12abc", wantErr: ErrInvalidAmount},
		{in: "NaN", wantErr: ErrInvalidAmount},
		{in: "Inf", wantErr: ErrInvalidAmount},
		{in: "-", wantErr: ErrInvalidAmount},
		{in: "1.2.3", wantErr: ErrInvalidAmount},
		{in: "1,000", wantErr: ErrInvalidAmount},
		{in: "1e99999999", wantErr: ErrAmountOutOfRange},
		{in: "1e-99999999", wantErr: ErrAmountOutOfRange},
		{in: "-1e99999999", wantErr: ErrAmountOutOfRange},
		{in: "1e15", wantErr: ErrAmountOutOfRange},
		{in: "1000000000000000", wantErr: ErrAmountOutOfRange},
		{in: "0.000000001", wantErr: ErrAmountOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestDraft_Submit(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("valid income", func(t *testing.T) {
		txn, err := Draft{Label: "  Salary ", Amount: "1000"}.Submit(now)
		require.NoError(t, err)
		assert.Equal(t, "Salary", txn.Label)
		assert.True(t, txn.Amount.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, now, txn.CreatedAt)
		assert.Equal(t, model.SourceManual, txn.Source)
		assert.NotEmpty(t, txn.ID)
	})

	t.Run("control characters are stripped", func(t *testing.T) {
		txn, err := Draft{Label: "Cof\x00fee\x1b", Amount: "-3.5"}.Submit(now)
		require.NoError(t, err)
		assert.Equal(t, "Coffee", txn.Label)
	})

	errorCases := []struct {
		name    string
		draft   Draft
		wantErr error
	}{
		{name: "empty label", draft: Draft{Amount: "10"}, wantErr: ErrEmptyLabel},
		{name: "blank label", draft: Draft{Label: "   ", Amount: "10"}, wantErr: ErrEmptyLabel},
		{name: "empty amount", draft: Draft{Label: "Coffee"}, wantErr: ErrEmptyAmount},
		{name: "non-numeric amount", draft: Draft{Label: "Coffee", Amount: "lots"}, wantErr: ErrInvalidAmount},
		{name: "huge exponent", draft: Draft{Label: "Coffee", Amount: "1e99999999"}, wantErr: ErrAmountOutOfRange},
		{name: "label too long", draft: Draft{Label: strings.Repeat("x", MaxLabelLength+1), Amount: "1"}, wantErr: ErrLabelTooLong},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := tt.draft.Submit(now)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, txn.ID)
		})
	}
}

func TestMessage(t *testing.T) {
	_, err := ParseAmount("x")
	assert.Contains(t, Message(err), "must be a number")
	assert.Contains(t, Message(ErrEmptyLabel), "label")
	assert.Contains(t, Message(ErrEmptyAmount), "amount")
	assert.Contains(t, Message(ErrLabelTooLong), "200")
	assert.Empty(t, Message(nil))

	_, err = ParseAmount("1e99999999")
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Contains(t, Message(err), "at most 15 digits")
}

func TestParseAmount_BoundedValuesSummarize(t *testing.T) {
	for _, in := range []string{"999999999999999.99999999", "-999999999999999.99999999", "0.00000001"} {
		amount, err := ParseAmount(in)
		require.NoError(t, err)

		sum := amount.Add(amount).Add(decimal.NewFromInt(1))
		assert.LessOrEqual(t, sum.NumDigits(), 25, in)
	}
}
