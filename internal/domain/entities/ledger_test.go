package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemainingBalance(t *testing.T) {
	t.Run("no payments", func(t *testing.T) {
		remaining, err := RemainingBalance(brl(500000), nil)
		assert.NoError(t, err)
		assert.Equal(t, brl(500000), remaining)
	})

	t.Run("partial payments", func(t *testing.T) {
		payments := []Payment{
			{ID: "pay-1", Amount: brl(100000), Sequence: 1},
			{ID: "pay-2", Amount: brl(150000), Sequence: 2},
		}
		remaining, err := RemainingBalance(brl(500000), payments)
		assert.NoError(t, err)
		assert.Equal(t, brl(250000), remaining)
	})

	t.Run("fully paid", func(t *testing.T) {
		payments := []Payment{
			{ID: "pay-1", Amount: brl(300000), Sequence: 1},
			{ID: "pay-2", Amount: brl(200000), Sequence: 2},
		}
		remaining, err := RemainingBalance(brl(500000), payments)
		assert.NoError(t, err)
		assert.True(t, remaining.IsZero())
	})

	t.Run("payments exceeding total fail loudly", func(t *testing.T) {
		payments := []Payment{{ID: "pay-1", Amount: brl(600000), Sequence: 1}}
		_, err := RemainingBalance(brl(500000), payments)
		assert.ErrorIs(t, err, ErrLedgerInvariant)
	})

	t.Run("mixed currency payment fails", func(t *testing.T) {
		payments := []Payment{{ID: "pay-1", Amount: Money{Amount: 100, Currency: CurrencyUSD}, Sequence: 1}}
		_, err := RemainingBalance(brl(500000), payments)
		assert.ErrorIs(t, err, ErrCurrencyMismatch)
	})
}

func TestAppendPayment(t *testing.T) {
	original := []Payment{{ID: "pay-1", Amount: brl(100), Sequence: 1}}
	appended := AppendPayment(original, Payment{ID: "pay-2", Amount: brl(200), Sequence: 2})

	assert.Len(t, appended, 2)
	assert.Equal(t, "pay-2", appended[1].ID)
	// the input slice is never mutated
	assert.Len(t, original, 1)
}
