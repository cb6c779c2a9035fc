package entities

import "errors"

var ErrLedgerInvariant = errors.New("ledger invariant violated: payments exceed total")

// RemainingBalance computes total minus the sum of all payment amounts.
//
// The ledger is a dumb, auditable structure: business rules (overpayment rejection,
// closed-purchase checks) live in the purchase state machine. A negative result here
// means a caller skipped its pre-validation, so it fails loudly instead of clamping.
func RemainingBalance(total Money, payments []Payment) (Money, error) {
	paid := Money{Amount: 0, Currency: total.Currency}
	for _, p := range payments {
		sum, err := paid.Add(p.Amount)
		if err != nil {
			return Money{}, err
		}
		paid = sum
	}
	remaining, err := total.Subtract(paid)
	if err != nil {
		if errors.Is(err, ErrNegativeResult) {
			return Money{}, ErrLedgerInvariant
		}
		return Money{}, err
	}
	return remaining, nil
}

// AppendPayment returns a new sequence with p appended. The ledger is append-only
// and ordered by commit order (Payment.Sequence), never mutated in place.
func AppendPayment(payments []Payment, p Payment) []Payment {
	out := make([]Payment, 0, len(payments)+1)
	out = append(out, payments...)
	return append(out, p)
}
