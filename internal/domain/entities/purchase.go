package entities

import (
	"errors"
	"fmt"
	"time"
)

// PurchaseStatus represents the lifecycle of a property purchase.
//
// Domain notes:
//   - pending is the initial state; completed and cancelled are terminal.
//   - A purchase is a financial record and is never deleted.

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

var (
	ErrPurchaseClosed       = errors.New("purchase is closed")
	ErrAmountExceedsBalance = errors.New("amount exceeds remaining balance")
	ErrInvalidAmount        = errors.New("invalid amount")
)

// Purchase is a buyer's commitment to acquire one property, tracked until fully
// paid or cancelled.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - RemainingAmount == TotalAmount - sum(payments applied), never negative.
//   - RemainingAmount zero implies Status completed and CompletedAt set.
//   - Version guards concurrent transitions (single-writer-per-purchase).

type Purchase struct {
	ID              string         `json:"id"`
	PropertyID      string         `json:"property_id"`
	BuyerID         string         `json:"buyer_id"`
	TotalAmount     Money          `json:"total_amount"`
	RemainingAmount Money          `json:"remaining_amount"`
	Status          PurchaseStatus `json:"status"`
	PaymentsApplied int            `json:"payments_applied"`

	// ClosedWithBalance marks a purchase force-completed by an administrator while
	// RemainingAmount was still nonzero. An accepted business exception, kept
	// explicitly representable so reports can surface it.
	ClosedWithBalance bool `json:"closed_with_balance"`

	Notes       string     `json:"notes,omitempty"`
	Version     int64      `json:"version"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// PaymentStatus is always completed in this domain: partial/pending payment states
// are not modeled, a recorded payment is a settled fact on the ledger.

type PaymentStatus string

const PaymentStatusCompleted PaymentStatus = "completed"

// Payment is one monetary contribution applied toward a Purchase.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (purchase_id-index): purchase_id
//
// Payments are immutable once created. Corrections are new payments or an
// administrative purchase edit, never a mutation of a historical amount.
// Sequence is the commit order of the payment's atomic unit, which is what keeps
// the remaining-balance invariant auditable regardless of wall-clock ties.

type Payment struct {
	ID                string        `json:"id"`
	PurchaseID        string        `json:"purchase_id"`
	Amount            Money         `json:"amount"`
	Method            string        `json:"method"`
	Status            PaymentStatus `json:"status"`
	Sequence          int           `json:"sequence"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

// NewPurchase builds a pending purchase with the full total still owed.
// Down payments are applied as a regular ledger transition by the caller.
func NewPurchase(id, propertyID, buyerID string, total Money, notes string, now time.Time) Purchase {
	return Purchase{
		ID:              id,
		PropertyID:      propertyID,
		BuyerID:         buyerID,
		TotalAmount:     total,
		RemainingAmount: total,
		Status:          PurchaseStatusPending,
		Notes:           notes,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ApplyPayment returns the purchase after applying amount to the ledger.
// The receiver is never mutated; transitions produce a new value so a failed
// precondition leaves the original state untouched.
func (p Purchase) ApplyPayment(amount Money, now time.Time) (Purchase, error) {
	if p.Status != PurchaseStatusPending {
		return Purchase{}, ErrPurchaseClosed
	}
	if amount.Amount <= 0 {
		return Purchase{}, ErrInvalidAmount
	}
	cmp, err := amount.Compare(p.RemainingAmount)
	if err != nil {
		return Purchase{}, err
	}
	if cmp > 0 {
		return Purchase{}, ErrAmountExceedsBalance
	}

	remaining, err := p.RemainingAmount.Subtract(amount)
	if err != nil {
		return Purchase{}, err
	}

	p.RemainingAmount = remaining
	p.PaymentsApplied++
	p.Version++
	p.UpdatedAt = now
	if remaining.IsZero() {
		p.Status = PurchaseStatusCompleted
		completedAt := now
		p.CompletedAt = &completedAt
	}
	return p, nil
}

// Cancel closes a pending purchase. Remaining balance is left as-is: cancellation
// is a commercial decision, not a refund record.
func (p Purchase) Cancel(now time.Time, notes string) (Purchase, error) {
	if p.Status != PurchaseStatusPending {
		return Purchase{}, ErrPurchaseClosed
	}
	p.Status = PurchaseStatusCancelled
	p.Version++
	p.UpdatedAt = now
	p.Notes = appendNote(p.Notes, notes)
	return p, nil
}

// ForceComplete is the administrative escape hatch: it completes the purchase
// regardless of remaining balance, for reconciliation that happened out-of-band.
// A nonzero remainder is flagged and written into the audit notes.
func (p Purchase) ForceComplete(now time.Time, notes string) (Purchase, error) {
	if p.Status != PurchaseStatusPending {
		return Purchase{}, ErrPurchaseClosed
	}
	if !p.RemainingAmount.IsZero() {
		p.ClosedWithBalance = true
		notes = appendNote(notes, fmt.Sprintf("completed by admin override with remaining balance %d %s", p.RemainingAmount.Amount, p.RemainingAmount.Currency))
	}
	p.Status = PurchaseStatusCompleted
	completedAt := now
	p.CompletedAt = &completedAt
	p.Version++
	p.UpdatedAt = now
	p.Notes = appendNote(p.Notes, notes)
	return p, nil
}

func appendNote(existing, extra string) string {
	if extra == "" {
		return existing
	}
	if existing == "" {
		return extra
	}
	return existing + "; " + extra
}
