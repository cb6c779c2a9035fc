package response

import (
	"time"

	"imobiliaria_xpto/internal/domain/entities"
)

// MoneyResponse renders an amount both in exact minor units and as a decimal
// string for display, alongside its currency.
type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Decimal  string `json:"decimal"`
	Currency string `json:"currency"`
}

func FromMoney(m entities.Money) MoneyResponse {
	return MoneyResponse{
		Amount:   m.Amount,
		Decimal:  m.Decimal().StringFixed(2),
		Currency: string(m.Currency),
	}
}

type PurchaseResponse struct {
	ID                string        `json:"id"`
	PropertyID        string        `json:"property_id"`
	BuyerID           string        `json:"buyer_id"`
	TotalAmount       MoneyResponse `json:"total_amount"`
	RemainingAmount   MoneyResponse `json:"remaining_amount"`
	Status            string        `json:"status"`
	PaymentsApplied   int           `json:"payments_applied"`
	ClosedWithBalance bool          `json:"closed_with_balance"`
	Notes             string        `json:"notes,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
}

func FromPurchase(p entities.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:                p.ID,
		PropertyID:        p.PropertyID,
		BuyerID:           p.BuyerID,
		TotalAmount:       FromMoney(p.TotalAmount),
		RemainingAmount:   FromMoney(p.RemainingAmount),
		Status:            string(p.Status),
		PaymentsApplied:   p.PaymentsApplied,
		ClosedWithBalance: p.ClosedWithBalance,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		CompletedAt:       p.CompletedAt,
	}
}

type PaymentResponse struct {
	PaymentID         string        `json:"payment_id"`
	PurchaseID        string        `json:"purchase_id"`
	Amount            MoneyResponse `json:"amount"`
	Method            string        `json:"method"`
	Status            string        `json:"status"`
	Sequence          int           `json:"sequence"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	Notes             string        `json:"notes,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.ID,
		PurchaseID:        p.PurchaseID,
		Amount:            FromMoney(p.Amount),
		Method:            p.Method,
		Status:            string(p.Status),
		Sequence:          p.Sequence,
		ProviderPaymentID: p.ProviderPaymentID,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
	}
}

// AppliedPaymentResponse is returned by the apply-payment endpoint: the payment
// that was recorded plus the purchase state after the commit.
type AppliedPaymentResponse struct {
	Purchase PurchaseResponse `json:"purchase"`
	Payment  PaymentResponse  `json:"payment"`
}

// LedgerResponse is the read-only ledger view of a purchase, in commit order.
type LedgerResponse struct {
	PurchaseID string            `json:"purchase_id"`
	Payments   []PaymentResponse `json:"payments"`
}

func FromPayments(purchaseID string, payments []entities.Payment) LedgerResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return LedgerResponse{PurchaseID: purchaseID, Payments: out}
}
