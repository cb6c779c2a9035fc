package request

import (
	"strings"

	"imobiliaria_xpto/internal/domain/entities"
)

// PurchaseRequest is the payload for a buyer committing to a property.
// DownPayment is optional; when present it is applied to the ledger inside the
// same atomic unit that creates the purchase and reserves the property.
type PurchaseRequest struct {
	PropertyID  string `json:"property_id" binding:"required"`
	BuyerID     string `json:"buyer_id" binding:"required"`
	TotalAmount string `json:"total_amount" binding:"required"`
	DownPayment string `json:"down_payment"`
	Currency    string `json:"currency"`
	Notes       string `json:"notes"`
}

func (r PurchaseRequest) ResolvePropertyID() string {
	return strings.TrimSpace(r.PropertyID)
}

func (r PurchaseRequest) ResolveBuyerID() string {
	return strings.TrimSpace(r.BuyerID)
}

func (r PurchaseRequest) ResolveTotalAmount() (entities.Money, error) {
	return parseMoney(r.TotalAmount, r.Currency)
}

// ResolveDownPayment returns a zero amount in the purchase currency when the
// field is absent, so the use case sees "no down payment" without a nil case.
func (r PurchaseRequest) ResolveDownPayment() (entities.Money, error) {
	if strings.TrimSpace(r.DownPayment) == "" {
		return entities.Money{Amount: 0, Currency: resolveCurrency(r.Currency)}, nil
	}
	return parseMoney(r.DownPayment, r.Currency)
}

// PaymentRequest records one payment against a purchase's remaining balance.
type PaymentRequest struct {
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency"`
	Method   string `json:"method"`
	Notes    string `json:"notes"`
}

func (r PaymentRequest) ResolveAmount() (entities.Money, error) {
	return parseMoney(r.Amount, r.Currency)
}

func (r PaymentRequest) ResolveMethod() string {
	return strings.TrimSpace(r.Method)
}

// StatusRequest is the administrative status override payload.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (r StatusRequest) ResolveStatus() entities.PurchaseStatus {
	return entities.PurchaseStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
