package interfaces

import (
	"context"
	"encoding/json"

	"imobiliaria_xpto/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Used when a buyer pays through an online method: the amount is captured with the
// provider before the payment is recorded on the ledger, and the raw provider
// response is kept for traceability.
type IPaymentGateway interface {
	Charge(ctx context.Context, amount entities.Money, description, externalReference string) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
