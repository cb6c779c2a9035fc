package interfaces

import (
	"context"
	"errors"
	"time"

	"imobiliaria_xpto/internal/domain/entities"
)

// Storage-level conflict errors surfaced by transactional writes. The use case maps
// them to its caller-facing taxonomy (concurrent update, property not available).
var (
	ErrPurchaseVersionConflict = errors.New("purchase version conflict")
	ErrPropertyStateConflict   = errors.New("property marketability state conflict")
	ErrDuplicateID             = errors.New("duplicate id")
)

// IPurchaseRepository abstracts DynamoDB persistence for Purchase and its Payments.
//
// Write methods are transactional: every item they touch (purchase, payment,
// property marketability flag) commits in one all-or-nothing unit. No partial state
// is ever observable; on conflict the caller retries the whole operation.

type IPurchaseRepository interface {
	// CreatePurchase stores a new purchase, its optional down payment and the
	// property reservation in one transaction. The property item is guarded by a
	// marketability=available condition; a conditional failure there surfaces as
	// ErrPropertyStateConflict.
	CreatePurchase(ctx context.Context, p entities.Purchase, downPayment *entities.Payment, reserve entities.MarketabilityUpdate) (entities.Purchase, error)

	// CommitTransition persists an already-validated purchase transition, the
	// payment that drove it (nil for cancel/override paths) and the marketability
	// update it projects (nil when the flag does not change). The purchase item is
	// guarded by version=expectedVersion; a conditional failure there surfaces as
	// ErrPurchaseVersionConflict.
	CommitTransition(ctx context.Context, p entities.Purchase, expectedVersion int64, payment *entities.Payment, update *entities.MarketabilityUpdate) (entities.Purchase, error)

	GetByID(ctx context.Context, id string) (entities.Purchase, error)
	ListPaymentsByPurchaseID(ctx context.Context, purchaseID string) ([]entities.Payment, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Purchase, error)
}
