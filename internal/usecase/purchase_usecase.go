package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"imobiliaria_xpto/internal/domain/entities"
	"imobiliaria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPurchaseNotFound     = errors.New("purchase not found")
	ErrPropertyNotFound     = errors.New("property not found")
	ErrPropertyNotAvailable = errors.New("property not available")
	ErrInvalidPurchaseID    = errors.New("invalid purchase id")
	ErrInvalidPropertyID    = errors.New("invalid property id")
	ErrInvalidBuyerID       = errors.New("invalid buyer id")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrConcurrentUpdate     = errors.New("concurrent purchase update")
	ErrPaymentDeclined      = errors.New("payment declined by provider")
)

// PaymentMethodOnline routes the payment through the external gateway before it
// is recorded on the ledger. Every other method tag is recorded as-is (cash,
// transfer, financing, ...), since capture happened out-of-band.
const PaymentMethodOnline = "mercadopago"

// paymentMethodDown tags the ledger entry created together with the purchase.
const paymentMethodDown = "down_payment"

// IPurchaseUseCase exposes the purchase ledger operations.
//
// Every write is one atomic unit against the store: payment record, balance
// recomputation, status transition and property marketability update commit
// together or not at all. ErrConcurrentUpdate is the only transient failure;
// callers may retry the whole operation with the same arguments.

type IPurchaseUseCase interface {
	CreatePurchase(ctx context.Context, propertyID, buyerID string, total, downPayment entities.Money, notes string) (entities.Purchase, error)
	ApplyPayment(ctx context.Context, purchaseID string, amount entities.Money, method, notes string) (entities.Purchase, entities.Payment, error)
	CancelPurchase(ctx context.Context, purchaseID, notes string) (entities.Purchase, error)
	SetPurchaseStatus(ctx context.Context, purchaseID string, status entities.PurchaseStatus, notes string) (entities.Purchase, error)
	GetByID(ctx context.Context, id string) (entities.Purchase, error)
	ListPayments(ctx context.Context, purchaseID string) ([]entities.Payment, error)
}

type PurchaseUseCase struct {
	repo         interfaces.IPurchaseRepository
	propertyRepo interfaces.IPropertyRepository
	gateway      interfaces.IPaymentGateway
	notifier     interfaces.INotificationDispatcher
	projector    IMarketabilityProjector
}

var _ IPurchaseUseCase = (*PurchaseUseCase)(nil)

func NewPurchaseUseCase(
	repo interfaces.IPurchaseRepository,
	propertyRepo interfaces.IPropertyRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.INotificationDispatcher,
	projector IMarketabilityProjector,
) *PurchaseUseCase {
	if projector == nil {
		projector = NewMarketabilityProjector()
	}
	return &PurchaseUseCase{
		repo:         repo,
		propertyRepo: propertyRepo,
		gateway:      gateway,
		notifier:     notifier,
		projector:    projector,
	}
}

// CreatePurchase commits a buyer to a property that is currently available.
// The purchase, its optional down payment and the property reservation are
// persisted as one transaction; the property condition is re-checked inside it,
// so a racing purchase on the same property loses cleanly.
func (u *PurchaseUseCase) CreatePurchase(ctx context.Context, propertyID, buyerID string, total, downPayment entities.Money, notes string) (entities.Purchase, error) {
	propertyID = strings.TrimSpace(propertyID)
	buyerID = strings.TrimSpace(buyerID)
	if propertyID == "" {
		return entities.Purchase{}, ErrInvalidPropertyID
	}
	if buyerID == "" {
		return entities.Purchase{}, ErrInvalidBuyerID
	}
	if total.Amount <= 0 {
		return entities.Purchase{}, entities.ErrInvalidAmount
	}
	log.Printf("[purchase][usecase] create start property_id=%s buyer_id=%s total=%d %s down=%d", propertyID, buyerID, total.Amount, total.Currency, downPayment.Amount)

	prop, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		log.Printf("[purchase][usecase] failed loading property property_id=%s err=%v", propertyID, err)
		return entities.Purchase{}, err
	}
	if prop.ID == "" {
		return entities.Purchase{}, ErrPropertyNotFound
	}
	if prop.Marketability != entities.MarketabilityAvailable {
		log.Printf("[purchase][usecase] property not available property_id=%s marketability=%s", propertyID, prop.Marketability)
		return entities.Purchase{}, ErrPropertyNotAvailable
	}

	now := time.Now().UTC()
	p := entities.NewPurchase(uuid.NewString(), propertyID, buyerID, total, notes, now)

	var firstPayment *entities.Payment
	if downPayment.Amount > 0 {
		p, err = p.ApplyPayment(downPayment, now)
		if err != nil {
			return entities.Purchase{}, err
		}
		firstPayment = &entities.Payment{
			ID:         uuid.NewString(),
			PurchaseID: p.ID,
			Amount:     downPayment,
			Method:     paymentMethodDown,
			Status:     entities.PaymentStatusCompleted,
			Sequence:   p.PaymentsApplied,
			CreatedAt:  now,
		}
	}

	ev := entities.PurchaseEvent{Kind: entities.EventPurchaseCreated, PurchaseID: p.ID, PropertyID: propertyID, BuyerID: buyerID}
	if p.Status == entities.PurchaseStatusCompleted {
		// A down payment covering the full total closes the purchase at creation.
		ev.Kind = entities.EventPurchaseCompleted
	}
	reserve, _ := u.projector.OnPurchaseTransition(ev)

	created, err := u.repo.CreatePurchase(ctx, p, firstPayment, reserve)
	if err != nil {
		if errors.Is(err, interfaces.ErrPropertyStateConflict) {
			log.Printf("[purchase][usecase] reservation lost to concurrent purchase property_id=%s", propertyID)
			return entities.Purchase{}, ErrPropertyNotAvailable
		}
		log.Printf("[purchase][usecase] create failed property_id=%s err=%v", propertyID, err)
		return entities.Purchase{}, err
	}
	log.Printf("[purchase][usecase] create success purchase_id=%s status=%s remaining=%d", created.ID, created.Status, created.RemainingAmount.Amount)

	u.enqueue(created, ev.Kind, map[string]any{
		"total_amount":     created.TotalAmount.Amount,
		"remaining_amount": created.RemainingAmount.Amount,
		"currency":         string(created.TotalAmount.Currency),
	})
	return created, nil
}

// ApplyPayment records one payment against a pending purchase.
//
// The balance check is evaluated against the version the purchase was loaded at;
// the store rejects the commit if another writer got in between, and the whole
// operation surfaces as ErrConcurrentUpdate for the caller to retry.
func (u *PurchaseUseCase) ApplyPayment(ctx context.Context, purchaseID string, amount entities.Money, method, notes string) (entities.Purchase, entities.Payment, error) {
	purchaseID = strings.TrimSpace(purchaseID)
	if purchaseID == "" {
		return entities.Purchase{}, entities.Payment{}, ErrInvalidPurchaseID
	}
	if amount.Amount <= 0 {
		return entities.Purchase{}, entities.Payment{}, entities.ErrInvalidAmount
	}
	method = strings.TrimSpace(method)
	if method == "" {
		method = "manual"
	}
	log.Printf("[payment][usecase] apply start purchase_id=%s amount=%d %s method=%s", purchaseID, amount.Amount, amount.Currency, method)

	cur, err := u.repo.GetByID(ctx, purchaseID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading purchase purchase_id=%s err=%v", purchaseID, err)
		return entities.Purchase{}, entities.Payment{}, err
	}
	if cur.ID == "" {
		return entities.Purchase{}, entities.Payment{}, ErrPurchaseNotFound
	}

	expectedVersion := cur.Version
	now := time.Now().UTC()
	updated, err := cur.ApplyPayment(amount, now)
	if err != nil {
		log.Printf("[payment][usecase] transition rejected purchase_id=%s err=%v", purchaseID, err)
		return entities.Purchase{}, entities.Payment{}, err
	}

	payment := entities.Payment{
		ID:         uuid.NewString(),
		PurchaseID: purchaseID,
		Amount:     amount,
		Method:     method,
		Status:     entities.PaymentStatusCompleted,
		Sequence:   updated.PaymentsApplied,
		Notes:      notes,
		CreatedAt:  now,
	}

	if method == PaymentMethodOnline {
		if u.gateway == nil {
			return entities.Purchase{}, entities.Payment{}, errors.New("payment gateway not configured")
		}
		desc := fmt.Sprintf("Purchase %s installment %d", purchaseID, payment.Sequence)
		providerID, providerStatus, _, err := u.gateway.Charge(ctx, amount, desc, purchaseID)
		if err != nil {
			log.Printf("[payment][usecase] gateway charge failed purchase_id=%s err=%v", purchaseID, err)
			return entities.Purchase{}, entities.Payment{}, err
		}
		if providerStatus != "approved" {
			log.Printf("[payment][usecase] gateway declined purchase_id=%s provider_status=%s", purchaseID, providerStatus)
			return entities.Purchase{}, entities.Payment{}, ErrPaymentDeclined
		}
		payment.ProviderPaymentID = providerID
	}

	var update *entities.MarketabilityUpdate
	evKind := entities.EventPaymentRecorded
	if updated.Status == entities.PurchaseStatusCompleted {
		evKind = entities.EventPurchaseCompleted
		if up, ok := u.projector.OnPurchaseTransition(entities.PurchaseEvent{
			Kind: evKind, PurchaseID: updated.ID, PropertyID: updated.PropertyID, BuyerID: updated.BuyerID,
		}); ok {
			update = &up
		}
	}

	committed, err := u.repo.CommitTransition(ctx, updated, expectedVersion, &payment, update)
	if err != nil {
		if errors.Is(err, interfaces.ErrPurchaseVersionConflict) {
			log.Printf("[payment][usecase] version conflict purchase_id=%s expected_version=%d", purchaseID, expectedVersion)
			if payment.ProviderPaymentID != "" {
				// The provider already captured the funds but no ledger record
				// exists. Reconciliation needs this id to refund or re-apply.
				log.Printf("[payment][usecase] orphaned gateway charge purchase_id=%s provider_payment_id=%s amount=%d %s", purchaseID, payment.ProviderPaymentID, amount.Amount, amount.Currency)
			}
			return entities.Purchase{}, entities.Payment{}, ErrConcurrentUpdate
		}
		log.Printf("[payment][usecase] commit failed purchase_id=%s err=%v", purchaseID, err)
		return entities.Purchase{}, entities.Payment{}, err
	}
	log.Printf("[payment][usecase] apply success purchase_id=%s payment_id=%s remaining=%d status=%s", purchaseID, payment.ID, committed.RemainingAmount.Amount, committed.Status)

	u.enqueue(committed, evKind, map[string]any{
		"payment_id":       payment.ID,
		"amount":           payment.Amount.Amount,
		"currency":         string(payment.Amount.Currency),
		"method":           payment.Method,
		"remaining_amount": committed.RemainingAmount.Amount,
	})
	return committed, payment, nil
}

// CancelPurchase closes a pending purchase and releases the property back to the
// market. Cancelling a completed or already-cancelled purchase fails.
func (u *PurchaseUseCase) CancelPurchase(ctx context.Context, purchaseID, notes string) (entities.Purchase, error) {
	purchaseID = strings.TrimSpace(purchaseID)
	if purchaseID == "" {
		return entities.Purchase{}, ErrInvalidPurchaseID
	}
	log.Printf("[purchase][usecase] cancel start purchase_id=%s", purchaseID)

	cur, err := u.repo.GetByID(ctx, purchaseID)
	if err != nil {
		return entities.Purchase{}, err
	}
	if cur.ID == "" {
		return entities.Purchase{}, ErrPurchaseNotFound
	}

	expectedVersion := cur.Version
	updated, err := cur.Cancel(time.Now().UTC(), notes)
	if err != nil {
		log.Printf("[purchase][usecase] cancel rejected purchase_id=%s status=%s", purchaseID, cur.Status)
		return entities.Purchase{}, err
	}

	var update *entities.MarketabilityUpdate
	if up, ok := u.projector.OnPurchaseTransition(entities.PurchaseEvent{
		Kind: entities.EventPurchaseCancelled, PurchaseID: updated.ID, PropertyID: updated.PropertyID, BuyerID: updated.BuyerID,
	}); ok {
		update = &up
	}

	committed, err := u.repo.CommitTransition(ctx, updated, expectedVersion, nil, update)
	if err != nil {
		if errors.Is(err, interfaces.ErrPurchaseVersionConflict) {
			return entities.Purchase{}, ErrConcurrentUpdate
		}
		return entities.Purchase{}, err
	}
	log.Printf("[purchase][usecase] cancel success purchase_id=%s", purchaseID)

	u.enqueue(committed, entities.EventPurchaseCancelled, map[string]any{
		"remaining_amount": committed.RemainingAmount.Amount,
		"currency":         string(committed.RemainingAmount.Currency),
	})
	return committed, nil
}

// SetPurchaseStatus is the administrative path. Forcing completed bypasses the
// balance check for reconciliation that happened out-of-band; the resulting
// closed-with-balance state is flagged on the purchase and in its audit notes.
func (u *PurchaseUseCase) SetPurchaseStatus(ctx context.Context, purchaseID string, status entities.PurchaseStatus, notes string) (entities.Purchase, error) {
	purchaseID = strings.TrimSpace(purchaseID)
	if purchaseID == "" {
		return entities.Purchase{}, ErrInvalidPurchaseID
	}

	switch status {
	case entities.PurchaseStatusCancelled:
		return u.CancelPurchase(ctx, purchaseID, notes)
	case entities.PurchaseStatusCompleted:
		// handled below
	default:
		return entities.Purchase{}, ErrInvalidTransition
	}
	log.Printf("[purchase][usecase] admin set-status start purchase_id=%s status=%s", purchaseID, status)

	cur, err := u.repo.GetByID(ctx, purchaseID)
	if err != nil {
		return entities.Purchase{}, err
	}
	if cur.ID == "" {
		return entities.Purchase{}, ErrPurchaseNotFound
	}

	expectedVersion := cur.Version
	updated, err := cur.ForceComplete(time.Now().UTC(), notes)
	if err != nil {
		return entities.Purchase{}, err
	}
	if updated.ClosedWithBalance {
		log.Printf("[purchase][usecase] admin override closing with balance purchase_id=%s remaining=%d", purchaseID, updated.RemainingAmount.Amount)
	}

	var update *entities.MarketabilityUpdate
	if up, ok := u.projector.OnPurchaseTransition(entities.PurchaseEvent{
		Kind: entities.EventPurchaseCompleted, PurchaseID: updated.ID, PropertyID: updated.PropertyID, BuyerID: updated.BuyerID,
	}); ok {
		update = &up
	}

	committed, err := u.repo.CommitTransition(ctx, updated, expectedVersion, nil, update)
	if err != nil {
		if errors.Is(err, interfaces.ErrPurchaseVersionConflict) {
			return entities.Purchase{}, ErrConcurrentUpdate
		}
		return entities.Purchase{}, err
	}
	log.Printf("[purchase][usecase] admin set-status success purchase_id=%s closed_with_balance=%t", purchaseID, committed.ClosedWithBalance)

	u.enqueue(committed, entities.EventPurchaseCompleted, map[string]any{
		"remaining_amount":    committed.RemainingAmount.Amount,
		"currency":            string(committed.RemainingAmount.Currency),
		"closed_with_balance": committed.ClosedWithBalance,
	})
	return committed, nil
}

func (u *PurchaseUseCase) GetByID(ctx context.Context, id string) (entities.Purchase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Purchase{}, ErrInvalidPurchaseID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Purchase{}, err
	}
	if p.ID == "" {
		return entities.Purchase{}, ErrPurchaseNotFound
	}
	return p, nil
}

// ListPayments returns the purchase's ledger in commit order, audited against
// the purchase row: the stored remaining balance must equal the total minus
// every recorded payment. The transaction layer should make a divergence
// impossible, so when one shows up the read fails loudly instead of serving
// numbers that do not add up.
func (u *PurchaseUseCase) ListPayments(ctx context.Context, purchaseID string) ([]entities.Payment, error) {
	purchaseID = strings.TrimSpace(purchaseID)
	if purchaseID == "" {
		return nil, ErrInvalidPurchaseID
	}

	p, err := u.repo.GetByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, ErrPurchaseNotFound
	}

	rows, err := u.repo.ListPaymentsByPurchaseID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	ledger := make([]entities.Payment, 0, len(rows))
	for _, payment := range rows {
		ledger = entities.AppendPayment(ledger, payment)
	}
	remaining, err := entities.RemainingBalance(p.TotalAmount, ledger)
	if err != nil {
		log.Printf("[payment][usecase] ledger audit failed purchase_id=%s err=%v", purchaseID, err)
		return nil, err
	}
	if cmp, err := remaining.Compare(p.RemainingAmount); err != nil || cmp != 0 {
		log.Printf("[payment][usecase] ledger diverges from purchase row purchase_id=%s computed=%d stored=%d", purchaseID, remaining.Amount, p.RemainingAmount.Amount)
		return nil, entities.ErrLedgerInvariant
	}
	return ledger, nil
}

func (u *PurchaseUseCase) enqueue(p entities.Purchase, kind entities.PurchaseEventKind, payload map[string]any) {
	if u.notifier == nil {
		return
	}
	payload["purchase_id"] = p.ID
	payload["property_id"] = p.PropertyID
	u.notifier.Enqueue(p.BuyerID, string(kind), payload)
}
