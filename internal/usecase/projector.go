package usecase

import "imobiliaria_xpto/internal/domain/entities"

// IMarketabilityProjector decides, from a purchase event, what marketability flag
// the referenced property must now hold. It is the single place in the codebase
// that owns this derivation; callers persist the update, the projector never does.

type IMarketabilityProjector interface {
	OnPurchaseTransition(ev entities.PurchaseEvent) (entities.MarketabilityUpdate, bool)
}

type MarketabilityProjector struct{}

var _ IMarketabilityProjector = (*MarketabilityProjector)(nil)

func NewMarketabilityProjector() *MarketabilityProjector {
	return &MarketabilityProjector{}
}

// OnPurchaseTransition returns the required flag change and whether one is needed.
// Recording a payment that does not complete the purchase changes nothing.
func (MarketabilityProjector) OnPurchaseTransition(ev entities.PurchaseEvent) (entities.MarketabilityUpdate, bool) {
	switch ev.Kind {
	case entities.EventPurchaseCreated:
		return entities.MarketabilityUpdate{PropertyID: ev.PropertyID, Marketability: entities.MarketabilityReserved}, true
	case entities.EventPurchaseCompleted:
		return entities.MarketabilityUpdate{PropertyID: ev.PropertyID, Marketability: entities.MarketabilitySold}, true
	case entities.EventPurchaseCancelled:
		return entities.MarketabilityUpdate{PropertyID: ev.PropertyID, Marketability: entities.MarketabilityAvailable}, true
	default:
		return entities.MarketabilityUpdate{}, false
	}
}
