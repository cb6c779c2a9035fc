package entities

import "time"

// Marketability is the derived property state that says whether a property can
// currently be purchased. At most one non-cancelled purchase may hold a property
// in reserved/sold at a time; the purchase transaction enforces that.

type Marketability string

const (
	MarketabilityAvailable Marketability = "available"
	MarketabilityReserved  Marketability = "reserved"
	MarketabilitySold      Marketability = "sold"
)

// PropertyListing is the marketplace listing referenced by purchases.
//
// Storage model (DynamoDB):
//   - PK: id
//
// From the purchase domain's perspective properties are read-mostly: the only
// write path is the marketability flag, updated inside the purchase transaction.

type PropertyListing struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Address       string        `json:"address"`
	AgentID       string        `json:"agent_id"`
	Price         Money         `json:"price"`
	Marketability Marketability `json:"marketability"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PurchaseEventKind identifies a purchase transition for projection and
// buyer notification purposes.

type PurchaseEventKind string

const (
	EventPurchaseCreated   PurchaseEventKind = "purchase_created"
	EventPaymentRecorded   PurchaseEventKind = "payment_recorded"
	EventPurchaseCompleted PurchaseEventKind = "purchase_completed"
	EventPurchaseCancelled PurchaseEventKind = "purchase_cancelled"
)

type PurchaseEvent struct {
	Kind       PurchaseEventKind
	PurchaseID string
	PropertyID string
	BuyerID    string
}

// MarketabilityUpdate is the flag change a purchase event demands on the
// referenced property. Produced by the projector, persisted by the repository
// inside the same atomic unit as the purchase transition.
type MarketabilityUpdate struct {
	PropertyID    string
	Marketability Marketability
}
