package interfaces

// INotificationDispatcher is the fire-and-forget side channel that informs a buyer
// about ledger/status events.
//
// Enqueue happens synchronously as part of a successful operation's outcome, but
// delivery runs outside the transaction boundary and may fail independently without
// rolling back the financial transition. That is why Enqueue returns nothing:
// implementations log failures, they never propagate them.
type INotificationDispatcher interface {
	Enqueue(buyerID string, eventKind string, payload map[string]any)
}
