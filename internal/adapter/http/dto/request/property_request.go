package request

import (
	"strings"

	"imobiliaria_xpto/internal/domain/entities"
)

// PropertyRequest is the payload accepted when an agent creates a listing.
// Price arrives as a decimal string to keep floats out of the money path.
type PropertyRequest struct {
	Title    string `json:"title" binding:"required"`
	Address  string `json:"address" binding:"required"`
	AgentID  string `json:"agent_id" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Currency string `json:"currency"`
}

func (r PropertyRequest) ResolveTitle() string {
	return strings.TrimSpace(r.Title)
}

func (r PropertyRequest) ResolveAddress() string {
	return strings.TrimSpace(r.Address)
}

func (r PropertyRequest) ResolveAgentID() string {
	return strings.TrimSpace(r.AgentID)
}

func (r PropertyRequest) ResolvePrice() (entities.Money, error) {
	return parseMoney(r.Price, r.Currency)
}
