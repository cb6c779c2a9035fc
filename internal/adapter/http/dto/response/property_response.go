package response

import (
	"time"

	"imobiliaria_xpto/internal/domain/entities"
)

type PropertyResponse struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Address       string        `json:"address"`
	AgentID       string        `json:"agent_id"`
	Price         MoneyResponse `json:"price"`
	Marketability string        `json:"marketability"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func FromProperty(p entities.PropertyListing) PropertyResponse {
	return PropertyResponse{
		ID:            p.ID,
		Title:         p.Title,
		Address:       p.Address,
		AgentID:       p.AgentID,
		Price:         FromMoney(p.Price),
		Marketability: string(p.Marketability),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromProperties(listings []entities.PropertyListing) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(listings))
	for _, p := range listings {
		out = append(out, FromProperty(p))
	}
	return out
}
