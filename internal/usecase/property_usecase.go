package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"imobiliaria_xpto/internal/domain/entities"
	"imobiliaria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidListing       = errors.New("invalid property listing")
	ErrInvalidMarketability = errors.New("invalid marketability filter")
)

// IPropertyUseCase exposes the marketplace listing operations the purchase
// domain depends on. New listings always start available.

type IPropertyUseCase interface {
	CreateListing(ctx context.Context, title, address, agentID string, price entities.Money) (entities.PropertyListing, error)
	GetByID(ctx context.Context, id string) (entities.PropertyListing, error)
	List(ctx context.Context, marketability string) ([]entities.PropertyListing, error)
}

type PropertyUseCase struct {
	repo interfaces.IPropertyRepository
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(repo interfaces.IPropertyRepository) *PropertyUseCase {
	return &PropertyUseCase{repo: repo}
}

func (u *PropertyUseCase) CreateListing(ctx context.Context, title, address, agentID string, price entities.Money) (entities.PropertyListing, error) {
	title = strings.TrimSpace(title)
	address = strings.TrimSpace(address)
	agentID = strings.TrimSpace(agentID)
	if title == "" || address == "" || agentID == "" {
		return entities.PropertyListing{}, ErrInvalidListing
	}
	if price.Amount <= 0 {
		return entities.PropertyListing{}, entities.ErrInvalidAmount
	}

	now := time.Now().UTC()
	p := entities.PropertyListing{
		ID:            uuid.NewString(),
		Title:         title,
		Address:       address,
		AgentID:       agentID,
		Price:         price,
		Marketability: entities.MarketabilityAvailable,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, p)
}

func (u *PropertyUseCase) GetByID(ctx context.Context, id string) (entities.PropertyListing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PropertyListing{}, ErrInvalidPropertyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PropertyListing{}, err
	}
	if p.ID == "" {
		return entities.PropertyListing{}, ErrPropertyNotFound
	}
	return p, nil
}

// List returns listings, optionally filtered by marketability flag.
func (u *PropertyUseCase) List(ctx context.Context, marketability string) ([]entities.PropertyListing, error) {
	marketability = strings.TrimSpace(marketability)
	var flag entities.Marketability
	switch entities.Marketability(marketability) {
	case "", entities.MarketabilityAvailable, entities.MarketabilityReserved, entities.MarketabilitySold:
		flag = entities.Marketability(marketability)
	default:
		return nil, ErrInvalidMarketability
	}
	return u.repo.List(ctx, flag)
}
