package interfaces

import (
	"context"

	"imobiliaria_xpto/internal/domain/entities"
)

// IPropertyRepository abstracts DynamoDB persistence for PropertyListing.
//
// Marketability is only ever written by the purchase transaction, so this
// interface stays read-mostly: create/get/list for the marketplace surface.

type IPropertyRepository interface {
	Create(ctx context.Context, p entities.PropertyListing) (entities.PropertyListing, error)
	GetByID(ctx context.Context, id string) (entities.PropertyListing, error)
	List(ctx context.Context, marketability entities.Marketability) ([]entities.PropertyListing, error)
}
