package ports

import (
	"context"

	"github.com/plazaops/property-system/internal/core/domain"
)

// CreateVacantShopInput carries the data needed to publish a listing.
type CreateVacantShopInput struct {
	ShopNumber string
	Dimensions string
}

// UpdateVacantShopInput is a partial update: empty fields keep their stored
// value, matching the original listing contract.
type UpdateVacantShopInput struct {
	ShopNumber string
	Dimensions string
}

// VacantShopService defines listing use cases. Reads are public; writes are
// restricted to administrators at the routing layer.
type VacantShopService interface {
	Create(ctx context.Context, ownerID string, in CreateVacantShopInput) (*domain.VacantShop, error)
	List(ctx context.Context) ([]*domain.VacantShop, error)
	Get(ctx context.Context, id string) (*domain.VacantShop, error)
	Update(ctx context.Context, id string, in UpdateVacantShopInput) (*domain.VacantShop, error)
	Delete(ctx context.Context, id string) error
}
