package ports

import (
	"context"

	"github.com/plazaops/property-system/internal/core/domain"
)

// VacantShopRepository defines persistence operations for vacant-shop
// listings.
type VacantShopRepository interface {
	Create(ctx context.Context, shop *domain.VacantShop) (*domain.VacantShop, error)
	// List returns all listings sorted ascending by shop number.
	List(ctx context.Context) ([]*domain.VacantShop, error)
	FindByID(ctx context.Context, id string) (*domain.VacantShop, error)
	FindByShopNumber(ctx context.Context, shopNumber string) (*domain.VacantShop, error)
	Update(ctx context.Context, shop *domain.VacantShop) (*domain.VacantShop, error)
	Delete(ctx context.Context, id string) error
}
