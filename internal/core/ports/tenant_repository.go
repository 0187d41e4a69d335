package ports

import (
	"context"

	"github.com/plazaops/property-system/internal/core/domain"
)

// TenantRepository defines persistence operations for tenant leases.
// Ownership scoping is enforced by the service layer; the repository only
// filters where a method says so.
type TenantRepository interface {
	Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)
	// ListByOwner returns all leases whose owning user matches userID.
	ListByOwner(ctx context.Context, userID string) ([]*domain.Tenant, error)
	FindByID(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)
	Delete(ctx context.Context, id string) error
}
