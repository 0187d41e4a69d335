package ports

import (
	"context"
	"time"

	"github.com/plazaops/property-system/internal/core/domain"
)

// CreateTenantInput carries all data needed to register a lease. Required
// fields are checked at the HTTP schema layer; the service re-checks the
// numeric constraints.
type CreateTenantInput struct {
	ShopName    string
	ShopNumber  string
	ShopFacing  string
	FloorNumber int

	TenantName        string
	TenantAddress     string
	TenantPhoneNumber string
	TenantEmail       string

	AdvancePay             float64
	AdvancePayDate         time.Time
	RentalPaymentDate      int
	RentAmount             float64
	MonthlyRentPaidAmount1 float64
	MonthlyRentPaidAmount2 float64
	MonthlyRentPaidDate1   *time.Time
	MonthlyRentPaidDate2   *time.Time

	TNEBNumber string
}

// UpdateTenantInput is a partial update: nil fields keep their stored value.
type UpdateTenantInput struct {
	ShopName    *string
	ShopNumber  *string
	ShopFacing  *string
	FloorNumber *int

	TenantName        *string
	TenantAddress     *string
	TenantPhoneNumber *string
	TenantEmail       *string

	AdvancePay             *float64
	AdvancePayDate         *time.Time
	RentalPaymentDate      *int
	RentAmount             *float64
	MonthlyRentPaidAmount1 *float64
	MonthlyRentPaidAmount2 *float64
	MonthlyRentPaidDate1   *time.Time
	MonthlyRentPaidDate2   *time.Time

	TNEBNumber *string
}

// TenantService defines the lease use cases. Every operation except Create
// first resolves the record and verifies the caller owns it.
type TenantService interface {
	Create(ctx context.Context, ownerID string, in CreateTenantInput) (*domain.Tenant, error)
	List(ctx context.Context, ownerID string) ([]*domain.Tenant, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Tenant, error)
	Update(ctx context.Context, ownerID, id string, in UpdateTenantInput) (*domain.Tenant, error)
	Delete(ctx context.Context, ownerID, id string) error
}
