package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/plazaops/property-system/internal/core/domain"
	"github.com/plazaops/property-system/internal/core/ports"
)

// TenantService implements lease CRUD with strict ownership scoping: list is
// filtered to the caller and every by-id operation re-checks the owner.
type TenantService struct {
	repo ports.TenantRepository
	log  zerolog.Logger
}

func NewTenantService(repo ports.TenantRepository, log zerolog.Logger) *TenantService {
	return &TenantService{repo: repo, log: log}
}

// Create registers a lease owned by ownerID. Derived finance fields are
// computed here, never taken from the caller.
func (s *TenantService) Create(ctx context.Context, ownerID string, in ports.CreateTenantInput) (*domain.Tenant, error) {
	now := time.Now().UTC()
	tenant := &domain.Tenant{
		UserID:                 ownerID,
		ShopName:               in.ShopName,
		ShopNumber:             in.ShopNumber,
		ShopFacing:             in.ShopFacing,
		FloorNumber:            in.FloorNumber,
		TenantName:             in.TenantName,
		TenantAddress:          in.TenantAddress,
		TenantPhoneNumber:      in.TenantPhoneNumber,
		TenantEmail:            in.TenantEmail,
		AdvancePay:             in.AdvancePay,
		AdvancePayDate:         in.AdvancePayDate,
		RentalPaymentDate:      in.RentalPaymentDate,
		RentAmount:             in.RentAmount,
		MonthlyRentPaidAmount1: in.MonthlyRentPaidAmount1,
		MonthlyRentPaidAmount2: in.MonthlyRentPaidAmount2,
		MonthlyRentPaidDate1:   in.MonthlyRentPaidDate1,
		MonthlyRentPaidDate2:   in.MonthlyRentPaidDate2,
		TNEBNumber:             in.TNEBNumber,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := validateTenant(tenant); err != nil {
		return nil, err
	}
	tenant.RecomputeDerived()

	created, err := s.repo.Create(ctx, tenant)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("shop_number", created.ShopNumber).Str("owner", ownerID).Msg("tenant created")
	return created, nil
}

// List returns only the leases owned by ownerID.
func (s *TenantService) List(ctx context.Context, ownerID string) ([]*domain.Tenant, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get fetches a lease and verifies the caller owns it.
func (s *TenantService) Get(ctx context.Context, ownerID, id string) (*domain.Tenant, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !tenant.OwnedBy(ownerID) {
		return nil, domain.ErrNotTenantOwner
	}
	return tenant, nil
}

// Update merges the provided fields into the stored lease, re-validates, and
// recomputes the derived finance fields.
func (s *TenantService) Update(ctx context.Context, ownerID, id string, in ports.UpdateTenantInput) (*domain.Tenant, error) {
	tenant, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	applyTenantUpdate(tenant, in)
	if err := validateTenant(tenant); err != nil {
		return nil, err
	}
	tenant.RecomputeDerived()
	tenant.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, tenant)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("tenant_id", id).Str("owner", ownerID).Msg("tenant updated")
	return updated, nil
}

// Delete removes a lease after the ownership check.
func (s *TenantService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("tenant_id", id).Str("owner", ownerID).Msg("tenant deleted")
	return nil
}

func applyTenantUpdate(t *domain.Tenant, in ports.UpdateTenantInput) {
	if in.ShopName != nil {
		t.ShopName = *in.ShopName
	}
	if in.ShopNumber != nil {
		t.ShopNumber = *in.ShopNumber
	}
	if in.ShopFacing != nil {
		t.ShopFacing = *in.ShopFacing
	}
	if in.FloorNumber != nil {
		t.FloorNumber = *in.FloorNumber
	}
	if in.TenantName != nil {
		t.TenantName = *in.TenantName
	}
	if in.TenantAddress != nil {
		t.TenantAddress = *in.TenantAddress
	}
	if in.TenantPhoneNumber != nil {
		t.TenantPhoneNumber = *in.TenantPhoneNumber
	}
	if in.TenantEmail != nil {
		t.TenantEmail = *in.TenantEmail
	}
	if in.AdvancePay != nil {
		t.AdvancePay = *in.AdvancePay
	}
	if in.AdvancePayDate != nil {
		t.AdvancePayDate = *in.AdvancePayDate
	}
	if in.RentalPaymentDate != nil {
		t.RentalPaymentDate = *in.RentalPaymentDate
	}
	if in.RentAmount != nil {
		t.RentAmount = *in.RentAmount
	}
	if in.MonthlyRentPaidAmount1 != nil {
		t.MonthlyRentPaidAmount1 = *in.MonthlyRentPaidAmount1
	}
	if in.MonthlyRentPaidAmount2 != nil {
		t.MonthlyRentPaidAmount2 = *in.MonthlyRentPaidAmount2
	}
	if in.MonthlyRentPaidDate1 != nil {
		t.MonthlyRentPaidDate1 = in.MonthlyRentPaidDate1
	}
	if in.MonthlyRentPaidDate2 != nil {
		t.MonthlyRentPaidDate2 = in.MonthlyRentPaidDate2
	}
	if in.TNEBNumber != nil {
		t.TNEBNumber = *in.TNEBNumber
	}
}

// validateTenant enforces the per-field numeric constraints that must hold
// after any merge, not just on the initial create payload.
func validateTenant(t *domain.Tenant) error {
	switch {
	case t.FloorNumber < -1:
		// -1 is the basement level; anything below that is not a real floor.
		return fmt.Errorf("%w: floor number must be -1 or higher", domain.ErrValidation)
	case t.AdvancePay < 0:
		return fmt.Errorf("%w: advance pay must be non-negative", domain.ErrValidation)
	case t.RentAmount < 0:
		return fmt.Errorf("%w: rent amount must be non-negative", domain.ErrValidation)
	case t.MonthlyRentPaidAmount1 < 0 || t.MonthlyRentPaidAmount2 < 0:
		return fmt.Errorf("%w: paid amounts must be non-negative", domain.ErrValidation)
	case t.RentalPaymentDate < 1 || t.RentalPaymentDate > 31:
		return fmt.Errorf("%w: rental payment date must be between 1 and 31", domain.ErrValidation)
	}
	return nil
}
