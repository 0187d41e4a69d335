package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/plazaops/property-system/internal/core/domain"
	"github.com/plazaops/property-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubTenantRepo struct {
	byID   map[string]*domain.Tenant
	nextID int
}

func newStubTenantRepo() *stubTenantRepo {
	return &stubTenantRepo{byID: make(map[string]*domain.Tenant)}
}

func (r *stubTenantRepo) Create(_ context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	for _, existing := range r.byID {
		if existing.ShopNumber == t.ShopNumber {
			return nil, domain.ErrShopNumberTaken
		}
	}
	r.nextID++
	clone := *t
	clone.ID = "tenant-" + strconv.Itoa(r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTenantRepo) ListByOwner(_ context.Context, userID string) ([]*domain.Tenant, error) {
	var out []*domain.Tenant
	for _, t := range r.byID {
		if t.UserID == userID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTenantRepo) FindByID(_ context.Context, id string) (*domain.Tenant, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTenantNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTenantRepo) Update(_ context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	if _, ok := r.byID[t.ID]; !ok {
		return nil, domain.ErrTenantNotFound
	}
	clone := *t
	r.byID[t.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTenantRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrTenantNotFound
	}
	delete(r.byID, id)
	return nil
}

func validTenantInput(shopNumber string) ports.CreateTenantInput {
	return ports.CreateTenantInput{
		ShopName:          "The Coffee Bean",
		ShopNumber:        shopNumber,
		ShopFacing:        "East",
		FloorNumber:       1,
		TenantName:        "Ravi Kumar",
		TenantAddress:     "12 Main Road",
		TenantPhoneNumber: "9876543210",
		AdvancePay:        50000,
		AdvancePayDate:    time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		RentalPaymentDate: 5,
		RentAmount:        1000,
	}
}

func TestTenantService_Create_DerivedFields(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	in := validTenantInput("S-101")
	in.MonthlyRentPaidAmount1 = 400
	created, err := svc.Create(context.Background(), "admin-a", in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.UserID != "admin-a" {
		t.Fatalf("owner = %q, want admin-a", created.UserID)
	}
	if created.BalanceAmountPending != 600 {
		t.Fatalf("balance = %v, want 600", created.BalanceAmountPending)
	}
	if created.RentIncrementDate == nil {
		t.Fatalf("expected rent increment date to be derived")
	}
	if want := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC); !created.RentIncrementDate.Equal(want) {
		t.Fatalf("rent increment date = %v, want %v", created.RentIncrementDate, want)
	}
}

func TestTenantService_Create_DuplicateShopNumber(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), "admin-a", validTenantInput("S-101")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	// Global uniqueness: a different administrator cannot reuse the number.
	if _, err := svc.Create(context.Background(), "admin-b", validTenantInput("S-101")); !errors.Is(err, domain.ErrShopNumberTaken) {
		t.Fatalf("expected ErrShopNumberTaken, got %v", err)
	}
}

func TestTenantService_Create_InvalidNumbers(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	in := validTenantInput("S-102")
	in.RentAmount = -5
	if _, err := svc.Create(context.Background(), "admin-a", in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for negative rent, got %v", err)
	}

	in = validTenantInput("S-103")
	in.RentalPaymentDate = 32
	if _, err := svc.Create(context.Background(), "admin-a", in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for due day 32, got %v", err)
	}
}

func TestTenantService_Create_BasementFloor(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	// -1 is a legitimate below-ground unit.
	in := validTenantInput("S-104")
	in.FloorNumber = -1
	created, err := svc.Create(context.Background(), "admin-a", in)
	if err != nil {
		t.Fatalf("basement floor -1 should be a valid lease, got: %v", err)
	}
	if created.FloorNumber != -1 {
		t.Fatalf("floor number = %d, want -1", created.FloorNumber)
	}

	in = validTenantInput("S-105")
	in.FloorNumber = -2
	if _, err := svc.Create(context.Background(), "admin-a", in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for floor -2, got %v", err)
	}
}

func TestTenantService_Update_BasementFloor(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), "admin-a", validTenantInput("S-106"))

	basement := -1
	updated, err := svc.Update(context.Background(), "admin-a", created.ID, ports.UpdateTenantInput{FloorNumber: &basement})
	if err != nil {
		t.Fatalf("moving a lease to floor -1 should succeed, got: %v", err)
	}
	if updated.FloorNumber != -1 {
		t.Fatalf("floor number = %d, want -1", updated.FloorNumber)
	}

	subBasement := -2
	if _, err := svc.Update(context.Background(), "admin-a", created.ID, ports.UpdateTenantInput{FloorNumber: &subBasement}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for floor -2, got %v", err)
	}
}

func TestTenantService_List_ScopedToOwner(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	_, _ = svc.Create(context.Background(), "admin-a", validTenantInput("S-201"))
	_, _ = svc.Create(context.Background(), "admin-a", validTenantInput("S-202"))
	_, _ = svc.Create(context.Background(), "admin-b", validTenantInput("S-203"))

	forA, err := svc.List(context.Background(), "admin-a")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(forA) != 2 {
		t.Fatalf("admin-a sees %d tenants, want 2", len(forA))
	}

	forB, _ := svc.List(context.Background(), "admin-b")
	if len(forB) != 1 {
		t.Fatalf("admin-b sees %d tenants, want 1", len(forB))
	}
}

func TestTenantService_Get_NonOwnerRejected(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), "admin-a", validTenantInput("S-301"))

	if _, err := svc.Get(context.Background(), "admin-b", created.ID); !errors.Is(err, domain.ErrNotTenantOwner) {
		t.Fatalf("expected ErrNotTenantOwner, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "admin-a", created.ID); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
}

func TestTenantService_Update_MergesAndRecomputes(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), "admin-a", validTenantInput("S-401"))

	paid := 1000.0
	updated, err := svc.Update(context.Background(), "admin-a", created.ID, ports.UpdateTenantInput{
		MonthlyRentPaidAmount1: &paid,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.BalanceAmountPending != 0 {
		t.Fatalf("balance = %v, want 0 after full payment", updated.BalanceAmountPending)
	}
	if updated.ShopName != "The Coffee Bean" {
		t.Fatalf("untouched field changed: %q", updated.ShopName)
	}
}

func TestTenantService_Update_RevalidatesMergedState(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), "admin-a", validTenantInput("S-402"))

	bad := -100.0
	if _, err := svc.Update(context.Background(), "admin-a", created.ID, ports.UpdateTenantInput{RentAmount: &bad}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestTenantService_Update_NonOwnerRejected(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), "admin-a", validTenantInput("S-403"))

	name := "Changed"
	if _, err := svc.Update(context.Background(), "admin-b", created.ID, ports.UpdateTenantInput{ShopName: &name}); !errors.Is(err, domain.ErrNotTenantOwner) {
		t.Fatalf("expected ErrNotTenantOwner, got %v", err)
	}
}

func TestTenantService_Delete(t *testing.T) {
	svc := NewTenantService(newStubTenantRepo(), zerolog.Nop())

	created, _ := svc.Create(context.Background(), "admin-a", validTenantInput("S-501"))

	if err := svc.Delete(context.Background(), "admin-b", created.ID); !errors.Is(err, domain.ErrNotTenantOwner) {
		t.Fatalf("expected ErrNotTenantOwner, got %v", err)
	}

	if err := svc.Delete(context.Background(), "admin-a", created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	// Deleting again surfaces not-found, not a crash or silent success.
	if err := svc.Delete(context.Background(), "admin-a", created.ID); !errors.Is(err, domain.ErrTenantNotFound) {
		t.Fatalf("expected ErrTenantNotFound, got %v", err)
	}
}
