package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/plazaops/property-system/internal/core/domain"
	"github.com/plazaops/property-system/internal/core/ports"
)

type stubVacantShopService struct {
	createFn func(ctx context.Context, ownerID string, in ports.CreateVacantShopInput) (*domain.VacantShop, error)
	listFn   func(ctx context.Context) ([]*domain.VacantShop, error)
	getFn    func(ctx context.Context, id string) (*domain.VacantShop, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateVacantShopInput) (*domain.VacantShop, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubVacantShopService) Create(ctx context.Context, ownerID string, in ports.CreateVacantShopInput) (*domain.VacantShop, error) {
	return s.createFn(ctx, ownerID, in)
}

func (s *stubVacantShopService) List(ctx context.Context) ([]*domain.VacantShop, error) {
	return s.listFn(ctx)
}

func (s *stubVacantShopService) Get(ctx context.Context, id string) (*domain.VacantShop, error) {
	return s.getFn(ctx, id)
}

func (s *stubVacantShopService) Update(ctx context.Context, id string, in ports.UpdateVacantShopInput) (*domain.VacantShop, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubVacantShopService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestVacantShopHandler_Create_Success(t *testing.T) {
	stub := &stubVacantShopService{
		createFn: func(ctx context.Context, ownerID string, in ports.CreateVacantShopInput) (*domain.VacantShop, error) {
			if ownerID != "admin1" || in.ShopNumber != "V-10" {
				t.Fatalf("unexpected args: %s %+v", ownerID, in)
			}
			return &domain.VacantShop{ID: "v1", ShopNumber: in.ShopNumber, Dimensions: in.Dimensions, UserID: ownerID}, nil
		},
	}
	h := NewVacantShopHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/vacant-shops",
		`{"shop_number":"V-10","dimensions":"10x12"}`)
	withIdentity(c, &domain.User{ID: "admin1", Role: domain.RoleAdmin})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "vacant shop created successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["shop_number"] != "V-10" {
		t.Fatalf("unexpected data payload: %+v", resp["data"])
	}
}

func TestVacantShopHandler_Create_Duplicate(t *testing.T) {
	stub := &stubVacantShopService{
		createFn: func(ctx context.Context, ownerID string, in ports.CreateVacantShopInput) (*domain.VacantShop, error) {
			return nil, domain.ErrVacantShopExists
		},
	}
	h := NewVacantShopHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/vacant-shops",
		`{"shop_number":"V-10","dimensions":"10x12"}`)
	withIdentity(c, &domain.User{ID: "admin1", Role: domain.RoleAdmin})

	if err := h.Create(c); !errors.Is(err, domain.ErrVacantShopExists) {
		t.Fatalf("expected ErrVacantShopExists, got %v", err)
	}
}

func TestVacantShopHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubVacantShopService{
		listFn: func(ctx context.Context) ([]*domain.VacantShop, error) {
			return nil, nil
		},
	}
	h := NewVacantShopHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/vacant-shops", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Message string           `json:"message"`
		Data    []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Data == nil {
		t.Fatalf("expected empty array, got null: %s", rec.Body.String())
	}
}

func TestVacantShopHandler_Get_NotFound(t *testing.T) {
	stub := &stubVacantShopService{
		getFn: func(ctx context.Context, id string) (*domain.VacantShop, error) {
			return nil, domain.ErrVacantShopNotFound
		},
	}
	h := NewVacantShopHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/vacant-shops/ghost", "")
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Get(c); !errors.Is(err, domain.ErrVacantShopNotFound) {
		t.Fatalf("expected ErrVacantShopNotFound, got %v", err)
	}
}

func TestVacantShopHandler_Update_PartialFields(t *testing.T) {
	stub := &stubVacantShopService{
		updateFn: func(ctx context.Context, id string, in ports.UpdateVacantShopInput) (*domain.VacantShop, error) {
			if in.Dimensions != "15x20" || in.ShopNumber != "" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.VacantShop{ID: id, ShopNumber: "V-10", Dimensions: in.Dimensions}, nil
		},
	}
	h := NewVacantShopHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/vacant-shops/v1", `{"dimensions":"15x20"}`)
	c.SetParamNames("id")
	c.SetParamValues("v1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestVacantShopHandler_Delete_Success(t *testing.T) {
	stub := &stubVacantShopService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "v1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewVacantShopHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/vacant-shops/v1", "")
	c.SetParamNames("id")
	c.SetParamValues("v1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "vacant shop removed successfully" || resp["id"] != "v1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
