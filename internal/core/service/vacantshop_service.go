package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/plazaops/property-system/internal/core/domain"
	"github.com/plazaops/property-system/internal/core/ports"
)

// VacantShopService implements listing CRUD. Reads are public; the router
// only lets administrators reach the write operations.
type VacantShopService struct {
	repo ports.VacantShopRepository
	log  zerolog.Logger
}

func NewVacantShopService(repo ports.VacantShopRepository, log zerolog.Logger) *VacantShopService {
	return &VacantShopService{repo: repo, log: log}
}

// Create publishes a listing. Shop numbers are unique across all listings
// regardless of which administrator created them.
func (s *VacantShopService) Create(ctx context.Context, ownerID string, in ports.CreateVacantShopInput) (*domain.VacantShop, error) {
	if _, err := s.repo.FindByShopNumber(ctx, in.ShopNumber); err == nil {
		return nil, domain.ErrVacantShopExists
	} else if !errors.Is(err, domain.ErrVacantShopNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	shop := &domain.VacantShop{
		ShopNumber: in.ShopNumber,
		Dimensions: in.Dimensions,
		UserID:     ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, shop)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("shop_number", created.ShopNumber).Msg("vacant shop listed")
	return created, nil
}

func (s *VacantShopService) List(ctx context.Context) ([]*domain.VacantShop, error) {
	return s.repo.List(ctx)
}

func (s *VacantShopService) Get(ctx context.Context, id string) (*domain.VacantShop, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites only the supplied fields; absent fields keep their
// stored value.
func (s *VacantShopService) Update(ctx context.Context, id string, in ports.UpdateVacantShopInput) (*domain.VacantShop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ShopNumber != "" {
		shop.ShopNumber = in.ShopNumber
	}
	if in.Dimensions != "" {
		shop.Dimensions = in.Dimensions
	}
	shop.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, shop)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("shop_id", id).Msg("vacant shop updated")
	return updated, nil
}

func (s *VacantShopService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("shop_id", id).Msg("vacant shop removed")
	return nil
}
