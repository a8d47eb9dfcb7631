package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/babies-shop/commerce-api/internal/core/domain"
	"github.com/babies-shop/commerce-api/internal/core/ports"
)

// CatalogService implements goods management. Deleting goods referenced by
// live carts or favorites is permitted; those references go dangling and
// the read paths flag them.
type CatalogService struct {
	repo ports.GoodsRepository
	log  zerolog.Logger
}

func NewCatalogService(repo ports.GoodsRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) CreateGoods(ctx context.Context, input ports.GoodsInput) (*domain.Goods, error) {
	now := time.Now().UTC()
	goods := &domain.Goods{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, goods)
	if err != nil {
		return nil, fmt.Errorf("create goods: %w", err)
	}

	s.log.Info().Str("goods_id", created.ID).Str("category", created.Category).Msg("goods created")
	return created, nil
}

func (s *CatalogService) GetGoods(ctx context.Context, id string) (*domain.Goods, error) {
	goods, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get goods: %w", err)
	}
	return goods, nil
}

func (s *CatalogService) ListGoods(ctx context.Context) ([]*domain.Goods, error) {
	goods, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list goods: %w", err)
	}
	return goods, nil
}

func (s *CatalogService) UpdateGoods(ctx context.Context, id string, input ports.GoodsInput) (*domain.Goods, error) {
	goods := &domain.Goods{
		ID:          id,
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Image:       input.Image,
		UpdatedAt:   time.Now().UTC(),
	}

	updated, err := s.repo.Update(ctx, goods)
	if err != nil {
		return nil, fmt.Errorf("update goods: %w", err)
	}

	s.log.Info().Str("goods_id", id).Msg("goods updated")
	return updated, nil
}

func (s *CatalogService) DeleteGoods(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete goods: %w", err)
	}
	s.log.Info().Str("goods_id", id).Msg("goods deleted")
	return nil
}
