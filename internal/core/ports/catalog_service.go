package ports

import (
	"context"

	"github.com/babies-shop/commerce-api/internal/core/domain"
)

// GoodsInput carries the writable fields of a catalog item.
type GoodsInput struct {
	Name        string
	Price       float64
	Description string
	Category    string
	Quantity    int
	Image       string
}

// CatalogService defines the management operations on the goods catalog.
// Mutations are admin-only; the gate lives in the transport layer.
type CatalogService interface {
	CreateGoods(ctx context.Context, input GoodsInput) (*domain.Goods, error)
	GetGoods(ctx context.Context, id string) (*domain.Goods, error)
	ListGoods(ctx context.Context) ([]*domain.Goods, error)
	UpdateGoods(ctx context.Context, id string, input GoodsInput) (*domain.Goods, error)
	DeleteGoods(ctx context.Context, id string) error
}
