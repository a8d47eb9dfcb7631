package ports

import (
	"context"

	"github.com/babies-shop/commerce-api/internal/core/domain"
)

// GoodsRepository defines persistence operations for catalog items.
type GoodsRepository interface {
	Create(ctx context.Context, g *domain.Goods) (*domain.Goods, error)
	// FindByID returns domain.ErrGoodsNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*domain.Goods, error)
	// FindByIDs resolves a set of goods ids in one query. Missing ids are
	// simply absent from the result map; resolving a dangling reference is
	// not an error at this layer.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Goods, error)
	// List returns all goods, unfiltered and unpaginated.
	List(ctx context.Context) ([]*domain.Goods, error)
	// Update replaces the mutable fields of an existing goods document and
	// returns the updated record, or domain.ErrGoodsNotFound.
	Update(ctx context.Context, g *domain.Goods) (*domain.Goods, error)
	// Delete removes the goods document. Cart lines and favorites referencing
	// it are left dangling on purpose.
	Delete(ctx context.Context, id string) error
}
