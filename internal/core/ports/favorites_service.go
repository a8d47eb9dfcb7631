package ports

import (
	"context"
	"time"

	"github.com/babies-shop/commerce-api/internal/core/domain"
)

// FavoriteView is a favorite with its goods reference resolved; same
// dangling-reference contract as CartLineView.
type FavoriteView struct {
	GoodsID    string
	CreatedAt  time.Time
	Goods      *domain.Goods
	Unresolved bool
}

// FavoritesService implements set membership of goods per user.
type FavoritesService interface {
	// AddFavorite rejects a second add of the same goods with
	// domain.ErrDuplicateFavorite.
	AddFavorite(ctx context.Context, userID, goodsID string) error
	RemoveFavorite(ctx context.Context, userID, goodsID string) error
	GetFavorites(ctx context.Context, userID string) ([]FavoriteView, error)
}
