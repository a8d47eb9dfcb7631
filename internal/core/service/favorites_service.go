package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/babies-shop/commerce-api/internal/core/domain"
	"github.com/babies-shop/commerce-api/internal/core/ports"
	"github.com/babies-shop/commerce-api/internal/infrastructure/lock"
)

// FavoritesService implements set membership of goods per user. Favorites
// share the user aggregate with the cart, so mutations take the same
// per-user lock.
type FavoritesService struct {
	users ports.UserRepository
	goods ports.GoodsRepository
	locks *lock.Keyed
	log   zerolog.Logger
}

func NewFavoritesService(users ports.UserRepository, goods ports.GoodsRepository, locks *lock.Keyed, log zerolog.Logger) *FavoritesService {
	return &FavoritesService{users: users, goods: goods, locks: locks, log: log}
}

// AddFavorite creates a favorite for goodsID. A second add of the same
// goods is rejected with ErrDuplicateFavorite and leaves the store
// unchanged.
func (s *FavoritesService) AddFavorite(ctx context.Context, userID, goodsID string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	if _, err := s.goods.FindByID(ctx, goodsID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	if user.FavoriteIndex(goodsID) >= 0 {
		return fmt.Errorf("add favorite: %w", domain.ErrDuplicateFavorite)
	}

	now := time.Now().UTC()
	user.Favorites = append(user.Favorites, domain.Favorite{GoodsID: goodsID, CreatedAt: now})
	user.UpdatedAt = now

	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	s.log.Info().Str("user_id", userID).Str("goods_id", goodsID).Msg("goods added to favorites")
	return nil
}

// RemoveFavorite deletes the favorite referencing goodsID.
func (s *FavoritesService) RemoveFavorite(ctx context.Context, userID, goodsID string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	idx := user.FavoriteIndex(goodsID)
	if idx < 0 {
		return fmt.Errorf("remove favorite: %w", domain.ErrFavoriteNotFound)
	}

	user.Favorites = append(user.Favorites[:idx], user.Favorites[idx+1:]...)
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	s.log.Info().Str("user_id", userID).Str("goods_id", goodsID).Msg("goods removed from favorites")
	return nil
}

// GetFavorites returns the favorites in insertion order with goods resolved;
// dangling references are flagged, not dropped.
func (s *FavoritesService) GetFavorites(ctx context.Context, userID string) ([]ports.FavoriteView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}

	ids := make([]string, 0, len(user.Favorites))
	for _, fav := range user.Favorites {
		ids = append(ids, fav.GoodsID)
	}

	resolved, err := resolveGoods(ctx, s.goods, ids)
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}

	views := make([]ports.FavoriteView, 0, len(user.Favorites))
	for _, fav := range user.Favorites {
		g := resolved[fav.GoodsID]
		views = append(views, ports.FavoriteView{
			GoodsID:    fav.GoodsID,
			CreatedAt:  fav.CreatedAt,
			Goods:      g,
			Unresolved: g == nil,
		})
	}
	return views, nil
}
