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

// CartService implements the cart rules against live stock. Every mutation
// runs a load → mutate → save cycle on the user aggregate under a per-user
// lock, so concurrent requests for the same user cannot lose updates.
type CartService struct {
	users ports.UserRepository
	goods ports.GoodsRepository
	locks *lock.Keyed
	log   zerolog.Logger
}

func NewCartService(users ports.UserRepository, goods ports.GoodsRepository, locks *lock.Keyed, log zerolog.Logger) *CartService {
	return &CartService{users: users, goods: goods, locks: locks, log: log}
}

// AddToCart appends a new cart line, or merges into the existing line for
// the same goods by summing quantities. The combined quantity is validated
// against current stock, so repeated adds cannot book more than is
// available.
func (s *CartService) AddToCart(ctx context.Context, userID, goodsID string, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	goods, err := s.goods.FindByID(ctx, goodsID)
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	requested := quantity
	idx := user.CartLineIndex(goodsID)
	if idx >= 0 {
		requested += user.Cart[idx].Quantity
	}
	if !goods.HasStock(requested) {
		return fmt.Errorf("add to cart: %w (requested %d, stock %d)", domain.ErrInsufficientStock, requested, goods.Quantity)
	}

	now := time.Now().UTC()
	if idx >= 0 {
		user.Cart[idx].Quantity = requested
	} else {
		user.Cart = append(user.Cart, domain.CartLine{
			GoodsID:   goodsID,
			Quantity:  quantity,
			CreatedAt: now,
		})
	}
	user.UpdatedAt = now

	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	s.log.Info().
		Str("user_id", userID).
		Str("goods_id", goodsID).
		Int("quantity", quantity).
		Bool("merged", idx >= 0).
		Msg("goods added to cart")

	return nil
}

// UpdateCart sets the quantity of an existing cart line. It never creates a
// line; updating a goods that is not in the cart fails with
// ErrCartLineNotFound.
func (s *CartService) UpdateCart(ctx context.Context, userID, goodsID string, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("update cart: %w", err)
	}
	goods, err := s.goods.FindByID(ctx, goodsID)
	if err != nil {
		return fmt.Errorf("update cart: %w", err)
	}
	if !goods.HasStock(quantity) {
		return fmt.Errorf("update cart: %w (requested %d, stock %d)", domain.ErrInsufficientStock, quantity, goods.Quantity)
	}

	idx := user.CartLineIndex(goodsID)
	if idx < 0 {
		return fmt.Errorf("update cart: %w", domain.ErrCartLineNotFound)
	}

	user.Cart[idx].Quantity = quantity
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("update cart: %w", err)
	}

	s.log.Info().
		Str("user_id", userID).
		Str("goods_id", goodsID).
		Int("quantity", quantity).
		Msg("cart line updated")

	return nil
}

// RemoveFromCart deletes the cart line referencing goodsID.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, goodsID string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}

	idx := user.CartLineIndex(goodsID)
	if idx < 0 {
		return fmt.Errorf("remove from cart: %w", domain.ErrCartLineNotFound)
	}

	user.Cart = append(user.Cart[:idx], user.Cart[idx+1:]...)
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}

	s.log.Info().Str("user_id", userID).Str("goods_id", goodsID).Msg("goods removed from cart")
	return nil
}

// GetCart returns the cart lines in insertion order with their goods
// references resolved. A line whose goods was deleted from the catalog is
// reported with a nil Goods payload and Unresolved set.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]ports.CartLineView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	resolved, err := resolveGoods(ctx, s.goods, cartGoodsIDs(user))
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	views := make([]ports.CartLineView, 0, len(user.Cart))
	for _, line := range user.Cart {
		g := resolved[line.GoodsID]
		views = append(views, ports.CartLineView{
			GoodsID:    line.GoodsID,
			Quantity:   line.Quantity,
			CreatedAt:  line.CreatedAt,
			Goods:      g,
			Unresolved: g == nil,
		})
	}
	return views, nil
}

func cartGoodsIDs(user *domain.User) []string {
	ids := make([]string, 0, len(user.Cart))
	for _, line := range user.Cart {
		ids = append(ids, line.GoodsID)
	}
	return ids
}

// resolveGoods batch-loads the referenced goods. An empty id list skips the
// store round trip.
func resolveGoods(ctx context.Context, repo ports.GoodsRepository, ids []string) (map[string]*domain.Goods, error) {
	if len(ids) == 0 {
		return map[string]*domain.Goods{}, nil
	}
	return repo.FindByIDs(ctx, ids)
}
