package service

import (
	"context"
	"errors"
	"testing"

	"github.com/babies-shop/commerce-api/internal/core/domain"
)

func newFavoritesFixture() (*FavoritesService, *stubUserRepo, *stubGoodsRepo) {
	users := newStubUserRepo()
	goods := newStubGoodsRepo()
	svc := NewFavoritesService(users, goods, newLocks(), discardLogger)
	return svc, users, goods
}

func TestFavoritesService_Add(t *testing.T) {
	svc, users, goods := newFavoritesFixture()
	users.seed(seededUser("u1"))
	goods.seed(seededGoods("g1", 10.0, 5))

	if err := svc.AddFavorite(context.Background(), "u1", "g1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := users.stored("u1")
	if len(stored.Favorites) != 1 || stored.Favorites[0].GoodsID != "g1" {
		t.Fatalf("unexpected favorites: %+v", stored.Favorites)
	}
	if stored.Favorites[0].CreatedAt.IsZero() {
		t.Error("favorite timestamp must not be zero")
	}
}

func TestFavoritesService_Add_DuplicateRejected(t *testing.T) {
	svc, users, goods := newFavoritesFixture()
	users.seed(seededUser("u1"))
	goods.seed(seededGoods("g1", 10.0, 5))

	if err := svc.AddFavorite(context.Background(), "u1", "g1"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	savesBefore := users.saves

	err := svc.AddFavorite(context.Background(), "u1", "g1")
	if !errors.Is(err, domain.ErrDuplicateFavorite) {
		t.Fatalf("expected ErrDuplicateFavorite, got %v", err)
	}
	if users.saves != savesBefore {
		t.Error("rejected add must not write to the store")
	}
	if len(users.stored("u1").Favorites) != 1 {
		t.Error("store state must be unchanged after rejected add")
	}
}

func TestFavoritesService_Add_NotFound(t *testing.T) {
	svc, users, goods := newFavoritesFixture()
	users.seed(seededUser("u1"))
	goods.seed(seededGoods("g1", 10.0, 5))

	if err := svc.AddFavorite(context.Background(), "ghost", "g1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.AddFavorite(context.Background(), "u1", "ghost"); !errors.Is(err, domain.ErrGoodsNotFound) {
		t.Fatalf("expected ErrGoodsNotFound, got %v", err)
	}
}

func TestFavoritesService_Remove(t *testing.T) {
	svc, users, goods := newFavoritesFixture()
	users.seed(seededUser("u1"))
	goods.seed(seededGoods("g1", 10.0, 5))

	_ = svc.AddFavorite(context.Background(), "u1", "g1")
	if err := svc.RemoveFavorite(context.Background(), "u1", "g1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(users.stored("u1").Favorites) != 0 {
		t.Error("favorite not removed")
	}

	err := svc.RemoveFavorite(context.Background(), "u1", "g1")
	if !errors.Is(err, domain.ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
}

func TestFavoritesService_Get_DanglingReferenceFlagged(t *testing.T) {
	svc, users, goods := newFavoritesFixture()
	users.seed(seededUser("u1"))
	goods.seed(seededGoods("g1", 10.0, 5))
	goods.seed(seededGoods("g2", 4.0, 5))

	_ = svc.AddFavorite(context.Background(), "u1", "g1")
	_ = svc.AddFavorite(context.Background(), "u1", "g2")
	_ = goods.Delete(context.Background(), "g1")

	views, err := svc.GetFavorites(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get favorites failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(views))
	}
	if !views[0].Unresolved || views[0].Goods != nil {
		t.Fatalf("expected first favorite unresolved, got %+v", views[0])
	}
	if views[1].Unresolved || views[1].Goods == nil {
		t.Fatalf("expected second favorite resolved, got %+v", views[1])
	}
}
