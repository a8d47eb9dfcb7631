package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/babies-shop/commerce-api/internal/core/domain"
	"github.com/babies-shop/commerce-api/internal/infrastructure/lock"
)

// ---------------------------------------------------------------------------
// Shared in-memory stubs
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func newLocks() *lock.Keyed {
	return lock.NewKeyed(8)
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Cart = append([]domain.CartLine(nil), u.Cart...)
	clone.Favorites = append([]domain.Favorite(nil), u.Favorites...)
	return &clone
}

type stubUserRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.User // keyed by ID
	nextID  int
	findErr error // if set, FindByID/FindByEmail return this
	saveErr error // if set, Save/Create return this
	saves   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := cloneUser(user)
	if clone.ID == "" {
		r.nextID++
		clone.ID = "user_" + strconv.Itoa(r.nextID)
	}
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.users[user.ID] = cloneUser(user)
	return nil
}

// stored returns the persisted aggregate for direct assertions.
func (r *stubUserRepo) stored(id string) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneUser(r.users[id])
}

func (r *stubUserRepo) seed(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = cloneUser(u)
}

type stubGoodsRepo struct {
	mu      sync.Mutex
	goods   map[string]*domain.Goods
	nextID  int
	findErr error
}

func newStubGoodsRepo() *stubGoodsRepo {
	return &stubGoodsRepo{goods: make(map[string]*domain.Goods)}
}

func (r *stubGoodsRepo) Create(_ context.Context, g *domain.Goods) (*domain.Goods, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *g
	if clone.ID == "" {
		r.nextID++
		clone.ID = "goods_" + strconv.Itoa(r.nextID)
	}
	stored := clone
	r.goods[clone.ID] = &stored
	return &clone, nil
}

func (r *stubGoodsRepo) FindByID(_ context.Context, id string) (*domain.Goods, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	g, ok := r.goods[id]
	if !ok {
		return nil, domain.ErrGoodsNotFound
	}
	clone := *g
	return &clone, nil
}

func (r *stubGoodsRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Goods, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make(map[string]*domain.Goods, len(ids))
	for _, id := range ids {
		if g, ok := r.goods[id]; ok {
			clone := *g
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubGoodsRepo) List(_ context.Context) ([]*domain.Goods, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*domain.Goods, 0, len(r.goods))
	for _, g := range r.goods {
		clone := *g
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubGoodsRepo) Update(_ context.Context, g *domain.Goods) (*domain.Goods, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.goods[g.ID]
	if !ok {
		return nil, domain.ErrGoodsNotFound
	}
	clone := *g
	clone.CreatedAt = existing.CreatedAt
	stored := clone
	r.goods[g.ID] = &stored
	return &clone, nil
}

func (r *stubGoodsRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goods[id]; !ok {
		return domain.ErrGoodsNotFound
	}
	delete(r.goods, id)
	return nil
}

func (r *stubGoodsRepo) seed(g *domain.Goods) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *g
	r.goods[g.ID] = &clone
}

// ---------------------------------------------------------------------------
// Seed helpers
// ---------------------------------------------------------------------------

func seededUser(id string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:        id,
		Email:     id + "@example.com",
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func seededGoods(id string, price float64, stock int) *domain.Goods {
	now := time.Now().UTC()
	return &domain.Goods{
		ID:        id,
		Name:      "item " + id,
		Price:     price,
		Category:  "toys",
		Quantity:  stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
