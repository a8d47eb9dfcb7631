package ports

import (
	"context"
	"time"

	"github.com/babies-shop/commerce-api/internal/core/domain"
)

// CartLineView is a cart line with its goods reference resolved. When the
// referenced goods has been deleted from the catalog, Goods is nil and
// Unresolved is true; the line is reported, never silently dropped.
type CartLineView struct {
	GoodsID    string
	Quantity   int
	CreatedAt  time.Time
	Goods      *domain.Goods
	Unresolved bool
}

// CartService holds the business rules for cart mutations against live
// stock. All mutations are serialized per user.
type CartService interface {
	// AddToCart appends a line or merges into an existing one. The combined
	// quantity is validated against current stock.
	AddToCart(ctx context.Context, userID, goodsID string, quantity int) error
	// UpdateCart sets (not increments) the line quantity. It never creates
	// a line.
	UpdateCart(ctx context.Context, userID, goodsID string, quantity int) error
	RemoveFromCart(ctx context.Context, userID, goodsID string) error
	// GetCart returns the cart lines in insertion order with goods resolved.
	GetCart(ctx context.Context, userID string) ([]CartLineView, error)
}
