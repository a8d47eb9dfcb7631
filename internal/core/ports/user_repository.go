package ports

import (
	"context"

	"github.com/babies-shop/commerce-api/internal/core/domain"
)

// UserRepository defines persistence operations for the user aggregate.
// Cart lines and favorites travel inside the User document; Save writes the
// whole aggregate in one upsert so each operation is all-or-nothing.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Save persists the full user aggregate (profile, cart, favorites).
	Save(ctx context.Context, user *domain.User) error
}
