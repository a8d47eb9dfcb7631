package ports

import (
	"context"

	"github.com/babies-shop/commerce-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at account creation.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Address   string
	Phone     string
	// Role defaults to "user" when empty. The public registration endpoint
	// never populates it; only out-of-band provisioning may set "admin".
	Role string
}

// ExternalProfile is the output of the third-party sign-in collaborator:
// a verified identity assertion reduced to the fields the core needs.
type ExternalProfile struct {
	Subject   string
	Email     string
	FirstName string
	LastName  string
}

// IdentityVerifier validates an external identity assertion (a Google ID
// token) and returns the profile it attests to.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*ExternalProfile, error)
}

// AuthService implements registration and both login paths.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// LoginWithGoogle exchanges a verified external profile for a local
	// identity, creating the user on first sign-in.
	LoginWithGoogle(ctx context.Context, idToken string) (string, *domain.User, error)
	// GetAccount returns the profile of an authenticated user.
	GetAccount(ctx context.Context, userID string) (*domain.User, error)
}
