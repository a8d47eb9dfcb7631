package domain

import "errors"

// Sentinel errors for the commerce domain. The API layer maps each of these
// to a deterministic HTTP status; everything else is a 500.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrGoodsNotFound    = errors.New("goods not found")
	ErrCartLineNotFound = errors.New("goods not found in cart")
	ErrFavoriteNotFound = errors.New("favorite not found")

	ErrDuplicateFavorite = errors.New("goods already in favorites")
	ErrDuplicateCheckout = errors.New("checkout already submitted")

	ErrInsufficientStock = errors.New("insufficient stock available")

	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrInconsistentState is returned when correctness requires a goods
	// reference to resolve and it does not (dangling reference at checkout).
	ErrInconsistentState = errors.New("cart references deleted goods")

	ErrForbidden = errors.New("access forbidden")

	// ErrStoreUnavailable wraps persistence failures after retries are
	// exhausted.
	ErrStoreUnavailable = errors.New("store unavailable")
)
