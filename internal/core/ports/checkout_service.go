package ports

import "context"

// CheckoutResult is returned after a successful checkout.
type CheckoutResult struct {
	Total float64
	// Lines is the number of cart lines that were charged and cleared.
	Lines int
}

// PaymentProcessor is the payment collaborator. The production wiring is an
// explicit stub; the interface exists so a real gateway can slot in, at
// which point cart clearing must move after payment confirmation.
type PaymentProcessor interface {
	Charge(ctx context.Context, userID string, amount float64) error
}

// CheckoutGuard protects against double-submitted checkouts. Arm returns
// false when the same (user, key) pair was already armed recently. Disarm
// releases the pair; a checkout that fails must disarm so the client can
// retry with the same key.
type CheckoutGuard interface {
	Arm(ctx context.Context, userID, key string) (bool, error)
	Disarm(ctx context.Context, userID, key string) error
}

// CheckoutService aggregates the cart into a total, runs the payment stub,
// and clears the cart. An empty cart checks out to a zero total without
// error; a dangling goods reference aborts the whole operation.
type CheckoutService interface {
	Checkout(ctx context.Context, userID, idempotencyKey string) (*CheckoutResult, error)
}
