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

// CheckoutService aggregates the cart into a total, runs the payment
// collaborator, and clears the cart. Payment is a stub in this deployment;
// if a real gateway replaces it, cart clearing must move after payment
// confirmation.
type CheckoutService struct {
	users   ports.UserRepository
	goods   ports.GoodsRepository
	payment ports.PaymentProcessor
	guard   ports.CheckoutGuard
	locks   *lock.Keyed
	log     zerolog.Logger
}

func NewCheckoutService(
	users ports.UserRepository,
	goods ports.GoodsRepository,
	payment ports.PaymentProcessor,
	guard ports.CheckoutGuard,
	locks *lock.Keyed,
	log zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{users: users, goods: goods, payment: payment, guard: guard, locks: locks, log: log}
}

// Checkout computes total = Σ(line.quantity × goods.price) over all cart
// lines, charges it, clears the cart, and persists the user. A cart line
// whose goods no longer resolves fails the whole operation with
// ErrInconsistentState and leaves the cart untouched; silently skipping the
// line would under-charge. An empty cart checks out to 0 without error.
//
// When the client supplies an idempotency key, a replay of the same key is
// rejected with ErrDuplicateCheckout instead of charging twice. The key is
// released when the checkout fails, so a retry after a payment or store
// error is not treated as a replay; only a completed checkout keeps the
// key armed.
func (s *CheckoutService) Checkout(ctx context.Context, userID, idempotencyKey string) (*ports.CheckoutResult, error) {
	armed := false
	if idempotencyKey != "" {
		ok, err := s.guard.Arm(ctx, userID, idempotencyKey)
		if err != nil {
			// Guard failure must not block a checkout; proceed without it.
			s.log.Warn().Err(err).Str("user_id", userID).Msg("checkout guard unavailable, proceeding")
		} else if !ok {
			return nil, fmt.Errorf("checkout: %w", domain.ErrDuplicateCheckout)
		} else {
			armed = true
		}
	}

	result, err := s.checkout(ctx, userID)
	if err != nil && armed {
		if derr := s.guard.Disarm(ctx, userID, idempotencyKey); derr != nil {
			s.log.Warn().Err(derr).Str("user_id", userID).Msg("checkout guard not released after failure")
		}
	}
	return result, err
}

func (s *CheckoutService) checkout(ctx context.Context, userID string) (*ports.CheckoutResult, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	resolved, err := resolveGoods(ctx, s.goods, cartGoodsIDs(user))
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	total := 0.0
	for _, line := range user.Cart {
		g, ok := resolved[line.GoodsID]
		if !ok {
			return nil, fmt.Errorf("checkout: goods %s: %w", line.GoodsID, domain.ErrInconsistentState)
		}
		total += float64(line.Quantity) * g.Price
	}

	lines := len(user.Cart)
	if lines > 0 {
		if err := s.payment.Charge(ctx, userID, total); err != nil {
			return nil, fmt.Errorf("checkout: payment: %w", err)
		}
	}

	user.Cart = nil
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	s.log.Info().
		Str("user_id", userID).
		Float64("total", total).
		Int("lines", lines).
		Msg("checkout completed")

	return &ports.CheckoutResult{Total: total, Lines: lines}, nil
}
