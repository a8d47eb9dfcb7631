package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 10 * time.Minute

// CheckoutGuard rejects double-submitted checkouts using Redis.
// Key format: checkout:<user_id>:<idempotency_key>
type CheckoutGuard struct {
	client *redis.Client
}

// NewCheckoutGuard creates a CheckoutGuard wrapping the given Redis client.
func NewCheckoutGuard(client *redis.Client) *CheckoutGuard {
	return &CheckoutGuard{client: client}
}

// Arm records the (user, key) pair with SET NX. It returns false when the
// pair was already armed within guardTTL, meaning the checkout is a replay.
func (g *CheckoutGuard) Arm(ctx context.Context, userID, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(userID, key), "1", guardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("checkout guard: %w", err)
	}
	return ok, nil
}

// Disarm deletes the (user, key) pair so a failed checkout can be retried
// under the same idempotency key.
func (g *CheckoutGuard) Disarm(ctx context.Context, userID, key string) error {
	if err := g.client.Del(ctx, g.key(userID, key)).Err(); err != nil {
		return fmt.Errorf("checkout guard: %w", err)
	}
	return nil
}

func (g *CheckoutGuard) key(userID, key string) string {
	return fmt.Sprintf("checkout:%s:%s", userID, key)
}
