// Package redis provides the Redis client backing the checkout
// double-submit guard. Redis is a soft dependency: the guard degrades to a
// warning when it is down, but startup still requires a reachable instance
// so misconfiguration surfaces immediately.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config holds the Redis connection settings. Timeout bounds the startup
// ping only; per-operation deadlines come from the caller's context.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect builds a client for cfg and verifies it with a ping before
// returning it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
