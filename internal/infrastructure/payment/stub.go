// Package payment holds the payment collaborator. Only a stub exists: the
// system computes totals but performs no real charge.
package payment

import (
	"context"

	"github.com/rs/zerolog"
)

// Stub implements ports.PaymentProcessor without contacting any gateway.
// Every charge succeeds. When a real processor replaces this, checkout must
// be reordered so the cart is cleared only after payment confirmation.
type Stub struct {
	log zerolog.Logger
}

func NewStub(log zerolog.Logger) *Stub {
	return &Stub{log: log}
}

func (s *Stub) Charge(_ context.Context, userID string, amount float64) error {
	s.log.Info().
		Str("user_id", userID).
		Float64("amount", amount).
		Msg("payment stub: charge accepted")
	return nil
}
