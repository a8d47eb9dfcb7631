package service

import (
	"context"
	"errors"
	"testing"

	"github.com/babies-shop/commerce-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubPayment struct {
	chargeErr error
	charges   []float64
}

func (p *stubPayment) Charge(_ context.Context, _ string, amount float64) error {
	if p.chargeErr != nil {
		return p.chargeErr
	}
	p.charges = append(p.charges, amount)
	return nil
}

type stubGuard struct {
	armErr  error
	seen    map[string]bool
	disarms int
}

func newStubGuard() *stubGuard {
	return &stubGuard{seen: make(map[string]bool)}
}

func (g *stubGuard) Arm(_ context.Context, userID, key string) (bool, error) {
	if g.armErr != nil {
		return false, g.armErr
	}
	k := userID + ":" + key
	if g.seen[k] {
		return false, nil
	}
	g.seen[k] = true
	return true, nil
}

func (g *stubGuard) Disarm(_ context.Context, userID, key string) error {
	delete(g.seen, userID+":"+key)
	g.disarms++
	return nil
}

func newCheckoutFixture() (*CheckoutService, *stubUserRepo, *stubGoodsRepo, *stubPayment, *stubGuard) {
	users := newStubUserRepo()
	goods := newStubGoodsRepo()
	payment := &stubPayment{}
	guard := newStubGuard()
	svc := NewCheckoutService(users, goods, payment, guard, newLocks(), discardLogger)
	return svc, users, goods, payment, guard
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCheckoutService_TotalAndClear(t *testing.T) {
	svc, users, goods, payment, _ := newCheckoutFixture()
	goods.seed(seededGoods("gA", 10.0, 10))
	goods.seed(seededGoods("gB", 5.0, 10))

	u := seededUser("u1")
	u.Cart = []domain.CartLine{
		{GoodsID: "gA", Quantity: 2},
		{GoodsID: "gB", Quantity: 1},
	}
	users.seed(u)

	result, err := svc.Checkout(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if result.Total != 25.0 {
		t.Fatalf("expected total 25.0, got %v", result.Total)
	}
	if result.Lines != 2 {
		t.Fatalf("expected 2 lines charged, got %d", result.Lines)
	}
	if len(users.stored("u1").Cart) != 0 {
		t.Error("cart must be empty after checkout")
	}
	if len(payment.charges) != 1 || payment.charges[0] != 25.0 {
		t.Fatalf("unexpected charges: %v", payment.charges)
	}

	// Second checkout on the now-empty cart: zero total, no error, no charge.
	result, err = svc.Checkout(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("empty-cart checkout must not fail: %v", err)
	}
	if result.Total != 0.0 || result.Lines != 0 {
		t.Fatalf("expected zero total, got %+v", result)
	}
	if len(payment.charges) != 1 {
		t.Error("empty-cart checkout must not charge")
	}
}

func TestCheckoutService_DanglingReferenceAborts(t *testing.T) {
	svc, users, goods, payment, _ := newCheckoutFixture()
	goods.seed(seededGoods("gA", 10.0, 10))

	u := seededUser("u1")
	u.Cart = []domain.CartLine{
		{GoodsID: "gA", Quantity: 2},
		{GoodsID: "deleted", Quantity: 1},
	}
	users.seed(u)

	_, err := svc.Checkout(context.Background(), "u1", "")
	if !errors.Is(err, domain.ErrInconsistentState) {
		t.Fatalf("expected ErrInconsistentState, got %v", err)
	}
	if len(users.stored("u1").Cart) != 2 {
		t.Error("cart must be unmodified after aborted checkout")
	}
	if len(payment.charges) != 0 {
		t.Error("no payment may run on an inconsistent cart")
	}
}

func TestCheckoutService_PaymentFailureKeepsCart(t *testing.T) {
	svc, users, goods, payment, _ := newCheckoutFixture()
	goods.seed(seededGoods("gA", 10.0, 10))
	payment.chargeErr = errors.New("gateway down")

	u := seededUser("u1")
	u.Cart = []domain.CartLine{{GoodsID: "gA", Quantity: 1}}
	users.seed(u)

	if _, err := svc.Checkout(context.Background(), "u1", ""); err == nil {
		t.Fatal("expected error when payment fails")
	}
	if len(users.stored("u1").Cart) != 1 {
		t.Error("cart must survive a failed payment")
	}
}

func TestCheckoutService_IdempotencyKeyRejectsReplay(t *testing.T) {
	svc, users, goods, payment, _ := newCheckoutFixture()
	goods.seed(seededGoods("gA", 10.0, 10))

	u := seededUser("u1")
	u.Cart = []domain.CartLine{{GoodsID: "gA", Quantity: 1}}
	users.seed(u)

	if _, err := svc.Checkout(context.Background(), "u1", "key-1"); err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}

	_, err := svc.Checkout(context.Background(), "u1", "key-1")
	if !errors.Is(err, domain.ErrDuplicateCheckout) {
		t.Fatalf("expected ErrDuplicateCheckout, got %v", err)
	}
	if len(payment.charges) != 1 {
		t.Fatalf("replay must not charge again: %v", payment.charges)
	}
}

// A failed checkout must release its idempotency key: the client's retry
// with the same key is a retry, not a replay.
func TestCheckoutService_RetryAfterPaymentFailure(t *testing.T) {
	svc, users, goods, payment, guard := newCheckoutFixture()
	goods.seed(seededGoods("gA", 10.0, 10))
	payment.chargeErr = errors.New("gateway down")

	u := seededUser("u1")
	u.Cart = []domain.CartLine{{GoodsID: "gA", Quantity: 1}}
	users.seed(u)

	if _, err := svc.Checkout(context.Background(), "u1", "key-1"); err == nil {
		t.Fatal("expected error when payment fails")
	}
	if guard.disarms != 1 {
		t.Fatalf("failed checkout must release the guard, disarms=%d", guard.disarms)
	}

	payment.chargeErr = nil
	result, err := svc.Checkout(context.Background(), "u1", "key-1")
	if err != nil {
		t.Fatalf("retry after failed checkout must succeed: %v", err)
	}
	if result.Total != 10.0 {
		t.Fatalf("expected total 10.0, got %v", result.Total)
	}
	if len(payment.charges) != 1 {
		t.Fatalf("expected exactly one charge, got %v", payment.charges)
	}
}

// A dangling goods reference aborts the checkout and must also release the
// key so the client can retry once the cart is repaired.
func TestCheckoutService_DanglingReferenceReleasesGuard(t *testing.T) {
	svc, users, _, _, guard := newCheckoutFixture()

	u := seededUser("u1")
	u.Cart = []domain.CartLine{{GoodsID: "gone", Quantity: 1}}
	users.seed(u)

	_, err := svc.Checkout(context.Background(), "u1", "key-1")
	if !errors.Is(err, domain.ErrInconsistentState) {
		t.Fatalf("expected ErrInconsistentState, got %v", err)
	}
	if guard.disarms != 1 {
		t.Fatalf("aborted checkout must release the guard, disarms=%d", guard.disarms)
	}
}

func TestCheckoutService_GuardFailureIsNonFatal(t *testing.T) {
	svc, users, goods, _, guard := newCheckoutFixture()
	goods.seed(seededGoods("gA", 10.0, 10))
	guard.armErr = errors.New("redis down")

	u := seededUser("u1")
	u.Cart = []domain.CartLine{{GoodsID: "gA", Quantity: 1}}
	users.seed(u)

	result, err := svc.Checkout(context.Background(), "u1", "key-1")
	if err != nil {
		t.Fatalf("checkout must proceed when guard is unavailable: %v", err)
	}
	if result.Total != 10.0 {
		t.Fatalf("expected total 10.0, got %v", result.Total)
	}
}

func TestCheckoutService_UserNotFound(t *testing.T) {
	svc, _, _, _, _ := newCheckoutFixture()

	_, err := svc.Checkout(context.Background(), "ghost", "")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
