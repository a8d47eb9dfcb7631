package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babies-shop/commerce-api/internal/api/metrics"
	"github.com/babies-shop/commerce-api/internal/core/domain"
	"github.com/babies-shop/commerce-api/internal/core/ports"
)

// CheckoutHandler handles the checkout endpoint.
type CheckoutHandler struct {
	checkout ports.CheckoutService
}

func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

func checkoutResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrDuplicateCheckout):
		return "duplicate"
	case errors.Is(err, domain.ErrInconsistentState):
		return "inconsistent"
	default:
		return "error"
	}
}

// Checkout totals the cart, runs the payment stub, and clears the cart.
//
// @Summary      Check out the cart
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string  false  "Idempotency key to prevent duplicate submissions"
// @Success      200              {object}  checkoutResponse
// @Failure      401              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")

	result, err := h.checkout.Checkout(c.Request().Context(), userID, idempotencyKey)
	metrics.CheckoutsTotal.WithLabelValues(checkoutResult(err)).Inc()
	if err != nil {
		return err
	}

	metrics.CheckoutAmount.Observe(result.Total)
	return c.JSON(http.StatusOK, checkoutResponse{Total: result.Total, Lines: result.Lines})
}
