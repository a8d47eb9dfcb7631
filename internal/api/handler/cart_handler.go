package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babies-shop/commerce-api/internal/api/metrics"
	"github.com/babies-shop/commerce-api/internal/core/domain"
	"github.com/babies-shop/commerce-api/internal/core/ports"
)

// CartHandler handles the per-user cart endpoints.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// cartResult classifies a cart mutation outcome for the operations counter.
func cartResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrGoodsNotFound),
		errors.Is(err, domain.ErrCartLineNotFound):
		return "rejected"
	default:
		return "error"
	}
}

// Add appends a line to the cart or merges into an existing one.
//
// @Summary      Add goods to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  addToCartRequest  true  "Goods id and quantity"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.cart.AddToCart(c.Request().Context(), userID, req.GoodsID, req.Quantity)
	metrics.CartOperationsTotal.WithLabelValues("add", cartResult(err)).Inc()
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.InsufficientStockTotal.Inc()
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Update sets the quantity of an existing cart line.
//
// @Summary      Set the quantity of a cart line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        goods_id  path  string             true  "Goods id"
// @Param        body      body  updateCartRequest  true  "New quantity"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/cart/{goods_id} [put]
func (h *CartHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.cart.UpdateCart(c.Request().Context(), userID, c.Param("goods_id"), req.Quantity)
	metrics.CartOperationsTotal.WithLabelValues("update", cartResult(err)).Inc()
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.InsufficientStockTotal.Inc()
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Remove deletes a cart line.
//
// @Summary      Remove goods from the cart
// @Tags         cart
// @Security     BearerAuth
// @Param        goods_id  path  string  true  "Goods id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/cart/{goods_id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	err = h.cart.RemoveFromCart(c.Request().Context(), userID, c.Param("goods_id"))
	metrics.CartOperationsTotal.WithLabelValues("remove", cartResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Get returns the cart lines in insertion order with goods resolved.
//
// @Summary      Get the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	lines, err := h.cart.GetCart(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCartResponse(lines))
}
