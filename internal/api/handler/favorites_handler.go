package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babies-shop/commerce-api/internal/core/ports"
)

// FavoritesHandler handles the per-user favorites endpoints.
type FavoritesHandler struct {
	favorites ports.FavoritesService
}

func NewFavoritesHandler(favorites ports.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites}
}

// Add marks a goods item as favorite.
//
// @Summary      Add goods to favorites
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  addFavoriteRequest  true  "Goods id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/favorites [post]
func (h *FavoritesHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.favorites.AddFavorite(c.Request().Context(), userID, req.GoodsID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Remove unmarks a favorite.
//
// @Summary      Remove goods from favorites
// @Tags         favorites
// @Security     BearerAuth
// @Param        goods_id  path  string  true  "Goods id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/favorites/{goods_id} [delete]
func (h *FavoritesHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.favorites.RemoveFavorite(c.Request().Context(), userID, c.Param("goods_id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Get returns the favorites in insertion order with goods resolved.
//
// @Summary      Get the favorites list
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  favoritesResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/favorites [get]
func (h *FavoritesHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	favs, err := h.favorites.GetFavorites(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toFavoritesResponse(favs))
}
