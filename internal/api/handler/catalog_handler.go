package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babies-shop/commerce-api/internal/api/metrics"
	"github.com/babies-shop/commerce-api/internal/core/ports"
)

// CatalogHandler handles catalog reads (any authenticated user) and catalog
// mutations (admin-gated in the router).
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) bindGoods(c echo.Context) (*goodsRequest, error) {
	var req goodsRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return &req, nil
}

// Create adds a goods item to the catalog.
//
// @Summary      Create a goods item
// @Tags         goods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      goodsRequest  true  "Goods details"
// @Success      201   {object}  goodsResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/goods [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	req, err := h.bindGoods(c)
	if err != nil {
		return err
	}

	goods, err := h.catalog.CreateGoods(c.Request().Context(), ports.GoodsInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}

	metrics.GoodsMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toGoodsResponse(goods))
}

// Get returns a single goods item.
//
// @Summary      Get a goods item by id
// @Tags         goods
// @Produce      json
// @Param        id   path      string  true  "Goods id"
// @Success      200  {object}  goodsResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/goods/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	goods, err := h.catalog.GetGoods(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGoodsResponse(goods))
}

// List returns the whole catalog.
//
// @Summary      List all goods
// @Tags         goods
// @Produce      json
// @Success      200  {object}  listGoodsResponse
// @Router       /v1/goods [get]
func (h *CatalogHandler) List(c echo.Context) error {
	goods, err := h.catalog.ListGoods(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]goodsResponse, 0, len(goods))
	for _, g := range goods {
		out = append(out, toGoodsResponse(g))
	}
	return c.JSON(http.StatusOK, listGoodsResponse{Goods: out})
}

// Update replaces the writable fields of a goods item.
//
// @Summary      Update a goods item
// @Tags         goods
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Goods id"
// @Param        body  body      goodsRequest  true  "Goods details"
// @Success      200   {object}  goodsResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/goods/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	req, err := h.bindGoods(c)
	if err != nil {
		return err
	}

	goods, err := h.catalog.UpdateGoods(c.Request().Context(), c.Param("id"), ports.GoodsInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}

	metrics.GoodsMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toGoodsResponse(goods))
}

// Delete removes a goods item. Cart lines and favorites referencing it are
// left dangling and flagged on read.
//
// @Summary      Delete a goods item
// @Tags         goods
// @Security     BearerAuth
// @Param        id  path  string  true  "Goods id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/goods/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.catalog.DeleteGoods(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.GoodsMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
