package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openbookmanager/openbookmanager/internal/model"
)

// GetWishlist godoc
// @Summary list wishlist entries
// @Tags wishlist
// @Produce json
// @Success 200 {array} model.WishlistItem
// @Security ApiKeyAuth
// @Router /wishlist [get]
func (h *Handler) GetWishlist(c echo.Context) error {
	items, err := h.catalogSvc.ListWishlist(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateWishlist godoc
// @Summary add a wishlist entry
// @Tags wishlist
// @Accept json
// @Produce json
// @Param input body model.WishlistRequest true "entry"
// @Success 201 {object} model.WishlistItem
// @Security ApiKeyAuth
// @Router /wishlist [post]
func (h *Handler) CreateWishlist(c echo.Context) error {
	var req model.WishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	item, err := h.catalogSvc.CreateWishlist(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateWishlist godoc
// @Summary update a wishlist entry
// @Tags wishlist
// @Accept json
// @Produce json
// @Param id path int true "entry id"
// @Param input body model.WishlistRequest true "entry"
// @Success 200 {object} model.WishlistItem
// @Security ApiKeyAuth
// @Router /wishlist/{id} [put]
func (h *Handler) UpdateWishlist(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req model.WishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	item, err := h.catalogSvc.UpdateWishlist(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteWishlist godoc
// @Summary delete a wishlist entry
// @Tags wishlist
// @Param id path int true "entry id"
// @Success 204
// @Security ApiKeyAuth
// @Router /wishlist/{id} [delete]
func (h *Handler) DeleteWishlist(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.catalogSvc.DeleteWishlist(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
