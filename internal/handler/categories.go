package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openbookmanager/openbookmanager/internal/model"
)

// GetMainCategories godoc
// @Summary list main categories
// @Tags categories
// @Produce json
// @Success 200 {array} model.MainCategory
// @Security ApiKeyAuth
// @Router /categories/main [get]
func (h *Handler) GetMainCategories(c echo.Context) error {
	cats, err := h.catalogSvc.ListMainCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cats)
}

// CreateMainCategory godoc
// @Summary create a main category
// @Tags categories
// @Accept json
// @Produce json
// @Param input body model.MainCategoryRequest true "main category"
// @Success 201 {object} model.MainCategory
// @Security ApiKeyAuth
// @Router /categories/main [post]
func (h *Handler) CreateMainCategory(c echo.Context) error {
	var req model.MainCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	cat, err := h.catalogSvc.CreateMainCategory(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cat)
}

// UpdateMainCategory godoc
// @Summary rename a main category; the code itself is immutable
// @Tags categories
// @Accept json
// @Produce json
// @Param code path string true "main category code"
// @Success 200 {object} model.MainCategory
// @Security ApiKeyAuth
// @Router /categories/main/{code} [put]
func (h *Handler) UpdateMainCategory(c echo.Context) error {
	var req struct {
		Title string `json:"title" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	cat, err := h.catalogSvc.UpdateMainCategory(c.Request().Context(), c.Param("code"), req.Title)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cat)
}

// DeleteMainCategory godoc
// @Summary delete a main category with no subcategories
// @Tags categories
// @Param code path string true "main category code"
// @Success 204
// @Security ApiKeyAuth
// @Router /categories/main/{code} [delete]
func (h *Handler) DeleteMainCategory(c echo.Context) error {
	if err := h.catalogSvc.DeleteMainCategory(c.Request().Context(), c.Param("code")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetCategories godoc
// @Summary list subcategories with their main category titles
// @Tags categories
// @Produce json
// @Success 200 {array} model.CategoryView
// @Security ApiKeyAuth
// @Router /categories [get]
func (h *Handler) GetCategories(c echo.Context) error {
	cats, err := h.catalogSvc.ListCategories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cats)
}

// CreateCategory godoc
// @Summary create a subcategory under a main category
// @Tags categories
// @Accept json
// @Produce json
// @Param input body model.CategoryRequest true "category"
// @Success 201 {object} model.Category
// @Security ApiKeyAuth
// @Router /categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req model.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	cat, err := h.catalogSvc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, cat)
}

// UpdateCategory godoc
// @Summary rename a subcategory; codes are immutable
// @Tags categories
// @Accept json
// @Produce json
// @Param main path string true "main category code"
// @Param code path string true "subcategory code"
// @Success 200 {object} model.Category
// @Security ApiKeyAuth
// @Router /categories/{main}/{code} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	var req struct {
		Title string `json:"title" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	cat, err := h.catalogSvc.UpdateCategory(c.Request().Context(), c.Param("code"), c.Param("main"), req.Title)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cat)
}

// DeleteCategory godoc
// @Summary delete a subcategory that has no books
// @Tags categories
// @Param main path string true "main category code"
// @Param code path string true "subcategory code"
// @Success 204
// @Security ApiKeyAuth
// @Router /categories/{main}/{code} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	if err := h.catalogSvc.DeleteCategory(c.Request().Context(), c.Param("code"), c.Param("main")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
