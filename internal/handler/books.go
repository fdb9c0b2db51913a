package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openbookmanager/openbookmanager/internal/model"
)

// GetBooks godoc
// @Summary list books
// @Tags books
// @Produce json
// @Param search query string false "match in title, subtitle, isbn or author"
// @Param category query string false "subcategory code"
// @Param mainCategory query string false "main category code"
// @Param sortBy query string false "title|title_desc|year|year_desc|newest|tag"
// @Param page query int false "page"
// @Param size query int false "size"
// @Success 200 {object} model.ListBooks
// @Security ApiKeyAuth
// @Router /books [get]
func (h *Handler) GetBooks(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	filter := model.BookFilter{
		Search:           c.QueryParam("search"),
		CategoryCode:     c.QueryParam("category"),
		MainCategoryCode: c.QueryParam("mainCategory"),
		SortBy:           c.QueryParam("sortBy"),
		Page:             page,
		Size:             size,
	}
	list, err := h.catalogSvc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetBook godoc
// @Summary book details with category titles and authors
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.BookDetails
// @Security ApiKeyAuth
// @Router /books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// CreateBook godoc
// @Summary add a book directly to the catalog
// @Tags books
// @Accept json
// @Produce json
// @Param input body model.CreateBookRequest true "book"
// @Success 201 {object} model.Book
// @Security ApiKeyAuth
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// UpdateBook godoc
// @Summary update a book, renumbering it if the category changed
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "book id"
// @Param input body model.UpdateBookRequest true "book"
// @Success 200 {object} model.Book
// @Security ApiKeyAuth
// @Router /books/{id} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.catalogSvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook godoc
// @Summary remove a book; its catalog number is not reused
// @Tags books
// @Param id path int true "book id"
// @Success 204
// @Security ApiKeyAuth
// @Router /books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
