package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openbookmanager/openbookmanager/internal/model"
)

// GetAuthors godoc
// @Summary list authors ordered by last name
// @Tags authors
// @Produce json
// @Success 200 {array} model.Author
// @Security ApiKeyAuth
// @Router /authors [get]
func (h *Handler) GetAuthors(c echo.Context) error {
	authors, err := h.catalogSvc.ListAuthors(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, authors)
}

// CreateAuthor godoc
// @Summary create an author; duplicate names (case-insensitive) conflict
// @Tags authors
// @Accept json
// @Produce json
// @Param input body model.AuthorRequest true "author"
// @Success 201 {object} model.Author
// @Security ApiKeyAuth
// @Router /authors [post]
func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	author, err := h.catalogSvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, author)
}

// UpdateAuthor godoc
// @Summary rename an author
// @Tags authors
// @Accept json
// @Produce json
// @Param id path int true "author id"
// @Param input body model.AuthorRequest true "author"
// @Success 200 {object} model.Author
// @Security ApiKeyAuth
// @Router /authors/{id} [put]
func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req model.AuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	author, err := h.catalogSvc.UpdateAuthor(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

// DeleteAuthor godoc
// @Summary delete an author not linked to any book
// @Tags authors
// @Param id path int true "author id"
// @Success 204
// @Security ApiKeyAuth
// @Router /authors/{id} [delete]
func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.catalogSvc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
