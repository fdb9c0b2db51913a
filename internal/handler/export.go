package handler

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ExportBooksCSV godoc
// @Summary download the catalog as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {string} string
// @Security ApiKeyAuth
// @Router /export/books.csv [get]
func (h *Handler) ExportBooksCSV(c echo.Context) error {
	return h.writeCSV(c, "books.csv", h.exportSvc.BooksCSV)
}

// ExportAuthorsCSV godoc
// @Summary download all authors as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {string} string
// @Security ApiKeyAuth
// @Router /export/authors.csv [get]
func (h *Handler) ExportAuthorsCSV(c echo.Context) error {
	return h.writeCSV(c, "authors.csv", h.exportSvc.AuthorsCSV)
}

// ExportCategoriesCSV godoc
// @Summary download the category tree as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {string} string
// @Security ApiKeyAuth
// @Router /export/categories.csv [get]
func (h *Handler) ExportCategoriesCSV(c echo.Context) error {
	return h.writeCSV(c, "categories.csv", h.exportSvc.CategoriesCSV)
}

// ExportWishlistCSV godoc
// @Summary download the wishlist as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {string} string
// @Security ApiKeyAuth
// @Router /export/wishlist.csv [get]
func (h *Handler) ExportWishlistCSV(c echo.Context) error {
	return h.writeCSV(c, "wishlist.csv", h.exportSvc.WishlistCSV)
}

func (h *Handler) writeCSV(c echo.Context, filename string, load func(context.Context) ([][]string, error)) error {
	rows, err := load(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return nil
}

// ExportBackupJSON godoc
// @Summary full-database JSON backup
// @Tags export
// @Produce json
// @Success 200 {object} model.Backup
// @Security ApiKeyAuth
// @Router /export/backup.json [get]
func (h *Handler) ExportBackupJSON(c echo.Context) error {
	backup, err := h.exportSvc.Backup(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="backup.json"`)
	return c.JSON(http.StatusOK, backup)
}
