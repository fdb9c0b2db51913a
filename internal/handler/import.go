package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openbookmanager/openbookmanager/internal/model"
)

// Scan godoc
// @Summary scan an ISBN into the import queue
// @Description Normalizes the ISBN, rejects duplicates, looks up metadata
// @Description and stages the result for review.
// @Tags import
// @Accept json
// @Produce json
// @Param input body model.ScanRequest true "isbn"
// @Success 201 {object} model.ScannedBook
// @Security ApiKeyAuth
// @Router /scan [post]
func (h *Handler) Scan(c echo.Context) error {
	var req model.ScanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sb, err := h.importSvc.Scan(c.Request().Context(), req.ISBN)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, sb)
}

// GetImportQueue godoc
// @Summary import queue split into pending and skipped
// @Tags import
// @Produce json
// @Success 200 {object} service.ImportQueue
// @Security ApiKeyAuth
// @Router /import/queue [get]
func (h *Handler) GetImportQueue(c echo.Context) error {
	queue, err := h.importSvc.ListQueue(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, queue)
}

// ExportQueueJSON godoc
// @Summary download the entire import queue as JSON
// @Tags import
// @Produce json
// @Success 200 {array} model.ScannedBook
// @Security ApiKeyAuth
// @Router /import/queue/export.json [get]
func (h *Handler) ExportQueueJSON(c echo.Context) error {
	items, err := h.importSvc.ExportQueue(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="import-queue.json"`)
	return c.JSON(http.StatusOK, items)
}

// AddManual godoc
// @Summary queue a book by hand, without an ISBN
// @Tags import
// @Accept json
// @Produce json
// @Param input body model.ManualQueueRequest true "book"
// @Success 201 {object} model.ScannedBook
// @Security ApiKeyAuth
// @Router /import/queue [post]
func (h *Handler) AddManual(c echo.Context) error {
	var req model.ManualQueueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sb, err := h.importSvc.AddManual(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, sb)
}

// GetScanned godoc
// @Summary one staged scan
// @Tags import
// @Produce json
// @Param id path int true "queue entry id"
// @Success 200 {object} model.ScannedBook
// @Security ApiKeyAuth
// @Router /import/queue/{id} [get]
func (h *Handler) GetScanned(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sb, err := h.importSvc.GetScanned(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sb)
}

// UpdateScanned godoc
// @Summary edit a staged scan; the entry moves to reviewed
// @Tags import
// @Accept json
// @Produce json
// @Param id path int true "queue entry id"
// @Param input body model.UpdateScannedRequest true "edits"
// @Success 200 {object} model.ScannedBook
// @Security ApiKeyAuth
// @Router /import/queue/{id} [put]
func (h *Handler) UpdateScanned(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req model.UpdateScannedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sb, err := h.importSvc.UpdateScanned(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sb)
}

// Skip godoc
// @Summary park a queue entry without deleting it
// @Tags import
// @Param id path int true "queue entry id"
// @Success 204
// @Security ApiKeyAuth
// @Router /import/queue/{id}/skip [post]
func (h *Handler) Skip(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.importSvc.Skip(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Unskip godoc
// @Summary return a skipped entry to the pending queue
// @Tags import
// @Param id path int true "queue entry id"
// @Success 204
// @Security ApiKeyAuth
// @Router /import/queue/{id}/unskip [post]
func (h *Handler) Unskip(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.importSvc.Unskip(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteScanned godoc
// @Summary drop a queue entry and its downloaded cover
// @Tags import
// @Param id path int true "queue entry id"
// @Success 204
// @Security ApiKeyAuth
// @Router /import/queue/{id} [delete]
func (h *Handler) DeleteScanned(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.importSvc.DeleteScanned(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Promote godoc
// @Summary import a staged scan into the catalog
// @Description Allocates the next catalog number, creates the book, links
// @Description (or creates) the chosen authors and removes the queue entry,
// @Description all in one transaction.
// @Tags import
// @Accept json
// @Produce json
// @Param id path int true "queue entry id"
// @Param input body model.PromoteRequest true "final book data"
// @Success 201 {object} model.Book
// @Security ApiKeyAuth
// @Router /import/queue/{id}/process [post]
func (h *Handler) Promote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req model.PromoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.importSvc.Promote(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// ParseAuthors godoc
// @Summary split raw author text and match against existing authors
// @Tags import
// @Accept json
// @Produce json
// @Param input body model.ParseAuthorsRequest true "raw author string"
// @Success 200 {array} model.AuthorCandidate
// @Security ApiKeyAuth
// @Router /import/parse-authors [post]
func (h *Handler) ParseAuthors(c echo.Context) error {
	var req model.ParseAuthorsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	candidates, err := h.importSvc.ParseAndMatchAuthors(c.Request().Context(), req.AuthorsRaw)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, candidates)
}

// PreviewTag godoc
// @Summary the tag the next import into a category would get
// @Description Read-only: nothing is allocated until a book is created.
// @Tags import
// @Accept json
// @Produce json
// @Param input body model.PreviewTagRequest true "category"
// @Success 200 {object} model.PreviewTagResponse
// @Security ApiKeyAuth
// @Router /import/preview-tag [post]
func (h *Handler) PreviewTag(c echo.Context) error {
	var req model.PreviewTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	preview, err := h.importSvc.PreviewTag(c.Request().Context(), req.CategoryCode)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, preview)
}
