package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
)

// NormalizeISBN strips everything but digits and the X check character
// and accepts only ISBN-10 / ISBN-13 lengths.
func NormalizeISBN(raw string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= '0' && r <= '9') || r == 'X' {
			b.WriteRune(r)
		}
	}
	isbn := b.String()
	if len(isbn) != 10 && len(isbn) != 13 {
		return "", errs.ErrInvalidISBN
	}
	return isbn, nil
}

// Scan runs the ISBN intake: normalize, reject duplicates, fetch
// metadata, grab a cover best-effort, and stage a pending record.
func (s *Service) Scan(ctx context.Context, rawISBN string) (model.ScannedBook, error) {
	isbn, err := NormalizeISBN(rawISBN)
	if err != nil {
		return model.ScannedBook{}, err
	}

	if _, err := s.repo.GetScannedByISBN(ctx, isbn); err == nil {
		return model.ScannedBook{}, errs.ErrAlreadyScanned
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.ScannedBook{}, err
	}

	if book, err := s.repo.GetBookByISBN(ctx, isbn); err == nil {
		return model.ScannedBook{}, &errs.DuplicateBookError{BookID: book.ID, Title: book.Title}
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.ScannedBook{}, err
	}

	var meta model.BookMetadata
	if err := s.breaker.Call(func() error {
		var ferr error
		meta, ferr = s.metadata.FetchByISBN(ctx, isbn)
		return ferr
	}); err != nil {
		// breaker-open and provider failures alike degrade to unavailable
		return model.ScannedBook{}, errs.ErrMetadataUnavailable
	}

	coverURL, coverLocal := s.fetchCover(ctx, isbn, meta.CoverURL)

	sb := model.ScannedBook{
		ISBN:          isbn,
		Title:         meta.Title,
		Subtitle:      meta.Subtitle,
		PublishedYear: meta.PublishedYear,
		Publisher:     meta.Publisher,
		Pages:         meta.Pages,
		Language:      meta.Language,
		Description:   meta.Description,
		CoverURL:      coverURL,
		CoverLocal:    coverLocal,
		Status:        model.ScanStatusPending,
	}
	if len(meta.Authors) > 0 {
		raw := strings.Join(meta.Authors, ", ")
		sb.AuthorsRaw = &raw
	}

	return s.repo.CreateScanned(ctx, sb)
}

// fetchCover prefers the Open Library catalog, falls back to the
// provider's image, then none. Download failures leave only the remote
// URL; nothing here is fatal.
func (s *Service) fetchCover(ctx context.Context, isbn string, providerURL *string) (coverURL, coverLocal *string) {
	candidate := ""
	if u, err := s.coverSource.ProbeCover(ctx, isbn); err == nil {
		candidate = u
	} else if providerURL != nil {
		candidate = *providerURL
	}
	if candidate == "" {
		return nil, nil
	}

	name, err := s.coverStore.Download(ctx, candidate, isbn)
	if err != nil {
		s.log.Warn("cover download failed", zap.String("isbn", isbn), zap.Error(err))
		return &candidate, nil
	}
	return &candidate, &name
}

// AddManual stages a book that has no scannable ISBN. The synthetic
// marker keeps the staging unique constraint satisfied.
func (s *Service) AddManual(ctx context.Context, req model.ManualQueueRequest) (model.ScannedBook, error) {
	raw := strings.TrimSpace(req.AuthorsRaw)
	sb := model.ScannedBook{
		ISBN:          "MANUAL-" + uuid.NewString(),
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		AuthorsRaw:    &raw,
		PublishedYear: req.PublishedYear,
		Publisher:     req.Publisher,
		Pages:         req.Pages,
		Language:      req.Language,
		Notes:         req.Notes,
		Status:        model.ScanStatusPending,
	}
	return s.repo.CreateScanned(ctx, sb)
}

// ImportQueue buckets staged records the way the review screen shows
// them: workable (pending or reviewed) and set-aside.
type ImportQueue struct {
	Pending []model.ScannedBook `json:"pending"`
	Skipped []model.ScannedBook `json:"skipped"`
}

func (s *Service) ListQueue(ctx context.Context) (ImportQueue, error) {
	items, err := s.repo.ListScanned(ctx)
	if err != nil {
		return ImportQueue{}, err
	}
	queue := ImportQueue{
		Pending: make([]model.ScannedBook, 0, len(items)),
		Skipped: make([]model.ScannedBook, 0),
	}
	for _, it := range items {
		if it.Status == model.ScanStatusSkipped {
			queue.Skipped = append(queue.Skipped, it)
		} else {
			queue.Pending = append(queue.Pending, it)
		}
	}
	return queue, nil
}

func (s *Service) GetScanned(ctx context.Context, id int) (model.ScannedBook, error) {
	return s.repo.GetScanned(ctx, id)
}

// ExportQueue returns every staging record, skipped ones included, for
// the queue download.
func (s *Service) ExportQueue(ctx context.Context) ([]model.ScannedBook, error) {
	return s.repo.ListScanned(ctx)
}

func (s *Service) UpdateScanned(ctx context.Context, id int, req model.UpdateScannedRequest) (model.ScannedBook, error) {
	return s.repo.UpdateScanned(ctx, id, req)
}

// Skip and Unskip toggle a record between the workable and set-aside
// buckets. Repeating either is a no-op.
func (s *Service) Skip(ctx context.Context, id int) error {
	return s.repo.SetScannedStatus(ctx, id, model.ScanStatusSkipped)
}

func (s *Service) Unskip(ctx context.Context, id int) error {
	return s.repo.SetScannedStatus(ctx, id, model.ScanStatusPending)
}

// DeleteScanned drops the staging row and best-effort removes its
// downloaded cover.
func (s *Service) DeleteScanned(ctx context.Context, id int) error {
	sb, err := s.repo.GetScanned(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteScanned(ctx, id); err != nil {
		return err
	}
	if sb.CoverLocal != nil {
		s.coverStore.Remove(*sb.CoverLocal)
	}
	return nil
}

// Promote commits a staged record into the catalog. Validation happens
// before any write; the repository transaction makes the rest
// all-or-nothing.
func (s *Service) Promote(ctx context.Context, scannedID int, req model.PromoteRequest) (model.Book, error) {
	if strings.TrimSpace(req.Title) == "" {
		return model.Book{}, errs.Validation("title", "is required")
	}
	if req.CategoryCode == "" {
		return model.Book{}, errs.Validation("categoryCode", "is required")
	}
	if len(req.Authors) == 0 {
		return model.Book{}, errs.Validation("authors", "at least one author is required")
	}
	for _, sel := range req.Authors {
		hasName := strings.TrimSpace(sel.LastName) != ""
		if sel.ExistingID == nil && !hasName {
			return model.Book{}, errs.Validation("authors", "author reference is incomplete")
		}
		if sel.ExistingID != nil && hasName {
			return model.Book{}, errs.Validation("authors", "author reference is ambiguous")
		}
	}

	cat, err := s.resolveCategory(ctx, req.CategoryCode)
	if err != nil {
		return model.Book{}, err
	}

	sb, err := s.repo.GetScanned(ctx, scannedID)
	if err != nil {
		return model.Book{}, err
	}

	// prefer the locally stored cover over the remote URL
	cover := sb.CoverURL
	if sb.CoverLocal != nil {
		cover = sb.CoverLocal
	}

	return s.repo.PromoteScanned(ctx, scannedID, req, cat.MainCategoryCode, cover)
}

// PreviewTag shows the tag the next book filed under the category would
// receive. The preview races with real allocations and may go stale.
func (s *Service) PreviewTag(ctx context.Context, categoryCode string) (model.PreviewTagResponse, error) {
	cat, err := s.resolveCategory(ctx, categoryCode)
	if err != nil {
		return model.PreviewTagResponse{}, err
	}
	next, err := s.repo.PeekNextNumber(ctx, cat.Code, cat.MainCategoryCode)
	if err != nil {
		return model.PreviewTagResponse{}, err
	}
	return model.PreviewTagResponse{
		Tag:        model.FormatTag(cat.MainCategoryCode, cat.Code, next),
		NextNumber: next,
	}, nil
}
