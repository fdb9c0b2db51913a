package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
)

var scannedColumns = []string{
	"id", "isbn", "title", "subtitle", "authors_raw", "published_year",
	"publisher", "pages", "language", "description", "notes",
	"cover_url", "cover_local", "status", "imported_book_id", "scanned_at",
}

func (r *repository) ListScanned(ctx context.Context) ([]model.ScannedBook, error) {
	query, args, err := qb.Select(scannedColumns...).
		From(scannedTableName).
		OrderBy("scanned_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.ScannedBook
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetScanned(ctx context.Context, id int) (model.ScannedBook, error) {
	return r.getScanned(ctx, sq.Eq{"id": id})
}

func (r *repository) GetScannedByISBN(ctx context.Context, isbn string) (model.ScannedBook, error) {
	return r.getScanned(ctx, sq.Eq{"isbn": isbn})
}

func (r *repository) getScanned(ctx context.Context, where sq.Eq) (model.ScannedBook, error) {
	query, args, err := qb.Select(scannedColumns...).
		From(scannedTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.ScannedBook{}, err
	}
	var sb model.ScannedBook
	if err := r.db.GetContext(ctx, &sb, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ScannedBook{}, errs.ErrNotFound
		}
		return model.ScannedBook{}, err
	}
	return sb, nil
}

func (r *repository) CreateScanned(ctx context.Context, sb model.ScannedBook) (model.ScannedBook, error) {
	query, args, err := qb.Insert(scannedTableName).
		Columns("isbn", "title", "subtitle", "authors_raw", "published_year",
			"publisher", "pages", "language", "description", "notes",
			"cover_url", "cover_local", "status").
		Values(sb.ISBN, sb.Title, sb.Subtitle, sb.AuthorsRaw, sb.PublishedYear,
			sb.Publisher, sb.Pages, sb.Language, sb.Description, sb.Notes,
			sb.CoverURL, sb.CoverLocal, sb.Status).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.ScannedBook{}, err
	}

	var created model.ScannedBook
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.ScannedBook{}, errs.ErrAlreadyScanned
		}
		r.log.Error("CreateScanned", zap.String("q", query), zap.Any("args", args))
		return model.ScannedBook{}, err
	}
	return created, nil
}

// UpdateScanned applies review edits; an edited record moves to the
// reviewed state.
func (r *repository) UpdateScanned(ctx context.Context, id int, req model.UpdateScannedRequest) (model.ScannedBook, error) {
	query, args, err := qb.Update(scannedTableName).
		Set("status", model.ScanStatusReviewed).
		Set("title", req.Title).
		Set("subtitle", req.Subtitle).
		Set("authors_raw", req.AuthorsRaw).
		Set("published_year", req.PublishedYear).
		Set("publisher", req.Publisher).
		Set("pages", req.Pages).
		Set("language", req.Language).
		Set("notes", req.Notes).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.ScannedBook{}, err
	}
	var sb model.ScannedBook
	if err := r.db.GetContext(ctx, &sb, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ScannedBook{}, errs.ErrNotFound
		}
		return model.ScannedBook{}, err
	}
	return sb, nil
}

func (r *repository) SetScannedStatus(ctx context.Context, id int, status model.ScanStatus) error {
	query, args, err := qb.Update(scannedTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteScanned(ctx context.Context, id int) error {
	query, args, err := qb.Delete(scannedTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// PromoteScanned commits a staged scan into the catalog in one
// transaction: allocate the catalog number, insert the book, resolve or
// create every selected author, link them, and drop the staging row.
// Any failure rolls the whole thing back, leaving the scan untouched.
func (r *repository) PromoteScanned(ctx context.Context, scannedID int, req model.PromoteRequest, mainCategoryCode string, cover *string) (model.Book, error) {
	var book model.Book
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		number, err := allocateNext(ctx, tx, req.CategoryCode, mainCategoryCode)
		if err != nil {
			return err
		}

		book, err = insertBook(ctx, tx, bookInsert{
			Title:            req.Title,
			Subtitle:         req.Subtitle,
			Year:             req.Year,
			ISBN:             req.ISBN,
			Publisher:        req.Publisher,
			Language:         req.Language,
			Notes:            req.Notes,
			Cover:            cover,
			CategoryCode:     req.CategoryCode,
			MainCategoryCode: mainCategoryCode,
			Number:           number,
		})
		if err != nil {
			return err
		}

		authorIDs := make([]int, 0, len(req.Authors))
		for _, sel := range req.Authors {
			if sel.ExistingID != nil {
				authorIDs = append(authorIDs, *sel.ExistingID)
				continue
			}
			id, err := insertAuthor(ctx, tx, sel.FirstName, sel.LastName)
			if err != nil {
				return err
			}
			authorIDs = append(authorIDs, id)
		}

		if err := linkAuthors(ctx, tx, book.ID, authorIDs); err != nil {
			return err
		}

		delQuery, args, err := qb.Delete(scannedTableName).Where(sq.Eq{"id": scannedID}).ToSql()
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, delQuery, args...)
		if err != nil {
			return errors.Wrap(err, "delete scanned")
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
	if err != nil {
		r.log.Error("PromoteScanned", zap.Int("scannedID", scannedID), zap.Error(err))
		return model.Book{}, err
	}
	return book, nil
}
