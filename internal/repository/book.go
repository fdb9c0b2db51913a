package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
)

var bookColumns = []string{
	"b.id", "b.title", "b.subtitle", "b.year", "b.isbn", "b.publisher",
	"b.language", "b.notes", "b.cover_image", "b.code_category",
	"b.code_maincategory", "b.number_in_category", "b.created_at",
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	cols := append(append([]string{}, bookColumns...),
		`coalesce(string_agg(a.last_name || ', ' || a.first_name, '; ' order by a.last_name), '') as authors`)

	q := qb.Select(cols...).
		From(booksTableName + " b").
		LeftJoin(fmt.Sprintf("%s ba on ba.book_id = b.id", bookAuthorTableName)).
		LeftJoin(fmt.Sprintf("%s a on a.id = ba.author_id", authorsTableName)).
		GroupBy("b.id").
		OrderBy(BookSortExpr(filter.SortBy))

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.subtitle": pattern},
			sq.ILike{"b.isbn": pattern},
			// author match goes through exists so the aggregate above
			// still sees every author of a matching book
			sq.Expr(fmt.Sprintf(
				`exists (select 1 from %s ba2 join %s a2 on a2.id = ba2.author_id
					where ba2.book_id = b.id and (a2.first_name ilike ? or a2.last_name ilike ?))`,
				bookAuthorTableName, authorsTableName), pattern, pattern),
		})
	}
	if filter.CategoryCode != "" {
		q = q.Where(sq.Eq{"b.code_category": filter.CategoryCode})
	}
	if filter.MainCategoryCode != "" {
		q = q.Where(sq.Eq{"b.code_maincategory": filter.MainCategoryCode})
	}
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var items []model.BookListItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListBooks{}, err
	}
	for i := range items {
		items[i].Tag = items[i].Book.Tag()
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: len(items),
		},
		Items: items,
	}, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.BookDetails, error) {
	cols := append(append([]string{}, bookColumns...),
		"c.title as category_title", "mc.title as maincat_title")

	query, args, err := qb.Select(cols...).
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s c on c.code = b.code_category and c.code_maincategory = b.code_maincategory", categoriesTableName)).
		Join(fmt.Sprintf("%s mc on mc.code = b.code_maincategory", mainCategoriesTableName)).
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return model.BookDetails{}, err
	}

	var details model.BookDetails
	if err := r.db.GetContext(ctx, &details, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookDetails{}, errs.ErrNotFound
		}
		return model.BookDetails{}, err
	}
	details.Tag = details.Book.Tag()

	authorsQuery, args, err := qb.Select("a.id", "a.first_name", "a.last_name").
		From(authorsTableName + " a").
		Join(fmt.Sprintf("%s ba on ba.author_id = a.id", bookAuthorTableName)).
		Where(sq.Eq{"ba.book_id": id}).
		OrderBy("a.last_name", "a.first_name").
		ToSql()
	if err != nil {
		return model.BookDetails{}, err
	}
	if err := r.db.SelectContext(ctx, &details.Authors, authorsQuery, args...); err != nil {
		return model.BookDetails{}, err
	}

	return details, nil
}

func (r *repository) GetBookByISBN(ctx context.Context, isbn string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName + " b").
		Where(sq.Eq{"b.isbn": isbn}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

type bookInsert struct {
	Title            string
	Subtitle         *string
	Year             *int
	ISBN             *string
	Publisher        *string
	Language         *string
	Notes            *string
	Cover            *string
	CategoryCode     string
	MainCategoryCode string
	Number           int
}

func insertBook(ctx context.Context, tx *sqlx.Tx, in bookInsert) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "subtitle", "year", "isbn", "publisher", "language",
			"notes", "cover_image", "code_category", "code_maincategory", "number_in_category").
		Values(in.Title, in.Subtitle, in.Year, in.ISBN, in.Publisher, in.Language,
			in.Notes, in.Cover, in.CategoryCode, in.MainCategoryCode, in.Number).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := tx.GetContext(ctx, &book, query, args...); err != nil {
		return model.Book{}, errors.Wrap(err, "insert book")
	}
	return book, nil
}

func linkAuthors(ctx context.Context, tx *sqlx.Tx, bookID int, authorIDs []int) error {
	ins := qb.Insert(bookAuthorTableName).Columns("book_id", "author_id")
	for _, authorID := range authorIDs {
		ins = ins.Values(bookID, authorID)
	}
	query, args, err := ins.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "link authors")
	}
	return nil
}

// CreateBook files a new book manually: the catalog number is allocated
// from the category's sequence inside the same transaction as the insert.
func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest, mainCategoryCode string) (model.Book, error) {
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
			Cover:            req.CoverImage,
			CategoryCode:     req.CategoryCode,
			MainCategoryCode: mainCategoryCode,
			Number:           number,
		})
		if err != nil {
			return err
		}
		return linkAuthors(ctx, tx, book.ID, req.AuthorIDs)
	})
	if err != nil {
		r.log.Error("CreateBook", zap.Error(err))
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook rewrites a book. When the category pair changes, the old
// number is abandoned and a fresh one is allocated from the new pair's
// sequence; numbers are never recomputed otherwise.
func (r *repository) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest, mainCategoryCode string) (model.Book, error) {
	var book model.Book
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var current struct {
			CategoryCode     string `db:"code_category"`
			MainCategoryCode string `db:"code_maincategory"`
			Number           int    `db:"number_in_category"`
		}
		curQuery, args, err := qb.Select("code_category", "code_maincategory", "number_in_category").
			From(booksTableName).
			Where(sq.Eq{"id": id}).
			Suffix("for update").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &current, curQuery, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}

		number := current.Number
		if current.CategoryCode != req.CategoryCode || current.MainCategoryCode != mainCategoryCode {
			if number, err = allocateNext(ctx, tx, req.CategoryCode, mainCategoryCode); err != nil {
				return err
			}
		}

		query, args, err := qb.Update(booksTableName).
			Set("title", req.Title).
			Set("subtitle", req.Subtitle).
			Set("year", req.Year).
			Set("isbn", req.ISBN).
			Set("publisher", req.Publisher).
			Set("language", req.Language).
			Set("notes", req.Notes).
			Set("cover_image", req.CoverImage).
			Set("code_category", req.CategoryCode).
			Set("code_maincategory", mainCategoryCode).
			Set("number_in_category", number).
			Where(sq.Eq{"id": id}).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &book, query, args...); err != nil {
			return errors.Wrap(err, "update book")
		}

		delQuery, args, err := qb.Delete(bookAuthorTableName).Where(sq.Eq{"book_id": id}).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, delQuery, args...); err != nil {
			return errors.Wrap(err, "unlink authors")
		}
		return linkAuthors(ctx, tx, id, req.AuthorIDs)
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, id int) error {
	query, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
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
