package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
)

func (r *repository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	query, args, err := qb.Select("id", "first_name", "last_name").
		From(authorsTableName).
		OrderBy("last_name", "first_name").
		ToSql()
	if err != nil {
		return nil, err
	}
	var authors []model.Author
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *repository) GetAuthor(ctx context.Context, id int) (model.Author, error) {
	query, args, err := qb.Select("id", "first_name", "last_name").
		From(authorsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errs.ErrNotFound
		}
		return model.Author{}, err
	}
	return author, nil
}

// FindAuthorByName matches case-insensitively on both name fields. This is
// the dedup heuristic used by the import pipeline, not a store constraint.
func (r *repository) FindAuthorByName(ctx context.Context, firstName, lastName string) (model.Author, error) {
	query, args, err := qb.Select("id", "first_name", "last_name").
		From(authorsTableName).
		Where("lower(first_name) = lower(?)", firstName).
		Where("lower(last_name) = lower(?)", lastName).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errs.ErrNotFound
		}
		return model.Author{}, err
	}
	return author, nil
}

func insertAuthor(ctx context.Context, tx *sqlx.Tx, firstName, lastName string) (int, error) {
	query, args, err := qb.Insert(authorsTableName).
		Columns("first_name", "last_name").
		Values(firstName, lastName).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, errs.ErrAuthorExists
		}
		return 0, errors.Wrap(err, "insert author")
	}
	return id, nil
}

func (r *repository) CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error) {
	query, args, err := qb.Insert(authorsTableName).
		Columns("first_name", "last_name").
		Values(req.FirstName, req.LastName).
		Suffix("returning id, first_name, last_name").
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Author{}, errs.ErrAuthorExists
		}
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, id int, req model.AuthorRequest) (model.Author, error) {
	query, args, err := qb.Update(authorsTableName).
		Set("first_name", req.FirstName).
		Set("last_name", req.LastName).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, first_name, last_name").
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Author{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Author{}, errs.ErrAuthorExists
		}
		return model.Author{}, err
	}
	return author, nil
}

func (r *repository) DeleteAuthor(ctx context.Context, id int) error {
	countQuery, args, err := qb.Select("count(*)").
		From(bookAuthorTableName).
		Where(sq.Eq{"author_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	var linked int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&linked); err != nil {
		return err
	}
	if linked > 0 {
		return errs.ErrAuthorInUse
	}

	query, args, err := qb.Delete(authorsTableName).Where(sq.Eq{"id": id}).ToSql()
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
