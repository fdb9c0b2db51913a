package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
)

func (r *repository) ListWishlist(ctx context.Context) ([]model.WishlistItem, error) {
	query, args, err := qb.Select("id", "title", "author_name", "notes", "created_at").
		From(wishlistTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.WishlistItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateWishlist(ctx context.Context, req model.WishlistRequest) (model.WishlistItem, error) {
	query, args, err := qb.Insert(wishlistTableName).
		Columns("title", "author_name", "notes").
		Values(req.Title, req.AuthorName, req.Notes).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.WishlistItem{}, err
	}
	var item model.WishlistItem
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		return model.WishlistItem{}, err
	}
	return item, nil
}

func (r *repository) UpdateWishlist(ctx context.Context, id int, req model.WishlistRequest) (model.WishlistItem, error) {
	query, args, err := qb.Update(wishlistTableName).
		Set("title", req.Title).
		Set("author_name", req.AuthorName).
		Set("notes", req.Notes).
		Where(sq.Eq{"id": id}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.WishlistItem{}, err
	}
	var item model.WishlistItem
	if err := r.db.GetContext(ctx, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WishlistItem{}, errs.ErrNotFound
		}
		return model.WishlistItem{}, err
	}
	return item, nil
}

func (r *repository) DeleteWishlist(ctx context.Context, id int) error {
	query, args, err := qb.Delete(wishlistTableName).Where(sq.Eq{"id": id}).ToSql()
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
