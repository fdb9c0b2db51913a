package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
)

func (r *repository) ListMainCategories(ctx context.Context) ([]model.MainCategory, error) {
	query, args, err := qb.Select("code", "title").
		From(mainCategoriesTableName).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.MainCategory
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateMainCategory(ctx context.Context, req model.MainCategoryRequest) (model.MainCategory, error) {
	query, args, err := qb.Insert(mainCategoriesTableName).
		Columns("code", "title").
		Values(req.Code, req.Title).
		Suffix("returning code, title").
		ToSql()
	if err != nil {
		return model.MainCategory{}, err
	}
	var mc model.MainCategory
	if err := r.db.GetContext(ctx, &mc, query, args...); err != nil {
		return model.MainCategory{}, err
	}
	return mc, nil
}

// UpdateMainCategory renames only; the code is immutable because it is
// baked into every tag issued under it.
func (r *repository) UpdateMainCategory(ctx context.Context, code, title string) (model.MainCategory, error) {
	query, args, err := qb.Update(mainCategoriesTableName).
		Set("title", title).
		Where(sq.Eq{"code": code}).
		Suffix("returning code, title").
		ToSql()
	if err != nil {
		return model.MainCategory{}, err
	}
	var mc model.MainCategory
	if err := r.db.GetContext(ctx, &mc, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.MainCategory{}, errs.ErrNotFound
		}
		return model.MainCategory{}, err
	}
	return mc, nil
}

func (r *repository) DeleteMainCategory(ctx context.Context, code string) error {
	countQuery, args, err := qb.Select("count(*)").
		From(categoriesTableName).
		Where(sq.Eq{"code_maincategory": code}).
		ToSql()
	if err != nil {
		return err
	}
	var subcats int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&subcats); err != nil {
		return err
	}
	if subcats > 0 {
		return errs.ErrMainCategoryHasSubcats
	}

	query, args, err := qb.Delete(mainCategoriesTableName).Where(sq.Eq{"code": code}).ToSql()
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

func (r *repository) ListCategories(ctx context.Context) ([]model.CategoryView, error) {
	query, args, err := qb.Select("c.code", "c.code_maincategory", "c.title", "mc.title as maincat_title").
		From(categoriesTableName + " c").
		Join(fmt.Sprintf("%s mc on mc.code = c.code_maincategory", mainCategoriesTableName)).
		OrderBy("mc.title", "c.title").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.CategoryView
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// GetCategory resolves a subcategory code to its (category, main category)
// pair, the way the import form selects categories by bare code.
func (r *repository) GetCategory(ctx context.Context, code string) (model.Category, error) {
	query, args, err := qb.Select("code", "code_maincategory", "title").
		From(categoriesTableName).
		Where(sq.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Category{}, err
	}
	var cat model.Category
	if err := r.db.GetContext(ctx, &cat, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, errs.ErrNotFound
		}
		return model.Category{}, err
	}
	return cat, nil
}

func (r *repository) CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error) {
	query, args, err := qb.Insert(categoriesTableName).
		Columns("code", "code_maincategory", "title").
		Values(req.Code, req.MainCategoryCode, req.Title).
		Suffix("returning code, code_maincategory, title").
		ToSql()
	if err != nil {
		return model.Category{}, err
	}
	var cat model.Category
	if err := r.db.GetContext(ctx, &cat, query, args...); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

func (r *repository) UpdateCategory(ctx context.Context, code, mainCategoryCode, title string) (model.Category, error) {
	query, args, err := qb.Update(categoriesTableName).
		Set("title", title).
		Where(sq.Eq{"code": code}).
		Where(sq.Eq{"code_maincategory": mainCategoryCode}).
		Suffix("returning code, code_maincategory, title").
		ToSql()
	if err != nil {
		return model.Category{}, err
	}
	var cat model.Category
	if err := r.db.GetContext(ctx, &cat, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, errs.ErrNotFound
		}
		return model.Category{}, err
	}
	return cat, nil
}

func (r *repository) DeleteCategory(ctx context.Context, code, mainCategoryCode string) error {
	countQuery, args, err := qb.Select("count(*)").
		From(booksTableName).
		Where(sq.Eq{"code_category": code}).
		Where(sq.Eq{"code_maincategory": mainCategoryCode}).
		ToSql()
	if err != nil {
		return err
	}
	var books int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&books); err != nil {
		return err
	}
	if books > 0 {
		return errs.ErrCategoryHasBooks
	}

	query, args, err := qb.Delete(categoriesTableName).
		Where(sq.Eq{"code": code}).
		Where(sq.Eq{"code_maincategory": mainCategoryCode}).
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
