package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// allocateNextQuery hands out the next catalog number for a category pair.
// The upsert-increment is a single statement, so concurrent allocations for
// the same pair serialize on that counter row only. Numbers are never
// reused: deletions leave gaps, tags stay unique.
const allocateNextQuery = `
insert into category_sequences (code_category, code_maincategory, next_number)
values ($1, $2, 1)
on conflict (code_category, code_maincategory)
    do update set next_number = category_sequences.next_number + 1
returning next_number`

// allocateNext must run inside the transaction of the book insert it
// numbers, so a rollback also rolls the allocation back.
func allocateNext(ctx context.Context, tx *sqlx.Tx, categoryCode, mainCategoryCode string) (int, error) {
	var n int
	if err := tx.QueryRowContext(ctx, allocateNextQuery, categoryCode, mainCategoryCode).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "allocate sequence number")
	}
	return n, nil
}

// PeekNextNumber previews the number the next allocation would return,
// without mutating the counter. The preview may be stale by the time the
// real allocation happens.
func (r *repository) PeekNextNumber(ctx context.Context, categoryCode, mainCategoryCode string) (int, error) {
	query, args, err := qb.Select("next_number + 1").
		From(sequencesTableName).
		Where(sq.Eq{"code_category": categoryCode}).
		Where(sq.Eq{"code_maincategory": mainCategoryCode}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var next int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 1, nil
		}
		return 0, err
	}
	return next, nil
}
