package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/bibliotek/circulation-service/circulation/internal/errs"
	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

const copyColumns = "id, copy_uid, title_uid, barcode, condition, available"

func (r *repository) GetCopy(ctx context.Context, copyUid string) (model.Copy, error) {
	query, args, err := qb.Select("id", "copy_uid", "title_uid", "barcode", "condition", "available").
		From(copiesTableName).
		Where(sq.Eq{"copy_uid": copyUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Copy{}, err
	}

	var c model.Copy
	if err := sqlx.GetContext(ctx, r.ext(ctx), &c, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Copy{}, errs.ErrCopyNotFound
		}
		return model.Copy{}, err
	}
	return c, nil
}

// GetCopyForUpdate is the per-copy mutual exclusion point: the row lock it
// takes serializes every competing issue/return for the same copy until the
// enclosing transaction commits.
func (r *repository) GetCopyForUpdate(ctx context.Context, copyUid string) (model.Copy, error) {
	q := fmt.Sprintf(`select %s from %s where copy_uid = $1 for update`,
		copyColumns, copiesTableName)

	var c model.Copy
	if err := sqlx.GetContext(ctx, r.ext(ctx), &c, q, copyUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Copy{}, errs.ErrCopyNotFound
		}
		return model.Copy{}, err
	}
	return c, nil
}

// SetCopyAvailability flips the availability flag. The update is conditional
// on the flag holding the opposite value, so an out-of-order call cannot
// silently double-flip.
func (r *repository) SetCopyAvailability(ctx context.Context, copyUid string, available bool) error {
	q := fmt.Sprintf(`update %s set available = $2 where copy_uid = $1 and available = $3`,
		copiesTableName)

	res, err := r.ext(ctx).ExecContext(ctx, q, copyUid, available, !available)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrInvalidTransition
	}
	return nil
}
