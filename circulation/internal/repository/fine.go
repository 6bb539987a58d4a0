package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/circulation/internal/errs"
	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

const fineColumns = "id, fine_uid, loan_uid, amount, reason, status, created_at"

// InsertFine relies on the unique index on loan_uid: a second fine for the
// same loan comes back as ErrFineExists instead of a raw constraint error.
func (r *repository) InsertFine(ctx context.Context, fine model.Fine) (model.Fine, error) {
	query, args, err := qb.Insert(finesTableName).
		Columns("fine_uid", "loan_uid", "amount", "reason", "status", "created_at").
		Values(fine.FineUid, fine.LoanUid, fine.Amount, fine.Reason, fine.Status, fine.CreatedAt).
		Suffix("returning " + fineColumns).
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}

	var out model.Fine
	if err := sqlx.GetContext(ctx, r.ext(ctx), &out, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Fine{}, errs.ErrFineExists
		}
		r.log.Error("InsertFine", zap.String("q", query), zap.Any("args", args))
		return model.Fine{}, err
	}
	return out, nil
}

func (r *repository) GetFine(ctx context.Context, fineUid string) (model.Fine, error) {
	q := fmt.Sprintf(`select %s from %s where fine_uid = $1`, fineColumns, finesTableName)

	var f model.Fine
	if err := sqlx.GetContext(ctx, r.ext(ctx), &f, q, fineUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Fine{}, errs.ErrFineNotFound
		}
		return model.Fine{}, err
	}
	return f, nil
}

func (r *repository) MarkFinePaid(ctx context.Context, fineUid string) (model.Fine, error) {
	q := fmt.Sprintf(`update %s set status = $2
	where fine_uid = $1 and status = $3
	returning %s`, finesTableName, fineColumns)

	var f model.Fine
	err := sqlx.GetContext(ctx, r.ext(ctx), &f, q, fineUid, model.FinePaid, model.FinePending)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Fine{}, err
	}

	// No pending row: distinguish a missing fine from an already paid one.
	if _, getErr := r.GetFine(ctx, fineUid); getErr != nil {
		return model.Fine{}, getErr
	}
	return model.Fine{}, errs.ErrAlreadyPaid
}

func (r *repository) HasPendingFine(ctx context.Context, memberUid string) (bool, error) {
	q := fmt.Sprintf(`select exists (
	select 1 from %s f
	join %s l on l.loan_uid = f.loan_uid
	where l.member_uid = $1 and f.status = $2)`, finesTableName, loansTableName)

	var exists bool
	if err := r.ext(ctx).QueryRowxContext(ctx, q, memberUid, model.FinePending).
		Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) ListPendingFinesByMember(ctx context.Context, memberUid string) ([]model.Fine, error) {
	query, args, err := qb.Select(
		"f.id", "f.fine_uid", "f.loan_uid", "f.amount", "f.reason", "f.status", "f.created_at").
		From(finesTableName + " f").
		Join(fmt.Sprintf("%s l on l.loan_uid = f.loan_uid", loansTableName)).
		Where(sq.Eq{"l.member_uid": memberUid}).
		Where(sq.Eq{"f.status": model.FinePending}).
		OrderBy("f.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Fine
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
