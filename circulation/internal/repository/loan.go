package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/circulation/internal/errs"
	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

const loanColumns = "id, loan_uid, member_uid, copy_uid, status, checkout_at, due_at, returned_at"

func (r *repository) InsertLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	query, args, err := qb.Insert(loansTableName).
		Columns("loan_uid", "member_uid", "copy_uid", "status", "checkout_at", "due_at").
		Values(loan.LoanUid, loan.MemberUid, loan.CopyUid, loan.Status, loan.CheckoutAt, loan.DueAt).
		Suffix("returning " + loanColumns).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}

	var out model.Loan
	if err := sqlx.GetContext(ctx, r.ext(ctx), &out, query, args...); err != nil {
		r.log.Error("InsertLoan", zap.String("q", query), zap.Any("args", args))
		return model.Loan{}, err
	}
	return out, nil
}

func (r *repository) GetLoan(ctx context.Context, loanUid string) (model.Loan, error) {
	return r.getLoan(ctx, loanUid, false)
}

func (r *repository) GetLoanForUpdate(ctx context.Context, loanUid string) (model.Loan, error) {
	return r.getLoan(ctx, loanUid, true)
}

func (r *repository) getLoan(ctx context.Context, loanUid string, forUpdate bool) (model.Loan, error) {
	q := fmt.Sprintf(`select %s from %s where loan_uid = $1`, loanColumns, loansTableName)
	if forUpdate {
		q += " for update"
	}

	var l model.Loan
	if err := sqlx.GetContext(ctx, r.ext(ctx), &l, q, loanUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrLoanNotFound
		}
		return model.Loan{}, err
	}
	return l, nil
}

// MarkLoanReturned closes the loan. Conditional on the loan still being
// open so a repeated return cannot overwrite the original return time.
func (r *repository) MarkLoanReturned(ctx context.Context, loanUid string, returnedAt time.Time) error {
	q := fmt.Sprintf(`update %s
	set status = $2, returned_at = $3
	where loan_uid = $1 and status in ($4, $5)`, loansTableName)

	res, err := r.ext(ctx).ExecContext(ctx, q,
		loanUid, model.LoanReturned, returnedAt, model.LoanActive, model.LoanOverdue)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrAlreadyReturned
	}
	return nil
}

func (r *repository) CountOpenLoans(ctx context.Context, memberUid string) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s
	where member_uid = $1 and status in ($2, $3)`, loansTableName)

	var count int
	if err := r.ext(ctx).QueryRowxContext(ctx, q, memberUid, model.LoanActive, model.LoanOverdue).
		Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListLoansByMemberAndStatus(ctx context.Context, memberUid string, status model.LoanStatus) ([]model.Loan, error) {
	query, args, err := qb.Select(loanColumns).
		From(loansTableName).
		Where(sq.Eq{"member_uid": memberUid}).
		Where(sq.Eq{"status": status}).
		OrderBy("checkout_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Loan
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListLoansByStatus(ctx context.Context, status model.LoanStatus) ([]model.Loan, error) {
	query, args, err := qb.Select(loanColumns).
		From(loansTableName).
		Where(sq.Eq{"status": status}).
		OrderBy("due_at asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Loan
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkLoansOverdue is the overdue sweep: one idempotent statement, no fines.
func (r *repository) MarkLoansOverdue(ctx context.Context, now time.Time) (int64, error) {
	q := fmt.Sprintf(`update %s set status = $1
	where status = $2 and due_at < $3`, loansTableName)

	res, err := r.ext(ctx).ExecContext(ctx, q, model.LoanOverdue, model.LoanActive, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
