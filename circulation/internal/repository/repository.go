package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

type MemberRepository interface {
	GetMember(ctx context.Context, memberUid string) (model.Member, error)
}

type TitleRepository interface {
	GetTitle(ctx context.Context, titleUid string) (model.Title, error)
}

type CopyRepository interface {
	GetCopy(ctx context.Context, copyUid string) (model.Copy, error)
	// GetCopyForUpdate locks the copy row for the rest of the enclosing
	// transaction. Callers must be inside WithinTx.
	GetCopyForUpdate(ctx context.Context, copyUid string) (model.Copy, error)
	SetCopyAvailability(ctx context.Context, copyUid string, available bool) error
}

type LoanRepository interface {
	InsertLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	GetLoan(ctx context.Context, loanUid string) (model.Loan, error)
	GetLoanForUpdate(ctx context.Context, loanUid string) (model.Loan, error)
	MarkLoanReturned(ctx context.Context, loanUid string, returnedAt time.Time) error
	CountOpenLoans(ctx context.Context, memberUid string) (int, error)
	ListLoansByMemberAndStatus(ctx context.Context, memberUid string, status model.LoanStatus) ([]model.Loan, error)
	ListLoansByStatus(ctx context.Context, status model.LoanStatus) ([]model.Loan, error)
	MarkLoansOverdue(ctx context.Context, now time.Time) (int64, error)
}

type FineRepository interface {
	InsertFine(ctx context.Context, fine model.Fine) (model.Fine, error)
	GetFine(ctx context.Context, fineUid string) (model.Fine, error)
	MarkFinePaid(ctx context.Context, fineUid string) (model.Fine, error)
	HasPendingFine(ctx context.Context, memberUid string) (bool, error)
	ListPendingFinesByMember(ctx context.Context, memberUid string) ([]model.Fine, error)
}

type ReservationRepository interface {
	InsertReservation(ctx context.Context, res model.Reservation) (model.Reservation, error)
	GetReservation(ctx context.Context, reservationUid string) (model.Reservation, error)
	UpdateReservationStatus(ctx context.Context, reservationUid string, from, to model.ReservationStatus) (model.Reservation, error)
	HasActiveReservation(ctx context.Context, memberUid, titleUid string) (bool, error)
	CountActiveReservations(ctx context.Context, memberUid string) (int, error)
	ListReservationsByMember(ctx context.Context, memberUid string) ([]model.Reservation, error)
	ListPendingReservationsByTitle(ctx context.Context, titleUid string) ([]model.Reservation, error)
}

//go:generate go run github.com/golang/mock/mockgen -destination=mocks/mock.go github.com/bibliotek/circulation-service/circulation/internal/repository Repository

type Repository interface {
	MemberRepository
	TitleRepository
	CopyRepository
	LoanRepository
	FineRepository
	ReservationRepository

	// WithinTx runs fn with a transaction carried in the context; every
	// repository call made through that context joins the transaction.
	// fn returning an error rolls everything back.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

var _ Repository = (*repository)(nil)

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	membersTableName      = `members`
	titlesTableName       = `titles`
	copiesTableName       = `copies`
	loansTableName        = `loans`
	finesTableName        = `fines`
	reservationsTableName = `reservations`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txKey struct{}

// ext resolves the executor for ctx: the enclosing transaction if WithinTx
// is active, the pool otherwise.
func (r *repository) ext(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return r.db
}

func (r *repository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx) // already inside a transaction
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}
