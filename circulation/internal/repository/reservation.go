package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/circulation/internal/errs"
	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

const reservationColumns = "id, reservation_uid, member_uid, title_uid, status, created_at"

func (r *repository) InsertReservation(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	query, args, err := qb.Insert(reservationsTableName).
		Columns("reservation_uid", "member_uid", "title_uid", "status", "created_at").
		Values(res.ReservationUid, res.MemberUid, res.TitleUid, res.Status, res.CreatedAt).
		Suffix("returning " + reservationColumns).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}

	var out model.Reservation
	if err := sqlx.GetContext(ctx, r.ext(ctx), &out, query, args...); err != nil {
		r.log.Error("InsertReservation", zap.String("q", query), zap.Any("args", args))
		return model.Reservation{}, err
	}
	return out, nil
}

func (r *repository) GetReservation(ctx context.Context, reservationUid string) (model.Reservation, error) {
	q := fmt.Sprintf(`select %s from %s where reservation_uid = $1`,
		reservationColumns, reservationsTableName)

	var res model.Reservation
	if err := sqlx.GetContext(ctx, r.ext(ctx), &res, q, reservationUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrReservationNotFound
		}
		return model.Reservation{}, err
	}
	return res, nil
}

// UpdateReservationStatus applies a single legal transition. The from-state
// guard in the where clause makes a lost race surface as ErrInvalidTransition
// rather than a silent double transition.
func (r *repository) UpdateReservationStatus(ctx context.Context, reservationUid string, from, to model.ReservationStatus) (model.Reservation, error) {
	q := fmt.Sprintf(`update %s set status = $2
	where reservation_uid = $1 and status = $3
	returning %s`, reservationsTableName, reservationColumns)

	var res model.Reservation
	err := sqlx.GetContext(ctx, r.ext(ctx), &res, q, reservationUid, to, from)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Reservation{}, err
	}

	if _, getErr := r.GetReservation(ctx, reservationUid); getErr != nil {
		return model.Reservation{}, getErr
	}
	return model.Reservation{}, errs.ErrInvalidTransition
}

func (r *repository) HasActiveReservation(ctx context.Context, memberUid, titleUid string) (bool, error) {
	q := fmt.Sprintf(`select exists (
	select 1 from %s
	where member_uid = $1 and title_uid = $2 and status in ($3, $4))`, reservationsTableName)

	var exists bool
	if err := r.ext(ctx).QueryRowxContext(ctx, q,
		memberUid, titleUid, model.ReservationPending, model.ReservationNotified).
		Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) CountActiveReservations(ctx context.Context, memberUid string) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s
	where member_uid = $1 and status in ($2, $3)`, reservationsTableName)

	var count int
	if err := r.ext(ctx).QueryRowxContext(ctx, q,
		memberUid, model.ReservationPending, model.ReservationNotified).
		Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListReservationsByMember(ctx context.Context, memberUid string) ([]model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns).
		From(reservationsTableName).
		Where(sq.Eq{"member_uid": memberUid}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Reservation
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// ListPendingReservationsByTitle is keyed on the title, oldest first, so the
// head of the list is the next member to notify when a copy frees up.
func (r *repository) ListPendingReservationsByTitle(ctx context.Context, titleUid string) ([]model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns).
		From(reservationsTableName).
		Where(sq.Eq{"title_uid": titleUid}).
		Where(sq.Eq{"status": model.ReservationPending}).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Reservation
	if err := sqlx.SelectContext(ctx, r.ext(ctx), &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}
