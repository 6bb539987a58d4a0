package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/bibliotek/circulation-service/circulation/internal/errs"
	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

func (r *repository) GetMember(ctx context.Context, memberUid string) (model.Member, error) {
	query, args, err := qb.Select("id", "member_uid", "name", "email", "role").
		From(membersTableName).
		Where(sq.Eq{"member_uid": memberUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var m model.Member
	if err := sqlx.GetContext(ctx, r.ext(ctx), &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrMemberNotFound
		}
		return model.Member{}, err
	}
	return m, nil
}

func (r *repository) GetTitle(ctx context.Context, titleUid string) (model.Title, error) {
	query, args, err := qb.Select("id", "title_uid", "isbn", "name", "year", "publisher", "category").
		From(titlesTableName).
		Where(sq.Eq{"title_uid": titleUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Title{}, err
	}

	var t model.Title
	if err := sqlx.GetContext(ctx, r.ext(ctx), &t, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Title{}, errs.ErrTitleNotFound
		}
		return model.Title{}, err
	}
	return t, nil
}
