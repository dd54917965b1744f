package profile_repo

import (
	"brand_site/internal/model"
	"brand_site/internal/repository"
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "profiles"
	colUserID    = "user_id"
	colName      = "name"
	colRole      = "role"
	colSignature = "signature"
	colAwardedAt = "awarded_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewProfileRepository(dbc *pgxpool.Pool) repository.ProfileRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateProfile - создает профиль пользователя без приза
func (r *repo) CreateProfile(ctx context.Context, profile *model.Profile) error {
	role := profile.Role
	if role == "" {
		role = model.RoleUser
	}

	query := sq.Insert(table).
		Columns(colUserID, colName, colRole).
		Values(profile.UserID, profile.Name, role).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	return nil
}

// GetProfile - профиль пользователя вместе с выигранным призом (если есть)
func (r *repo) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	query := sq.Select(colUserID+"::text", colName, colRole, colSignature).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Profile
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&p.UserID, &p.Name, &p.Role, &p.Signature)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &p, nil
}

// awardPrizeQuery - условное обновление: приз пишется только поверх NULL.
// Два одновременных запроса не могут оба затронуть строку
func awardPrizeQuery(userID, prizeName string) (string, []interface{}, error) {
	return sq.Update(table).
		Set(colSignature, prizeName).
		Set(colAwardedAt, sq.Expr("now()")).
		Where(sq.Eq{colUserID: userID}).
		Where(sq.Eq{colSignature: nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// AwardPrize - записывает приз пользователю ровно один раз
func (r *repo) AwardPrize(ctx context.Context, userID, prizeName string) error {
	sqlStr, args, err := awardPrizeQuery(userID, prizeName)
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("award prize: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Ни одна строка не обновилась: либо приз уже есть, либо профиля нет
	_, err = r.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	return model.ErrAlreadySpun
}

// CountAwards - сколько раз выпал каждый приз
func (r *repo) CountAwards(ctx context.Context) ([]model.AwardCount, error) {
	query := sq.Select(colSignature, "count(*)", "max("+colAwardedAt+")").
		From(table).
		Where(sq.NotEq{colSignature: nil}).
		GroupBy(colSignature).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("count awards: %w", err)
	}
	defer rows.Close()

	var counts []model.AwardCount
	for rows.Next() {
		var c model.AwardCount
		err = rows.Scan(&c.PrizeName, &c.Count, &c.LastAward)
		if err != nil {
			return nil, fmt.Errorf("scan award count: %w", err)
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
