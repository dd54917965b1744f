package user_repo

import (
	"brand_site/internal/model"
	"brand_site/internal/repository"
	"brand_site/internal/repository/pgerr"
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colName         = "name"
	colEmail        = "email"
	colPasswordHash = "password_hash"

	emailConstraint = "users_email_key"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn - текущая транзакция из контекста или пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (string, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colEmail, colPasswordHash).
		Values(user.Name, user.Email, user.Password).
		Suffix("RETURNING " + colID + "::text").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	var id string
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if pgerr.IsUniqueViolation(err, emailConstraint) {
			return "", model.ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// GetUserByEmail - возвращает модель пользователя (ID, Name, Email, Password) по email
func (r *repo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colID+"::text", colName, colEmail, colPasswordHash).
		From(table).
		Where(sq.Eq{colEmail: email}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}
