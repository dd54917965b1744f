package contact_repo

import (
	"brand_site/internal/model"
	"brand_site/internal/repository"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table      = "contacts"
	colName    = "name"
	colEmail   = "email"
	colMessage = "message"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewContactRepository(dbc *pgxpool.Pool) repository.ContactRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateContact - сохраняет сообщение из формы обратной связи
func (r *repo) CreateContact(ctx context.Context, contact *model.Contact) error {
	query := sq.Insert(table).
		Columns(colName, colEmail, colMessage).
		Values(contact.Name, contact.Email, contact.Message).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}

	return nil
}
