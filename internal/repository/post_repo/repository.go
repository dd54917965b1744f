package post_repo

import (
	"brand_site/internal/model"
	"brand_site/internal/repository"
	"brand_site/internal/repository/pgerr"
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table            = "posts"
	colID            = "id"
	colTitle         = "title"
	colSlug          = "slug"
	colPostType      = "post_type"
	colBody          = "body"
	colCategoryID    = "category_id"
	colOrderIndex    = "order_index"
	colPublishAt     = "publish_at"
	colFeaturedImage = "featured_image"
	colCreatedBy     = "created_by"
	colCreatedAt     = "created_at"
	colUpdatedAt     = "updated_at"

	slugConstraint = "posts_slug_key"
)

var postColumns = []string{
	colID, colTitle, colSlug, colPostType, colBody, colCategoryID, colOrderIndex,
	colPublishAt, colFeaturedImage, colCreatedBy + "::text", colCreatedAt, colUpdatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPostRepository(dbc *pgxpool.Pool) repository.PostRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// nullableUUID - пустой автор пишется как NULL
func nullableUUID(id string) interface{} {
	if id == "" {
		return nil
	}
	return id
}

// CreatePost - создает пост и возвращает его ID
func (r *repo) CreatePost(ctx context.Context, post *model.Post) (int64, error) {
	query := sq.Insert(table).
		Columns(colTitle, colSlug, colPostType, colBody, colCategoryID, colOrderIndex,
			colPublishAt, colFeaturedImage, colCreatedBy).
		Values(post.Title, post.Slug, post.PostType, post.Body, post.CategoryID, post.OrderIndex,
			post.PublishAt, post.FeaturedImage, nullableUUID(post.CreatedBy)).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		if pgerr.IsUniqueViolation(err, slugConstraint) {
			return 0, model.ErrSlugTaken
		}
		return 0, fmt.Errorf("create post: %w", err)
	}

	return id, nil
}

// UpdatePost - обновляет редактируемые поля поста
func (r *repo) UpdatePost(ctx context.Context, post *model.Post) error {
	query := sq.Update(table).
		Set(colTitle, post.Title).
		Set(colSlug, post.Slug).
		Set(colPostType, post.PostType).
		Set(colBody, post.Body).
		Set(colCategoryID, post.CategoryID).
		Set(colOrderIndex, post.OrderIndex).
		Set(colPublishAt, post.PublishAt).
		Set(colFeaturedImage, post.FeaturedImage).
		Set(colUpdatedAt, sq.Expr("now()")).
		Where(sq.Eq{colID: post.ID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		if pgerr.IsUniqueViolation(err, slugConstraint) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

func (r *repo) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	query := sq.Select(postColumns...).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.getOne(ctx, query)
}

// GetPublishedPostBySlug - только опубликованные посты (publish_at задан и уже наступил)
func (r *repo) GetPublishedPostBySlug(ctx context.Context, slug string, now time.Time) (*model.Post, error) {
	query := sq.Select(postColumns...).
		From(table).
		Where(sq.Eq{colSlug: slug}).
		Where(sq.LtOrEq{colPublishAt: now}).
		PlaceholderFormat(sq.Dollar)

	return r.getOne(ctx, query)
}

func (r *repo) getOne(ctx context.Context, query sq.SelectBuilder) (*model.Post, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		p         model.Post
		createdBy *string
	)
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(
		&p.ID, &p.Title, &p.Slug, &p.PostType, &p.Body, &p.CategoryID, &p.OrderIndex,
		&p.PublishAt, &p.FeaturedImage, &createdBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	if createdBy != nil {
		p.CreatedBy = *createdBy
	}

	return &p, nil
}

// ListMenuPages - страницы для меню сайта в порядке order_index
func (r *repo) ListMenuPages(ctx context.Context) ([]model.MenuPage, error) {
	query := sq.Select(colTitle, colSlug, colOrderIndex).
		From(table).
		Where(sq.Eq{colCategoryID: model.PagesCategoryID}).
		OrderBy(colOrderIndex+" ASC", colID+" ASC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu pages: %w", err)
	}
	defer rows.Close()

	pages := make([]model.MenuPage, 0)
	for rows.Next() {
		var p model.MenuPage
		err = rows.Scan(&p.Title, &p.Slug, &p.OrderIndex)
		if err != nil {
			return nil, fmt.Errorf("scan menu page: %w", err)
		}
		pages = append(pages, p)
	}

	return pages, rows.Err()
}
