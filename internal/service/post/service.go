package post

import (
	"brand_site/internal/middleware"
	"brand_site/internal/model"
	"brand_site/internal/repository"
	"brand_site/internal/service"
	"brand_site/pkg/slug"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager trm.Manager
	repo      repository.PostRepository
	now       func() time.Time
}

func NewPostService(txManager trm.Manager, repo repository.PostRepository) service.PostService {
	return &serv{
		txManager: txManager,
		repo:      repo,
		now:       time.Now,
	}
}

// normalize заполняет slug и тип поста по умолчанию
func normalize(post *model.Post) error {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		return fmt.Errorf("%w: empty title", model.ErrInvalidPost)
	}

	source := post.Slug
	if strings.TrimSpace(source) == "" {
		source = post.Title
	}
	post.Slug = slug.Generate(source)
	if post.Slug == "" {
		return fmt.Errorf("%w: cannot build slug from %q", model.ErrInvalidPost, source)
	}

	if post.CategoryID == 0 {
		post.CategoryID = model.PostsCategoryID
	}
	if post.PostType == "" {
		post.PostType = model.PostTypePost
		if post.CategoryID == model.PagesCategoryID {
			post.PostType = model.PostTypePage
		}
	}

	return nil
}

// CreatePost создаёт пост от имени текущего администратора
func (s *serv) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthenticated
	}

	err := normalize(post)
	if err != nil {
		return nil, err
	}
	post.CreatedBy = userID

	var created *model.Post
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		id, err := s.repo.CreatePost(txCtx, post)
		if err != nil {
			return err
		}

		created, err = s.repo.GetPostByID(txCtx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdatePost обновляет пост. Автор и дата создания не меняются
func (s *serv) UpdatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	err := normalize(post)
	if err != nil {
		return nil, err
	}

	var updated *model.Post
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.GetPostByID(txCtx, post.ID)
		if err != nil {
			return err
		}
		post.CreatedBy = existing.CreatedBy

		err = s.repo.UpdatePost(txCtx, post)
		if err != nil {
			return err
		}

		updated, err = s.repo.GetPostByID(txCtx, post.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *serv) GetPublishedPost(ctx context.Context, postSlug string) (*model.Post, error) {
	return s.repo.GetPublishedPostBySlug(ctx, postSlug, s.now())
}

// Landing - данные главной страницы: язык и меню
func (s *serv) Landing(ctx context.Context, locale string) (*model.Landing, error) {
	pages, err := s.repo.ListMenuPages(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Landing{
		Locale: locale,
		Pages:  pages,
	}, nil
}
