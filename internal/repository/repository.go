package repository

import (
	"brand_site/internal/model"
	"context"
	"time"
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id string, err error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)

	// AwardPrize записывает приз только если у пользователя его ещё нет.
	// ErrAlreadySpun - приз уже записан, ErrProfileNotFound - профиля нет
	AwardPrize(ctx context.Context, userID, prizeName string) error
	CountAwards(ctx context.Context) ([]model.AwardCount, error)
}

type PostRepository interface {
	CreatePost(ctx context.Context, post *model.Post) (id int64, err error)
	UpdatePost(ctx context.Context, post *model.Post) error
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	GetPublishedPostBySlug(ctx context.Context, slug string, now time.Time) (*model.Post, error)
	ListMenuPages(ctx context.Context) ([]model.MenuPage, error)
}

type ContactRepository interface {
	CreateContact(ctx context.Context, contact *model.Contact) error
}
