package service

import (
	"brand_site/internal/model"
	"context"
)

type WheelService interface {
	Wheel(ctx context.Context) (*model.Wheel, error)
	Status(ctx context.Context) (*model.SpinStatus, error)
	Spin(ctx context.Context, req model.WheelSpin) (*model.WheelSpinResult, error)
	Stats(ctx context.Context) ([]model.PrizeStat, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type PostService interface {
	CreatePost(ctx context.Context, post *model.Post) (*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) (*model.Post, error)
	GetPublishedPost(ctx context.Context, slug string) (*model.Post, error)
	Landing(ctx context.Context, locale string) (*model.Landing, error)
}

type ContactService interface {
	Submit(ctx context.Context, contact *model.Contact) error
}
