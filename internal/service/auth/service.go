package auth

import (
	"brand_site/internal/config"
	"brand_site/internal/repository"
	"brand_site/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager   trm.Manager
	userRepo    repository.UserRepository
	authRepo    repository.AuthRepository
	profileRepo repository.ProfileRepository
	jwtConfig   config.JWTConfig
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	profileRepo repository.ProfileRepository,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager:   txManager,
		userRepo:    userRepo,
		authRepo:    authRepo,
		profileRepo: profileRepo,
		jwtConfig:   jwtConfig,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
