package auth

import (
	"brand_site/internal/model"
	"brand_site/pkg/pass"
	"brand_site/pkg/token"
	"context"
	"strings"
	"time"
)

// Register создаёт пользователя, его профиль и первую сессию одной транзакцией
func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = passwordHash

	// Переменные для хранения результатов
	var (
		sessionID    string
		refreshToken string
		accessToken  string
	)

	// Начало транзакциии
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		// 2. Профиль без приза - право на один спин колеса
		err = s.profileRepo.CreateProfile(ctx, &model.Profile{
			UserID: user.ID,
			Name:   user.Name,
			Role:   model.RoleUser,
		})
		if err != nil {
			return err
		}

		// 3. Генерация sessionID
		sessionID = generateSessionID()
		// 4. Генерация refresh токена
		refreshToken, err = token.GenerateRefreshToken()
		if err != nil {
			return err
		}

		// 5. Создать сессию
		err = s.authRepo.CreateSession(ctx,
			&model.Session{
				ID:           sessionID,
				UserID:       user.ID,
				RefreshToken: token.HashRefreshToken(refreshToken),
				ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
			})
		if err != nil {
			return err
		}

		// 6. Создать access токен
		accessToken, err = token.GenerateAccessToken(
			user,
			s.jwtConfig.AccessTokenSecretKey(),
			s.jwtConfig.AccessTokenDuration())
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
