package wheel

import (
	"brand_site/internal/middleware"
	"brand_site/internal/model"
	"context"

	"github.com/rs/zerolog/log"
)

// Status - крутил ли текущий пользователь колесо и что выиграл
func (s *serv) Status(ctx context.Context) (*model.SpinStatus, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthenticated
	}

	return s.status(ctx, userID)
}

func (s *serv) status(ctx context.Context, userID string) (*model.SpinStatus, error) {
	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile.Signature == nil {
		return &model.SpinStatus{}, nil
	}

	status := &model.SpinStatus{HasSpun: true}
	prize, _, ok := s.lookup(*profile.Signature)
	if !ok {
		// Приз убрали из каталога, но право на спин уже использовано
		log.Warn().Str("user_id", userID).Str("prize", *profile.Signature).Msg("awarded prize is missing from catalog")
		return status, nil
	}
	status.Prize = &prize

	return status, nil
}

// Wheel - каталог для отрисовки колеса и состояние пользователя
func (s *serv) Wheel(ctx context.Context) (*model.Wheel, error) {
	status, err := s.Status(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Wheel{
		Prizes: s.catalog(),
		Status: *status,
	}, nil
}
