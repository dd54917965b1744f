package wheel

import (
	"brand_site/internal/middleware"
	"brand_site/internal/model"
	"brand_site/pkg/wheel"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Spin выполняет единственный спин пользователя.
// Приз всегда выбирает сервер, присланное клиентом имя только проверяется по каталогу
func (s *serv) Spin(ctx context.Context, req model.WheelSpin) (*model.WheelSpinResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, model.ErrUnauthenticated
	}

	if req.ProposedPrize != "" {
		if _, _, ok := s.lookup(req.ProposedPrize); !ok {
			return nil, model.ErrInvalidPrize
		}
	}

	// Проверяем, не крутил ли пользователь раньше
	status, err := s.status(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status.HasSpun {
		return nil, model.ErrAlreadySpun
	}

	// Выбираем приз и считаем угол, на котором остановится колесо
	prize, index := s.selectPrize()
	turns := s.extraTurns()
	target, err := wheel.TargetRotation(len(s.prizes), index, req.CurrentRotation, turns)
	if err != nil {
		return nil, fmt.Errorf("target rotation: %w", err)
	}

	// Запись результата. Гонку двух запросов решает условный UPDATE
	err = s.award(ctx, userID, prize.Name)
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", userID).Str("prize", prize.Name).Float64("target_rotation", target).Msg("wheel spun")

	return &model.WheelSpinResult{
		Prize:          prize,
		TargetRotation: target,
		ExtraTurns:     turns,
	}, nil
}

// award - запись приза ровно один раз. Имя заново проверяется по каталогу
func (s *serv) award(ctx context.Context, userID, prizeName string) error {
	if _, _, ok := s.lookup(prizeName); !ok {
		return model.ErrInvalidPrize
	}

	err := s.profileRepo.AwardPrize(ctx, userID, prizeName)
	if err != nil {
		if !errors.Is(err, model.ErrAlreadySpun) {
			log.Error().Err(err).Str("user_id", userID).Msg("failed to award prize")
		}
		return err
	}

	return nil
}
