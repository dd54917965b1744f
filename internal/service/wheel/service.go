package wheel

import (
	"brand_site/internal/config"
	"brand_site/internal/model"
	"brand_site/internal/repository"
	"brand_site/internal/service"
	"math/rand/v2"
)

type serv struct {
	prizes   []model.Prize
	byName   map[string]int
	minTurns int
	maxTurns int

	profileRepo repository.ProfileRepository

	// intn возвращает равномерное число из [0, n)
	intn func(n int) int
}

// NewWheelService Создать сервис колеса по каталогу из конфига
func NewWheelService(cfg config.WheelConfig, profileRepo repository.ProfileRepository) service.WheelService {
	return newService(cfg, profileRepo, rand.IntN)
}

func newService(cfg config.WheelConfig, profileRepo repository.ProfileRepository, intn func(int) int) *serv {
	prizes := cfg.Prizes()
	byName := make(map[string]int, len(prizes))
	for i, p := range prizes {
		byName[p.Name] = i
	}
	minTurns, maxTurns := cfg.ExtraTurns()

	return &serv{
		prizes:      prizes,
		byName:      byName,
		minTurns:    minTurns,
		maxTurns:    maxTurns,
		profileRepo: profileRepo,
		intn:        intn,
	}
}

// lookup ищет приз в каталоге по имени
func (s *serv) lookup(name string) (model.Prize, int, bool) {
	i, ok := s.byName[name]
	if !ok {
		return model.Prize{}, -1, false
	}
	return s.prizes[i], i, true
}

func (s *serv) catalog() []model.Prize {
	out := make([]model.Prize, len(s.prizes))
	copy(out, s.prizes)
	return out
}
