package wheel

import (
	"brand_site/internal/model"
	"context"

	"github.com/rs/zerolog/log"
)

// Stats - сколько раз выпал каждый приз, в порядке каталога
func (s *serv) Stats(ctx context.Context) ([]model.PrizeStat, error) {
	counts, err := s.profileRepo.CountAwards(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]model.PrizeStat, len(s.prizes))
	for i, p := range s.prizes {
		stats[i].Prize = p
	}

	for _, c := range counts {
		_, i, ok := s.lookup(c.PrizeName)
		if !ok {
			log.Warn().Str("prize", c.PrizeName).Int("count", c.Count).Msg("award for unknown prize")
			continue
		}
		stats[i].Awarded = c.Count
		stats[i].LastAward = c.LastAward
	}

	return stats, nil
}
