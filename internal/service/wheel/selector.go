package wheel

import "brand_site/internal/model"

// selectPrize - равновероятный выбор приза из каталога, без весов и исключений
func (s *serv) selectPrize() (model.Prize, int) {
	i := s.intn(len(s.prizes))
	return s.prizes[i], i
}

// extraTurns - число дополнительных оборотов из [minTurns, maxTurns]
func (s *serv) extraTurns() int {
	return s.minTurns + s.intn(s.maxTurns-s.minTurns+1)
}
