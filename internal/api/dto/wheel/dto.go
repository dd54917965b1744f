package wheel

import "time"

type PrizeResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`        // Тип (гормон, нейромедиатор)
	AssociatedArea string `json:"associated_area"` // Отдел нервной системы
	Note           string `json:"note"`
}

type StatusResponse struct {
	HasSpun bool           `json:"has_spun"`
	Prize   *PrizeResponse `json:"prize"` // null, если ещё не крутил
}

type WheelResponse struct {
	Prizes []PrizeResponse `json:"prizes"` // В порядке секторов колеса
	Status StatusResponse  `json:"status"`
}

type SpinRequest struct {
	CurrentRotation float64 `json:"current_rotation" validate:"lte=1e9"` // Текущий угол колеса на клиенте, градусы
	Prize           string  `json:"prize" validate:"omitempty,max=100"`
}

type SpinResponse struct {
	Success        bool          `json:"success"`
	Prize          PrizeResponse `json:"prize"`
	TargetRotation float64       `json:"target_rotation"` // Угол, на котором колесо должно остановиться
	ExtraTurns     int           `json:"extra_turns"`
}

// AlreadySpunResponse - ответ 409, приз показывается повторно
type AlreadySpunResponse struct {
	Error string         `json:"error"`
	Prize *PrizeResponse `json:"prize,omitempty"`
}

type StatResponse struct {
	Prize     PrizeResponse `json:"prize"`
	Awarded   int           `json:"awarded"`
	LastAward *time.Time    `json:"last_award,omitempty"`
}
