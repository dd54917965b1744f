// Package wheel содержит геометрию колеса: сектора, целевой угол поворота
// и локальное состояние предварительного вращения для клиентов.
//
// Соглашение: секторы раскладываются по часовой стрелке от 0° (верх),
// указатель неподвижен в 0°, вращается сам контейнер колеса по часовой стрелке.
// Поэтому угол центра сектора инвертируется: (360 - center) mod 360.
// Если вращать указатель, а не колесо, инверсия не нужна.
package wheel

import (
	"errors"
	"math"
)

const (
	FullTurn = 360.0

	// MaxRotation - предел текущего угла. Выше него float64 теряет доли градуса
	// и остаток от деления на 360 уже не попадает в нужный сектор
	MaxRotation = 1e9
)

var (
	ErrInvalidIndex       = errors.New("wheel: prize index out of range")
	ErrRotationOutOfRange = errors.New("wheel: current rotation out of range")
)

// SegmentAngle - угол одного сектора при n призах
func SegmentAngle(n int) float64 {
	return FullTurn / float64(n)
}

// WedgeCenter - угол центра сектора index, отсчитанный по часовой стрелке от 0°
func WedgeCenter(n, index int) (float64, error) {
	if n <= 0 || index < 0 || index >= n {
		return 0, ErrInvalidIndex
	}

	segment := SegmentAngle(n)
	return float64(index)*segment + segment/2, nil
}

// AlignAngle - поворот колеса в [0, 360), при котором центр сектора index
// оказывается под указателем
func AlignAngle(n, index int) (float64, error) {
	center, err := WedgeCenter(n, index)
	if err != nil {
		return 0, err
	}

	return math.Mod(FullTurn-center, FullTurn), nil
}

// TargetRotation возвращает итоговый угол поворота колеса.
// К уже накрученным полным оборотам current добавляется extraTurns оборотов и угол выравнивания.
// Результат никогда не меньше current, а его остаток от деления на 360 равен AlignAngle.
// current больше MaxRotation (или NaN, +Inf) - ErrRotationOutOfRange
func TargetRotation(n, index int, current float64, extraTurns int) (float64, error) {
	align, err := AlignAngle(n, index)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(current) || current > MaxRotation {
		return 0, ErrRotationOutOfRange
	}
	if current < 0 {
		current = 0
	}
	if extraTurns < 0 {
		extraTurns = 0
	}

	turns := math.Floor(current/FullTurn) + float64(extraTurns)
	target := turns*FullTurn + align

	// Колесо не должно откатываться назад
	if target < current {
		target += FullTurn
	}

	return target, nil
}
