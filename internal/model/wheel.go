package model

import "time"

// Prize - элемент каталога колеса. Порядок в каталоге задаёт положение сектора
type Prize struct {
	ID             int
	Name           string
	Category       string
	AssociatedArea string
	Note           string
}

type SpinStatus struct {
	HasSpun bool
	Prize   *Prize
}

type WheelSpin struct {
	CurrentRotation float64
	ProposedPrize   string
}

type WheelSpinResult struct {
	Prize          Prize
	TargetRotation float64
	ExtraTurns     int
}

type Wheel struct {
	Prizes []Prize
	Status SpinStatus
}

type PrizeStat struct {
	Prize     Prize
	Awarded   int
	LastAward *time.Time
}

type AwardCount struct {
	PrizeName string
	Count     int
	LastAward *time.Time
}
