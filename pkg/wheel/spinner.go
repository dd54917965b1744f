package wheel

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultSpinStep     = 10.0
	DefaultSpinInterval = 16 * time.Millisecond
)

// Spinner - предварительное вращение колеса, пока сервер выбирает приз.
// На корректность результата не влияет, его можно прервать в любой момент.
type Spinner struct {
	mu       sync.Mutex
	rotation float64
	step     float64
	interval time.Duration

	running bool
	stop    chan struct{}
	done    chan struct{}
}

func NewSpinner(start, step float64, interval time.Duration) *Spinner {
	if step <= 0 {
		step = DefaultSpinStep
	}
	if interval <= 0 {
		interval = DefaultSpinInterval
	}

	return &Spinner{
		rotation: start,
		step:     step,
		interval: interval,
	}
}

// Start запускает вращение. Повторный вызов до Stop ничего не делает
func (s *Spinner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.loop(ctx, s.stop, s.done)
}

func (s *Spinner) loop(ctx context.Context, stop, done chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.rotation += s.step
			s.mu.Unlock()
		}
	}
}

// Stop останавливает вращение, дожидается завершения горутины и возвращает текущий угол
func (s *Spinner) Stop() float64 {
	s.mu.Lock()
	if !s.running {
		r := s.rotation
		s.mu.Unlock()
		return r
	}
	s.running = false
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	<-done

	return s.Rotation()
}

func (s *Spinner) Rotation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotation
}

// Settle фиксирует итоговый угол после ответа сервера. Вращение останавливается
func (s *Spinner) Settle(target float64) {
	s.Stop()

	s.mu.Lock()
	s.rotation = target
	s.mu.Unlock()
}
