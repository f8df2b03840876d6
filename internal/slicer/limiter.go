package slicer

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRunsPerMinute - ограничение частоты запусков слайсера по умолчанию
const DefaultRunsPerMinute = 30

// Limiter - ограничитель частоты запусков слайсера.
// Слайсер - самая тяжёлая операция сервиса, шторм загрузок
// не должен положить хост.
type Limiter struct {
	limiter *rate.Limiter
	mu      sync.Mutex
}

func NewLimiter(runsPerMinute int) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(runsPerMinute)), 1),
	}
}

// Wait - блокирует до разрешения следующего запуска или отмены контекста
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Update - изменяет ограничение частоты запусков
func (l *Limiter) Update(runsPerMinute int, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.limiter.SetLimit(rate.Every(time.Minute / time.Duration(runsPerMinute)))
	l.limiter.SetBurst(burst)
}
