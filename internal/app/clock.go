package app

import (
	"time"

	"go-target-rush/internal/config"
)

// FrameClock считает время между кадрами и ограничивает скачки после пауз окна.
type FrameClock struct {
	last     time.Time
	maxDelta float64
	now      func() time.Time
}

// NewFrameClock создает часы, отсчитывающие время от текущего момента.
func NewFrameClock() *FrameClock {
	return newFrameClock(time.Now)
}

func newFrameClock(now func() time.Time) *FrameClock {
	return &FrameClock{last: now(), maxDelta: config.MaxDeltaTime, now: now}
}

// Tick возвращает прошедшее с прошлого вызова время в секундах, не больше MaxDeltaTime.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	delta := now.Sub(c.last).Seconds()
	c.last = now
	if delta < 0 {
		return 0
	}
	if delta > c.maxDelta {
		delta = c.maxDelta
	}
	return delta
}
