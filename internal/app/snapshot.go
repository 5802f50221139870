package app

import (
	"go-target-rush/internal/component"
	"go-target-rush/internal/entity"
	"go-target-rush/internal/system"
)

// Snapshot — то, что рендер получает после обновления кадра. Только для чтения.
type Snapshot struct {
	Phase     component.Phase
	Counters  system.Counters
	Targets   []*entity.Target
	Bubbles   []*entity.Bubble
	Bounds    component.Bounds
	Frame     int
	Countdown int
	Summary   system.Summary
	Muted     bool
}

// Snapshot собирает состояние для отрисовки в фазе phase.
func (g *Game) Snapshot(phase component.Phase, countdown int) Snapshot {
	return Snapshot{
		Phase:     phase,
		Counters:  g.Score.Counters,
		Targets:   g.Targets,
		Bubbles:   g.Bubbles,
		Bounds:    g.Bounds,
		Frame:     g.Frame,
		Countdown: countdown,
		Summary:   g.LastSummary,
		Muted:     g.Muted,
	}
}
