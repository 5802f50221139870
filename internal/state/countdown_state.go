// internal/state/countdown_state.go
package state

import (
	"math"

	"go-target-rush/internal/app"
	"go-target-rush/internal/component"
	"go-target-rush/internal/config"
)

// CountdownState — обратный отсчет перед раундом
type CountdownState struct {
	sm        *StateMachine
	game      *app.Game
	remaining float64
}

func NewCountdownState(sm *StateMachine, g *app.Game) *CountdownState {
	return &CountdownState{sm: sm, game: g}
}

func (s *CountdownState) Phase() component.Phase { return component.PhaseCountdown }

func (s *CountdownState) Enter() {
	s.remaining = config.CountdownSeconds
	s.game.ClearEntities()
}

func (s *CountdownState) Update(deltaTime float64) {
	s.game.DrainClicks()
	s.remaining -= deltaTime
	if s.remaining <= 0 {
		s.remaining = 0
		s.sm.SetPending(component.PhasePlay)
	}
}

// Display — целое число секунд на экране: 3, 2, 1, затем 0.
func (s *CountdownState) Display() int {
	return int(math.Ceil(s.remaining))
}

func (s *CountdownState) Exit() {}
