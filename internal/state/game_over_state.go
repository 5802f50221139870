// internal/state/game_over_state.go
package state

import (
	"go-target-rush/internal/app"
	"go-target-rush/internal/component"
)

// GameOverState — экран окончания игры. Сессия сбрасывается один раз при входе.
type GameOverState struct {
	sm   *StateMachine
	game *app.Game
}

func NewGameOverState(sm *StateMachine, g *app.Game) *GameOverState {
	return &GameOverState{sm: sm, game: g}
}

func (s *GameOverState) Phase() component.Phase { return component.PhaseGameOver }

func (s *GameOverState) Enter() {
	s.game.EndSession()
	// клики, сделанные еще во время игры, не закрывают экран итогов
	s.game.DrainClicks()
}

func (s *GameOverState) Update(deltaTime float64) {
	if len(s.game.DrainClicks()) > 0 {
		s.sm.SetPending(component.PhaseTitle)
	}
}

func (s *GameOverState) Exit() {}
