// internal/state/title_state.go
package state

import (
	"go-target-rush/internal/app"
	"go-target-rush/internal/component"
	"go-target-rush/internal/config"
	"go-target-rush/internal/entity"
	"go-target-rush/internal/ui"
)

// TitleState — титульный экран с декоративными мишенями
type TitleState struct {
	sm   *StateMachine
	game *app.Game
}

func NewTitleState(sm *StateMachine, g *app.Game) *TitleState {
	return &TitleState{sm: sm, game: g}
}

func (s *TitleState) Phase() component.Phase { return component.PhaseTitle }

func (s *TitleState) Enter() {
	s.game.ClearEntities()
}

func (s *TitleState) Update(deltaTime float64) {
	start := ui.StartButton(s.game.Bounds)
	for _, c := range s.game.DrainClicks() {
		if start.IsClicked(c.X, c.Y) {
			s.game.ClearEntities()
			s.sm.SetPending(component.PhaseCountdown)
			return
		}
		s.game.PopAt(c.X, c.Y)
	}

	if s.game.SpawnDue(deltaTime, config.TitleSpawnInterval) {
		s.game.SpawnTarget(entity.KindCircle)
	}
	s.game.UpdateTargets(deltaTime, false)
	s.game.UpdateBubbles(deltaTime)
}

func (s *TitleState) Exit() {
	// Ничего не делаем при выходе
}
