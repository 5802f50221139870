// internal/state/play_state.go
package state

import (
	"go-target-rush/internal/app"
	"go-target-rush/internal/component"
	"go-target-rush/internal/entity"
)

// PlayState — основной игровой режим
type PlayState struct {
	sm   *StateMachine
	game *app.Game
}

func NewPlayState(sm *StateMachine, g *app.Game) *PlayState {
	return &PlayState{sm: sm, game: g}
}

func (s *PlayState) Phase() component.Phase { return component.PhasePlay }

func (s *PlayState) Enter() {
	s.game.StartSession()
	s.game.SpawnTarget(entity.KindCircle)
}

// Update: клики, появление новых мишеней, физика, проверка конца игры.
func (s *PlayState) Update(deltaTime float64) {
	for _, c := range s.game.DrainClicks() {
		s.game.ResolveClick(c.X, c.Y)
	}

	if s.game.SpawnDue(deltaTime, s.game.Score.SpawnFrequency) {
		kind := s.game.Spawner.ChooseKind(s.game.Score.Counters)
		s.game.SpawnTarget(kind)
	}

	s.game.UpdateTargets(deltaTime, true)
	s.game.UpdateBubbles(deltaTime)

	if s.game.Score.IsGameOver() {
		s.sm.SetPending(component.PhaseGameOver)
	}
}

func (s *PlayState) Exit() {}
