// internal/state/state.go
package state

import (
	"log"

	"go-target-rush/internal/app"
	"go-target-rush/internal/component"
	"go-target-rush/internal/event"
	"go-target-rush/internal/ui"
)

// State — интерфейс для всех состояний
type State interface {
	Phase() component.Phase
	Enter()
	Update(deltaTime float64)
	Exit()
}

// StateMachine — структура для управления состояниями.
// Переход, запрошенный во время кадра, применяется в начале следующего Update.
type StateMachine struct {
	game    *app.Game
	states  map[component.Phase]State
	current State
	pending component.Phase
	hasNext bool
}

// NewStateMachine создаёт машину состояний и входит в титульный экран
func NewStateMachine(g *app.Game) *StateMachine {
	sm := &StateMachine{game: g}
	sm.states = map[component.Phase]State{
		component.PhaseTitle:     NewTitleState(sm, g),
		component.PhaseCountdown: NewCountdownState(sm, g),
		component.PhasePlay:      NewPlayState(sm, g),
		component.PhaseGameOver:  NewGameOverState(sm, g),
	}
	sm.SetState(component.PhaseTitle)
	return sm
}

// Game возвращает сессию, которой управляет машина.
func (sm *StateMachine) Game() *app.Game {
	return sm.game
}

// SetState немедленно переключает состояние
func (sm *StateMachine) SetState(phase component.Phase) {
	next, ok := sm.states[phase]
	if !ok {
		log.Printf("state: unknown phase %v", phase)
		return
	}
	from := component.PhaseTitle
	if sm.current != nil {
		from = sm.current.Phase()
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = next
	sm.current.Enter()
	sm.game.EventDispatcher.Dispatch(event.Event{
		Type: event.PhaseChanged,
		Data: event.PhaseChange{From: from, To: phase},
	})
}

// SetPending запоминает переход до конца кадра. Последний запрос побеждает.
func (sm *StateMachine) SetPending(phase component.Phase) {
	sm.pending = phase
	sm.hasNext = true
}

// Pending возвращает запрошенный, но еще не примененный переход.
func (sm *StateMachine) Pending() (component.Phase, bool) {
	return sm.pending, sm.hasNext
}

// Current возвращает фазу текущего состояния.
func (sm *StateMachine) Current() component.Phase {
	return sm.current.Phase()
}

// Update применяет отложенный переход и обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.hasNext {
		sm.hasNext = false
		sm.SetState(sm.pending)
	}
	sm.game.BeginFrame()
	sm.current.Update(deltaTime)
}

// HandlePointerDown ставит клик в очередь. Кнопка звука обрабатывается сразу,
// но во время игры живая мишень под курсором важнее кнопки.
func (sm *StateMachine) HandlePointerDown(x, y float64) {
	onTarget := sm.Current() == component.PhasePlay && sm.game.TargetAt(x, y)
	if !onTarget && ui.MuteButton(sm.game.Bounds).IsClicked(x, y) {
		sm.game.ToggleMute()
		return
	}
	sm.game.QueueClick(x, y)
}

// HandleResize ставит новые размеры холста в очередь.
func (sm *StateMachine) HandleResize(w, h float64) error {
	return sm.game.QueueResize(w, h)
}

// ToggleMute переключает звук.
func (sm *StateMachine) ToggleMute() {
	sm.game.ToggleMute()
}

// Snapshot отдает рендеру состояние после обновления кадра.
func (sm *StateMachine) Snapshot() app.Snapshot {
	countdown := 0
	if cs, ok := sm.current.(*CountdownState); ok {
		countdown = cs.Display()
	}
	return sm.game.Snapshot(sm.current.Phase(), countdown)
}
