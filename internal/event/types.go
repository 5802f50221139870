package event

import "go-target-rush/internal/component"

const (
	TargetHit      EventType = "TargetHit"      // попадание по мишени, Data: HitResult из system
	CircleMissed   EventType = "CircleMissed"   // круг истек сам, Data: MissData из system
	LevelUp        EventType = "LevelUp"        // новый уровень, Data: int
	SessionStarted EventType = "SessionStarted" // начался раунд
	SessionEnded   EventType = "SessionEnded"   // раунд окончен, Data: Summary из system
	PhaseChanged   EventType = "PhaseChanged"   // смена экрана, Data: PhaseChange

	MusicStart EventType = "MusicStart"
	MusicStop  EventType = "MusicStop"
	MuteToggle EventType = "MuteToggle" // Data: bool, новое состояние
)

// PhaseChange — данные события PhaseChanged.
type PhaseChange struct {
	From component.Phase
	To   component.Phase
}
