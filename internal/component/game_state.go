package component

// Phase — текущий экран игры
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseCountdown
	PhasePlay
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "TITLESCREEN"
	case PhaseCountdown:
		return "COUNTDOWN"
	case PhasePlay:
		return "PLAY"
	case PhaseGameOver:
		return "GAMEOVER"
	}
	return "UNKNOWN"
}
