package system

import (
	"log"
	"math"

	"go-target-rush/internal/defs"
	"go-target-rush/internal/entity"
	"go-target-rush/internal/event"
)

// Counters — счетчики одной игровой сессии.
type Counters struct {
	Score            int
	HighScore        int
	Fails            int
	Missed           int
	Combo            int
	MaxCombo         int
	Level            int
	CircleCount      int
	SpawnFrequency   float64 // ms между появлениями
	PolygonFrequency float64 // вероятность многоугольника
}

// HitResult — очки и состояние комбо после попадания.
type HitResult struct {
	Outcome entity.Outcome
	Points  int
	Combo   int
	LevelUp bool
}

// MissData — данные события CircleMissed.
type MissData struct {
	Points int
}

// Summary — итог завершенной сессии для экрана окончания игры.
type Summary struct {
	Score     int
	Level     int
	MaxCombo  int
	HighScore int
	NewRecord bool
}

// ScoreTracker применяет правила очков, комбо и сложности к Counters.
type ScoreTracker struct {
	Counters
	tuning     defs.Tuning
	dispatcher *event.Dispatcher
}

// NewScoreTracker создает трекер с базовыми значениями и рекордом highScore.
func NewScoreTracker(tuning defs.Tuning, highScore int, dispatcher *event.Dispatcher) *ScoreTracker {
	s := &ScoreTracker{tuning: tuning, dispatcher: dispatcher}
	s.resetCounters()
	s.HighScore = highScore
	return s
}

func (s *ScoreTracker) resetCounters() {
	s.Score = 0
	s.Fails = 0
	s.Missed = 0
	s.Combo = 0
	s.MaxCombo = 0
	s.Level = 1
	s.CircleCount = 0
	s.SpawnFrequency = s.tuning.Spawn.BaseFrequencyMs
	s.PolygonFrequency = s.tuning.Spawn.BasePolygonFrequency
}

func (s *ScoreTracker) comboMultiplier() float64 {
	return float64(s.Combo) * s.tuning.Scoring.ComboStep
}

// ResolveHit превращает попадание в очки и обновляет счетчики.
func (s *ScoreTracker) ResolveHit(out entity.Outcome) HitResult {
	sc := s.tuning.Scoring
	res := HitResult{Outcome: out}

	switch out.Kind {
	case entity.KindCircle:
		base := math.Ceil(sc.BasePoints * out.Ratio)
		res.Points = int(math.Ceil(base * (1 + s.comboMultiplier())))
		if out.Ratio > sc.CleanRatio {
			s.Combo++
			if s.Combo > s.MaxCombo {
				s.MaxCombo = s.Combo
			}
		} else {
			s.Combo = 0
		}
		res.LevelUp = s.countCircle()

	case entity.KindBonusRed, entity.KindBonusGreen:
		res.Points = int(math.Ceil(sc.BasePoints * out.Ratio * (sc.BonusMultiplier + s.comboMultiplier())))
		if out.Kind == entity.KindBonusGreen {
			s.Missed = max(0, s.Missed-1)
		} else {
			s.Fails = max(0, s.Fails-1)
		}

	case entity.KindPolygon:
		res.Points = int(math.Ceil(sc.BasePoints * out.Ratio * (sc.PolygonMultiplier + s.comboMultiplier())))
		s.Combo = 0
		s.Fails++
	}

	s.Score += res.Points
	res.Combo = s.Combo
	s.dispatcher.Dispatch(event.Event{Type: event.TargetHit, Data: res})
	if res.LevelUp {
		s.dispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: s.Level})
	}
	return res
}

// countCircle считает попадание по кругу и поднимает уровень каждые hitsPerLevel·level кругов.
func (s *ScoreTracker) countCircle() bool {
	s.CircleCount++
	if s.CircleCount < s.tuning.Difficulty.HitsPerLevel*s.Level {
		return false
	}

	d := s.tuning.Difficulty
	sp := s.tuning.Spawn
	s.Level++
	s.CircleCount = 0
	s.SpawnFrequency *= d.FrequencyFactor - d.FrequencyFactorStep*float64(s.Level-2)
	if s.SpawnFrequency < sp.MinFrequencyMs {
		s.SpawnFrequency = sp.MinFrequencyMs
	}
	s.PolygonFrequency = math.Min(s.PolygonFrequency+sp.PolygonFrequencyStep, sp.MaxPolygonFrequency)
	log.Printf("level up: %d, spawn every %.0fms, polygon chance %.3f", s.Level, s.SpawnFrequency, s.PolygonFrequency)
	return true
}

// RegisterMiss учитывает круг, истекший без клика. Возвращает изменение счета.
func (s *ScoreTracker) RegisterMiss() int {
	penalty := -s.tuning.Scoring.MissPenalty
	s.Missed++
	s.Combo = 0
	s.Score += penalty
	s.dispatcher.Dispatch(event.Event{Type: event.CircleMissed, Data: MissData{Points: penalty}})
	return penalty
}

// IsGameOver проверяет условие окончания игры.
func (s *ScoreTracker) IsGameOver() bool {
	return s.Fails > s.tuning.Limits.MaxFails || s.Missed > s.tuning.Limits.MaxMissed
}

// ResetSpawnFrequency возвращает базовую частоту появления (начало раунда).
func (s *ScoreTracker) ResetSpawnFrequency() {
	s.SpawnFrequency = s.tuning.Spawn.BaseFrequencyMs
}

// Reset завершает сессию: обновляет рекорд и обнуляет счетчики.
// Повторный вызов оставляет счетчики в том же состоянии.
func (s *ScoreTracker) Reset() Summary {
	sum := Summary{
		Score:     s.Score,
		Level:     s.Level,
		MaxCombo:  s.MaxCombo,
		NewRecord: s.Score > s.HighScore,
	}
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	sum.HighScore = s.HighScore
	s.resetCounters()
	return sum
}
