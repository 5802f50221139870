package system

import (
	"go-target-rush/internal/component"
	"go-target-rush/internal/defs"
	"go-target-rush/internal/entity"
	"go-target-rush/internal/utils"
)

// Spawner выбирает тип новой мишени и создает ее в свободном месте.
type Spawner struct {
	rng    *utils.PRNGService
	placer *Placer
	tuning defs.Tuning
	nextID int
}

// NewSpawner создает Spawner поверх общего генератора.
func NewSpawner(rng *utils.PRNGService, placer *Placer, tuning defs.Tuning) *Spawner {
	return &Spawner{rng: rng, placer: placer, tuning: tuning, nextID: 1}
}

// ChooseKind решает, кем будет следующая мишень в режиме игры.
// Бонус выпадает только когда есть что им исправлять.
func (s *Spawner) ChooseKind(c Counters) entity.Kind {
	if (c.Missed > 0 || c.Fails > 0) && s.rng.Chance(s.tuning.Spawn.BonusChance) {
		switch {
		case c.Fails > 0 && c.Missed == 0:
			return entity.KindBonusRed
		case c.Missed > 0 && c.Fails == 0:
			return entity.KindBonusGreen
		case s.rng.Chance(0.5):
			return entity.KindBonusRed
		default:
			return entity.KindBonusGreen
		}
	}
	if s.rng.Chance(c.PolygonFrequency) {
		return entity.KindPolygon
	}
	return entity.KindCircle
}

// Spawn создает мишень вида kind, не перекрывающую targets.
func (s *Spawner) Spawn(targets []*entity.Target, kind entity.Kind, level int, bounds component.Bounds) *entity.Target {
	p := entity.Params{Level: level, ScreenMin: bounds.Min(), Tuning: s.tuning.Target}
	radius := entity.SampleRadius(s.rng, p)
	pos, _ := s.placer.Place(targets, radius, bounds)
	t := entity.NewTarget(s.rng, pos.X, pos.Y, radius, kind, p)
	t.ID = s.nextID
	s.nextID++
	return t
}
