package system

import (
	"log"

	"go-target-rush/internal/component"
	"go-target-rush/internal/config"
	"go-target-rush/internal/entity"
	"go-target-rush/internal/utils"
)

// Placer подбирает точку появления мишени, не пересекающуюся с уже живущими.
type Placer struct {
	rng      *utils.PRNGService
	attempts int
}

// NewPlacer создает Placer. attempts <= 0 означает config.PlacementAttempts.
func NewPlacer(rng *utils.PRNGService, attempts int) *Placer {
	if attempts <= 0 {
		attempts = config.PlacementAttempts
	}
	return &Placer{rng: rng, attempts: attempts}
}

// Place ищет центр круга радиуса radius, свободный от пересечений с targets.
// Если за отведенные попытки места не нашлось, возвращается последний
// кандидат и false: поле почти заполнено, цикл обязан завершиться.
func (p *Placer) Place(targets []*entity.Target, radius float64, bounds component.Bounds) (component.Position, bool) {
	margin := bounds.Min() * config.PlacementMargin
	var candidate component.Position
	for i := 0; i < p.attempts; i++ {
		candidate = component.Position{
			X: p.sample(margin, bounds.Width-margin),
			Y: p.sample(margin, bounds.Height-margin),
		}
		if isFree(targets, candidate, radius) {
			return candidate, true
		}
	}
	log.Printf("placement: no free spot after %d attempts, accepting overlap at (%.0f, %.0f)", p.attempts, candidate.X, candidate.Y)
	return candidate, false
}

func (p *Placer) sample(lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return p.rng.RangeFloat(lo, hi)
}

func isFree(targets []*entity.Target, pos component.Position, radius float64) bool {
	for _, t := range targets {
		if t.IsExpired() {
			continue
		}
		if t.Overlaps(pos.X, pos.Y, radius) {
			return false
		}
	}
	return true
}
