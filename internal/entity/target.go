package entity

import (
	"image/color"
	"math"

	"go-target-rush/internal/component"
	"go-target-rush/internal/config"
	"go-target-rush/internal/defs"
	"go-target-rush/internal/utils"
)

// Kind — тип мишени
type Kind int

const (
	KindCircle Kind = iota
	KindPolygon
	KindBonusRed
	KindBonusGreen
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	case KindBonusRed:
		return "bonus-red"
	case KindBonusGreen:
		return "bonus-green"
	}
	return "unknown"
}

// IsBonus сообщает, является ли мишень бонусной.
func (k Kind) IsBonus() bool {
	return k == KindBonusRed || k == KindBonusGreen
}

// State — стадия жизни мишени
type State int

const (
	Alive   State = iota // кликабельна, сжимается
	Dead                 // подбита, проигрывается схлопывание
	Expired              // можно удалять
)

// Params — внешние величины, нужные при создании мишени.
type Params struct {
	Level     int
	ScreenMin float64
	Tuning    defs.TargetTuning
}

// Target — сжимающаяся мишень: круг, многоугольник или бонус.
type Target struct {
	ID            int
	Kind          Kind
	Pos           component.Position
	Vel           component.Velocity
	Radius        float64
	InitialRadius float64
	ShrinkRate    float64
	Direction     float64
	RotationSpeed float64
	Pieces        int
	Colors        []color.RGBA
	LineWeight    float64
	State         State
	Collapse      float64
}

// Outcome — результат попадания, который превращается в очки снаружи.
type Outcome struct {
	ID    int
	Kind  Kind
	Ratio float64
	Pos   component.Position
}

// SampleRadius выбирает радиус новой мишени.
func SampleRadius(rng *utils.PRNGService, p Params) float64 {
	r := rng.RangeFloat(p.ScreenMin*p.Tuning.MinRadius, p.ScreenMin*p.Tuning.MaxRadius)
	if r < 1 {
		r = 1
	}
	return r
}

// NewTarget создает мишень в точке (x, y) с заранее выбранным радиусом.
func NewTarget(rng *utils.PRNGService, x, y, radius float64, kind Kind, p Params) *Target {
	if radius <= 0 {
		radius = 1
	}
	tt := p.Tuning
	level := float64(p.Level)

	t := &Target{
		Kind:          kind,
		Pos:           component.Position{X: x, Y: y},
		Radius:        radius,
		InitialRadius: radius,
		Direction:     rng.Sign(),
		RotationSpeed: float64(rng.RangeInt(tt.MinRotationSpeed, tt.MaxRotationSpeed)),
		LineWeight:    rng.RangeFloat(p.ScreenMin*tt.MinLineWeight, p.ScreenMin*tt.MaxLineWeight),
		State:         Alive,
		Collapse:      1,
	}
	if t.RotationSpeed <= 0 {
		t.RotationSpeed = 1
	}
	if t.LineWeight < 1 {
		t.LineWeight = 1
	}

	shrink := rng.RangeFloat(tt.MinShrink+tt.ShrinkLevelStep*level, tt.MaxShrink+tt.ShrinkLevelStep*level) * radius
	if kind.IsBonus() {
		shrink *= rng.RangeFloat(tt.BonusShrinkMin, tt.BonusShrinkMax)
	}
	// не быстрее радиуса в секунду: мишень живет не меньше секунды
	t.ShrinkRate = utils.Clamp(shrink, radius*0.01, radius)

	if p.Level >= tt.DriftStartLevel {
		chance := tt.DriftBaseChance + tt.DriftChanceStep*float64(p.Level-tt.DriftStartLevel)
		if rng.Chance(chance) {
			lo := p.ScreenMin * tt.DriftMinSpeed
			hi := p.ScreenMin * (tt.DriftMaxSpeed + tt.DriftSpeedStep*level)
			t.Vel = component.Velocity{
				X: rng.RangeFloat(lo, hi) * rng.Sign(),
				Y: rng.RangeFloat(lo, hi) * rng.Sign(),
			}
		}
	}

	t.Pieces, t.Colors = piecesFor(rng, kind)
	return t
}

func piecesFor(rng *utils.PRNGService, kind Kind) (int, []color.RGBA) {
	var palette []color.RGBA
	pieces := config.CirclePieces
	switch kind {
	case KindPolygon:
		pieces = rng.RangeInt(config.PolygonMinSides, config.PolygonMaxSides+1)
	case KindBonusRed:
		palette = config.BonusRedColors
	case KindBonusGreen:
		palette = config.BonusGreenColors
	}

	colors := make([]color.RGBA, pieces)
	for i := range colors {
		if palette != nil {
			colors[i] = palette[i%len(palette)]
		} else {
			colors[i] = rng.Color(config.ColorChannelMin, config.ColorChannelMax)
		}
	}
	return pieces, colors
}

// Update продвигает мишень на delta секунд. Возвращает true, если
// непойманный круг истек сам: это промах, и его учитывает вызывающий.
func (t *Target) Update(delta float64, frame int, bounds component.Bounds) bool {
	switch t.State {
	case Expired:
		return false
	case Dead:
		t.Collapse -= config.CollapseSpeed * delta
		if t.Collapse <= 0 {
			t.Collapse = 0
			t.State = Expired
		}
		return false
	}

	t.Radius -= t.ShrinkRate * delta
	if t.Radius <= 0 {
		t.Radius = 0
		t.Collapse = 0
		t.State = Expired
		return t.Kind == KindCircle
	}

	if !t.Vel.IsZero() {
		t.Pos.X += t.Vel.X * delta
		t.Pos.Y += t.Vel.Y * delta
		// отражаем только движение наружу, иначе мишень за краем дрожит
		if t.Pos.X < t.Radius && t.Vel.X < 0 || t.Pos.X > bounds.Width-t.Radius && t.Vel.X > 0 {
			t.Vel.X = -t.Vel.X
		}
		if t.Pos.Y < t.Radius && t.Vel.Y < 0 || t.Pos.Y > bounds.Height-t.Radius && t.Vel.Y > 0 {
			t.Vel.Y = -t.Vel.Y
		}
	}

	t.LineWeight *= 1 + 0.02*math.Sin(float64(frame)/10)
	return false
}

// Hit проверяет попадание в точку (x, y). Попасть можно только в живую мишень.
func (t *Target) Hit(x, y float64) (Outcome, bool) {
	if !t.Contains(x, y) {
		return Outcome{}, false
	}

	ratio := 0.0
	if t.InitialRadius > 0 {
		ratio = t.Radius / t.InitialRadius
	}
	t.State = Dead
	t.Collapse = 1
	return Outcome{ID: t.ID, Kind: t.Kind, Ratio: ratio, Pos: t.Pos}, true
}

// Contains проверяет, что точка внутри живой мишени. Состояние не меняется.
func (t *Target) Contains(x, y float64) bool {
	return t.State == Alive && utils.DistSq(x, y, t.Pos.X, t.Pos.Y) < t.Radius*t.Radius
}

// Pop убивает мишень без подсчета очков (декоративные мишени титульного экрана).
func (t *Target) Pop(x, y float64) bool {
	_, ok := t.Hit(x, y)
	return ok
}

// Overlaps сообщает, пересекается ли круг (x, y, r) с описанной окружностью мишени.
func (t *Target) Overlaps(x, y, r float64) bool {
	sum := t.Radius + r
	return utils.DistSq(x, y, t.Pos.X, t.Pos.Y) < sum*sum
}

// Sweep — доля сектора каждого куска: 1 у живой, прогресс схлопывания у подбитой.
func (t *Target) Sweep() float64 {
	if t.State == Alive {
		return 1
	}
	return t.Collapse
}

// Phase — угол поворота мишени на кадре frame.
// Угол приводится к [-π, π], чтобы не терять точность в float32 при отрисовке.
func (t *Target) Phase(frame int) float64 {
	return utils.NormalizeAngle(t.Direction * float64(frame) / t.RotationSpeed)
}

// IsExpired сообщает, можно ли удалить мишень.
func (t *Target) IsExpired() bool {
	return t.State == Expired
}
