package render

import (
	"fmt"
	"math"

	"go-target-rush/internal/entity"
	"go-target-rush/internal/system"
	"go-target-rush/internal/utils"
)

// Segment — отрезок или дуга одного куска мишени.
type Segment struct {
	Start, End float64 // углы дуги, радианы
	X0, Y0     float64 // концы отрезка многоугольника
	X1, Y1     float64
	Piece      int
}

// PieceArcs делит окружность мишени на куски. Каждый кусок занимает
// долю Sweep() своего сектора, начиная с фазы поворота.
func PieceArcs(t *entity.Target, frame int) []Segment {
	if t.Pieces <= 0 {
		return nil
	}
	slice := 2 * math.Pi / float64(t.Pieces)
	phase := t.Phase(frame)
	sweep := t.Sweep()

	arcs := make([]Segment, t.Pieces)
	for i := range arcs {
		start := phase + slice*float64(i)
		arcs[i] = Segment{Start: start, End: start + slice*sweep, Piece: i}
	}
	return arcs
}

// PolygonEdges возвращает стороны многоугольника. У подбитой мишени
// каждая сторона укорачивается к своей начальной вершине.
func PolygonEdges(t *entity.Target, frame int) []Segment {
	arcs := PieceArcs(t, frame)
	slice := 2 * math.Pi / float64(max(t.Pieces, 1))
	for i, a := range arcs {
		x0 := t.Pos.X + t.Radius*math.Cos(a.Start)
		y0 := t.Pos.Y + t.Radius*math.Sin(a.Start)
		x1 := t.Pos.X + t.Radius*math.Cos(a.Start+slice)
		y1 := t.Pos.Y + t.Radius*math.Sin(a.Start+slice)
		k := t.Sweep()
		arcs[i].X0, arcs[i].Y0 = x0, y0
		arcs[i].X1, arcs[i].Y1 = utils.Lerp(x0, x1, k), utils.Lerp(y0, y1, k)
	}
	return arcs
}

// HUDLines — строки счетчиков в левом верхнем углу.
func HUDLines(c system.Counters) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", c.Score),
		fmt.Sprintf("Fails: %d", c.Fails),
		fmt.Sprintf("Missed: %d", c.Missed),
		fmt.Sprintf("Level: %d", c.Level),
	}
	if c.Combo > 1 {
		lines = append(lines, fmt.Sprintf("Combo: x%d", c.Combo))
	}
	return lines
}

// GameOverLines — итог раунда на экране окончания игры.
func GameOverLines(s system.Summary) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Level: %d", s.Level),
		fmt.Sprintf("Max combo: %d", s.MaxCombo),
	}
	if s.NewRecord {
		lines = append(lines, "New high score!")
	} else {
		lines = append(lines, fmt.Sprintf("High score: %d", s.HighScore))
	}
	return lines
}

// CountdownLabel — текст отсчета, ноль показывается как GO.
func CountdownLabel(n int) string {
	if n <= 0 {
		return "GO!"
	}
	return fmt.Sprintf("%d", n)
}
