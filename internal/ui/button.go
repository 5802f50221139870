package ui

import "go-target-rush/internal/component"

// Rect — прямоугольник в координатах холста.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains проверяет, лежит ли точка внутри прямоугольника.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Center возвращает центр прямоугольника.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Button представляет собой кликабельную область с подписью.
type Button struct {
	Rect Rect
	Text string
}

// IsClicked проверяет, был ли клик по кнопке.
func (b Button) IsClicked(x, y float64) bool {
	return b.Rect.Contains(x, y)
}

// StartButton — кнопка старта на титульном экране, по центру нижней половины.
func StartButton(bounds component.Bounds) Button {
	w := bounds.Width * 0.3
	h := bounds.Min() * 0.12
	return Button{
		Rect: Rect{X: (bounds.Width - w) / 2, Y: bounds.Height*0.62 - h/2, Width: w, Height: h},
		Text: "START",
	}
}

// MuteButton — переключатель звука в правом верхнем углу.
func MuteButton(bounds component.Bounds) Button {
	size := bounds.Min() * 0.07
	margin := bounds.Min() * 0.02
	return Button{
		Rect: Rect{X: bounds.Width - size - margin, Y: margin, Width: size, Height: size},
		Text: "♪",
	}
}
