package entity

import (
	"fmt"
	"image/color"

	"go-target-rush/internal/component"
	"go-target-rush/internal/config"
)

// Bubble — всплывающая надпись с очками за попадание или промах.
type Bubble struct {
	Pos    component.Position
	Value  int
	Combo  int
	Colors []color.RGBA
	Size   float64
	Life   float64
	frame  int
}

// NewBubble создает надпись в точке pos. combo > 1 добавляет множитель к тексту.
func NewBubble(pos component.Position, value, combo int, screenMin float64) *Bubble {
	colors := config.BubbleColors
	if value < 0 {
		colors = config.PenaltyBubbleColors
	}
	size := screenMin * config.BubbleSizeFactor
	if size < 1 {
		size = 1
	}
	return &Bubble{
		Pos:    pos,
		Value:  value,
		Combo:  combo,
		Colors: colors,
		Size:   size,
		Life:   config.BubbleLifetime,
	}
}

// Update растит надпись и отнимает время жизни.
func (b *Bubble) Update(delta float64) {
	b.frame++
	b.Size *= config.BubbleGrowth
	b.Life -= delta
}

// IsExpired сообщает, истекло ли время жизни.
func (b *Bubble) IsExpired() bool {
	return b.Life <= 0
}

// IsCombo сообщает, нужно ли показывать множитель.
func (b *Bubble) IsCombo() bool {
	return b.Combo > 1
}

// Label — текст надписи.
func (b *Bubble) Label() string {
	text := fmt.Sprintf("%d", b.Value)
	if b.Value > 0 {
		text = "+" + text
	}
	if b.IsCombo() {
		text = fmt.Sprintf("%s x%d", text, b.Combo)
	}
	return text
}

// Color — текущий цвет из цикла.
func (b *Bubble) Color() color.RGBA {
	if len(b.Colors) == 0 {
		return config.TextLightColor
	}
	return b.Colors[b.frame%len(b.Colors)]
}
