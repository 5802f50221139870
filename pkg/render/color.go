// pkg/render/color.go
package render

import (
	"image/color"

	"go-target-rush/internal/config"
)

// Palette holds the colors the renderer needs besides the per-target ones.
type Palette struct {
	Background   color.RGBA
	TextLight    color.RGBA
	TextDim      color.RGBA
	Button       color.RGBA
	ButtonStroke color.RGBA
	Muted        color.RGBA
}

// DefaultPalette builds the palette from config.
func DefaultPalette() Palette {
	return Palette{
		Background:   config.BackgroundColor,
		TextLight:    config.TextLightColor,
		TextDim:      config.TextDimColor,
		Button:       config.ButtonColor,
		ButtonStroke: config.ButtonStroke,
		Muted:        config.MutedColor,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor scales alpha by k in [0, 1].
func FadeColor(c color.RGBA, k float64) color.RGBA {
	if k < 0 {
		k = 0
	} else if k > 1 {
		k = 1
	}
	// premultiplied: channels scale with alpha
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
