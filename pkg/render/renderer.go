package render

import (
	"image"
	"image/color"
	"log"
	"math"
	"strconv"

	"go-target-rush/internal/app"
	"go-target-rush/internal/assets"
	"go-target-rush/internal/component"
	"go-target-rush/internal/config"
	"go-target-rush/internal/entity"
	"go-target-rush/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

type align int

const (
	alignLeft align = iota
	alignCenter
)

// Renderer рисует снимок кадра: мишени, надписи, HUD и экраны.
type Renderer struct {
	fonts     *assets.FontManager
	palette   Palette
	strokeImg *ebiten.Image
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
}

func NewRenderer(fonts *assets.FontManager, palette Palette) *Renderer {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	return &Renderer{
		fonts:     fonts,
		palette:   palette,
		strokeImg: strokeImg,
		strokeVs:  make([]ebiten.Vertex, 0, 256),
		strokeIs:  make([]uint16, 0, 512),
	}
}

// Draw рисует весь кадр.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(r.palette.Background)

	for _, t := range snap.Targets {
		r.drawTarget(screen, t, snap.Frame)
	}
	for _, b := range snap.Bubbles {
		r.drawText(screen, b.Label(), b.Size, b.Pos.X, b.Pos.Y, b.Color(), alignCenter)
	}

	switch snap.Phase {
	case component.PhaseTitle:
		r.drawTitle(screen, snap)
	case component.PhaseCountdown:
		r.drawCountdown(screen, snap)
	case component.PhasePlay:
		r.drawHUD(screen, snap)
	case component.PhaseGameOver:
		r.drawGameOver(screen, snap)
	}

	r.drawMuteButton(screen, snap)
}

func (r *Renderer) drawTarget(screen *ebiten.Image, t *entity.Target, frame int) {
	if t.Radius <= 0 || len(t.Colors) == 0 {
		return
	}
	width := float32(t.LineWeight)

	if t.Kind == entity.KindPolygon {
		for _, e := range PolygonEdges(t, frame) {
			var path vector.Path
			path.MoveTo(float32(e.X0), float32(e.Y0))
			path.LineTo(float32(e.X1), float32(e.Y1))
			r.strokePath(screen, &path, width, t.Colors[e.Piece%len(t.Colors)])
		}
		return
	}

	x, y, radius := float32(t.Pos.X), float32(t.Pos.Y), float32(t.Radius)
	for _, a := range PieceArcs(t, frame) {
		var path vector.Path
		path.MoveTo(x+radius*float32(math.Cos(a.Start)), y+radius*float32(math.Sin(a.Start)))
		path.Arc(x, y, radius, float32(a.Start), float32(a.End), vector.Clockwise)
		r.strokePath(screen, &path, width, t.Colors[a.Piece%len(t.Colors)])
	}
}

func (r *Renderer) strokePath(screen *ebiten.Image, path *vector.Path, width float32, clr color.RGBA) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	for i := range r.strokeVs {
		r.strokeVs[i].SrcX = 0
		r.strokeVs[i].SrcY = 0
		r.strokeVs[i].ColorR = float32(clr.R) / 255
		r.strokeVs[i].ColorG = float32(clr.G) / 255
		r.strokeVs[i].ColorB = float32(clr.B) / 255
		r.strokeVs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap app.Snapshot) {
	screenMin := snap.Bounds.Min()
	size := screenMin * config.FontSizeFactor
	for i, line := range HUDLines(snap.Counters) {
		y := screenMin * 0.07 * float64(i+1)
		r.drawText(screen, line, size, config.HUDMargin, y, r.palette.TextLight, alignLeft)
	}
}

func (r *Renderer) drawTitle(screen *ebiten.Image, snap app.Snapshot) {
	b := snap.Bounds
	r.drawText(screen, config.WindowTitle, b.Min()*config.TitleFontSizeFactor, b.Width/2, b.Height*0.35, r.palette.TextLight, alignCenter)

	start := ui.StartButton(b)
	r.drawButton(screen, start, r.palette.Button)

	hint := "click the circles before they vanish"
	if snap.Counters.HighScore > 0 {
		hint = "high score: " + strconv.Itoa(snap.Counters.HighScore)
	}
	r.drawText(screen, hint, b.Min()*config.FontSizeFactor*0.8, b.Width/2, b.Height*0.78, r.palette.TextDim, alignCenter)
}

func (r *Renderer) drawCountdown(screen *ebiten.Image, snap app.Snapshot) {
	b := snap.Bounds
	r.drawText(screen, CountdownLabel(snap.Countdown), b.Min()*config.TitleFontSizeFactor*1.5, b.Width/2, b.Height/2, r.palette.TextLight, alignCenter)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, snap app.Snapshot) {
	b := snap.Bounds
	r.drawText(screen, "GAME OVER", b.Min()*config.TitleFontSizeFactor, b.Width/2, b.Height*0.3, r.palette.TextLight, alignCenter)

	size := b.Min() * config.FontSizeFactor
	for i, line := range GameOverLines(snap.Summary) {
		y := b.Height*0.45 + size*1.6*float64(i)
		r.drawText(screen, line, size, b.Width/2, y, r.palette.TextLight, alignCenter)
	}
	r.drawText(screen, "click to continue", size*0.8, b.Width/2, b.Height*0.85, r.palette.TextDim, alignCenter)
}

func (r *Renderer) drawMuteButton(screen *ebiten.Image, snap app.Snapshot) {
	btn := ui.MuteButton(snap.Bounds)
	fill := r.palette.Button
	if snap.Muted {
		fill = r.palette.Muted
	}
	r.drawButton(screen, btn, fill)
}

func (r *Renderer) drawButton(screen *ebiten.Image, btn ui.Button, fill color.RGBA) {
	rc := btn.Rect
	vector.DrawFilledRect(screen, float32(rc.X), float32(rc.Y), float32(rc.Width), float32(rc.Height), fill, true)
	vector.StrokeRect(screen, float32(rc.X), float32(rc.Y), float32(rc.Width), float32(rc.Height), 2, r.palette.ButtonStroke, true)
	cx, cy := rc.Center()
	r.drawText(screen, btn.Text, rc.Height*0.5, cx, cy, r.palette.TextLight, alignCenter)
}

// drawText рисует строку, y задает ее вертикальный центр.
func (r *Renderer) drawText(screen *ebiten.Image, s string, size, x, y float64, clr color.Color, a align) {
	face, err := r.fonts.Face(size)
	if err != nil {
		log.Printf("render: %v", err)
		return
	}
	bounds := text.BoundString(face, s)
	px := int(x)
	if a == alignCenter {
		px -= bounds.Dx() / 2
	}
	py := int(y) + textBaselineOffset(face, bounds)

	if c, ok := clr.(color.RGBA); ok {
		text.Draw(screen, s, face, px+1, py+1, DarkenColor(FadeColor(c, 0.6)))
	}
	text.Draw(screen, s, face, px, py, clr)
}

func textBaselineOffset(face font.Face, bounds image.Rectangle) int {
	if bounds.Empty() {
		return face.Metrics().Ascent.Ceil() / 2
	}
	return -(bounds.Min.Y + bounds.Max.Y) / 2
}
