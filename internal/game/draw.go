package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mattn/go-runewidth"

	"github.com/iburimskiy/name-wheel/internal/config"
	"github.com/iburimskiy/name-wheel/internal/ui"
	"github.com/iburimskiy/name-wheel/internal/wheel"
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawText(screen, "Name Wheel", 26, config.WindowWidth/2, 34, titleColor, text.AlignCenter)

	g.drawInput(screen)
	g.drawButton(screen, &g.addBtn)
	g.drawButton(screen, &g.importBtn)

	g.drawText(screen, "Names added:", 18, config.Margin, config.ListY-14, textColor, text.AlignStart)
	g.drawList(screen)

	g.drawButton(screen, &g.spinBtn)

	g.drawWheel(screen)
	g.drawPointer(screen)
	g.drawResult(screen)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, config.WindowHeight-20)
	}
}

// drawText draws s with its vertical center at y.
func (g *Game) drawText(dst *ebiten.Image, s string, size, x, y float64, clr color.Color, align text.Align) {
	face := &text.GoTextFace{Source: g.fonts, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

func (g *Game) drawInput(screen *ebiten.Image) {
	r := ui.Rect{X: config.InputX, Y: config.InputY, W: config.InputWidth, H: config.InputHeight}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), color.White, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, borderColor, false)

	_, cy := r.Center()
	if g.input.Len() == 0 {
		g.drawText(screen, "Type a name", 16, r.X+10, cy, mutedTextColor, text.AlignStart)
	}

	s := g.input.Text()
	if (g.frame/30)%2 == 0 {
		s += "|"
	}
	g.drawText(screen, s, 16, r.X+10, cy, textColor, text.AlignStart)
}

func (g *Game) drawButton(screen *ebiten.Image, b *button) {
	bg, border := buttonColors(b.enabled, b.hovered, b.pressed)
	r := b.rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, border, false)

	fg := color.Color(color.White)
	if !b.enabled {
		fg = mutedTextColor
	}
	cx, cy := r.Center()
	g.drawText(screen, b.label, 18, cx, cy, fg, text.AlignCenter)
}

const listNameWidth = 40

func (g *Game) drawList(screen *ebiten.Image) {
	total := g.ctrl.Len()
	b := g.list.Bounds
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, borderColor, false)

	names := g.ctrl.Entries()
	first, last := g.list.Visible(total)
	for i := first; i < last; i++ {
		row, _ := g.list.RowRect(i)
		_, cy := row.Center()
		g.drawText(screen, runewidth.Truncate(names[i], listNameWidth, "…"), 16, row.X+10, cy, textColor, text.AlignStart)

		rm, _ := g.list.RemoveRect(i)
		x0, y0 := float32(rm.X+10), float32(rm.Y+10)
		x1, y1 := float32(rm.X+rm.W-10), float32(rm.Y+rm.H-10)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, removeColor, true)
		vector.StrokeLine(screen, x0, y1, x1, y0, 2, removeColor, true)

		if i+1 < last {
			y := float32(row.Y + row.H)
			vector.StrokeLine(screen, float32(row.X+4), y, float32(row.X+row.W-4), y, 1, color.RGBA{R: 230, G: 228, B: 235, A: 255}, false)
		}
	}

	// scrollbar
	if rows := g.list.Rows(); total > rows {
		h := b.H * float64(rows) / float64(total)
		y := b.Y + (b.H-h)*float64(g.list.Offset())/float64(total-rows)
		vector.DrawFilledRect(screen, float32(b.X+b.W-3), float32(y), 3, float32(h), borderColor, false)
	}
}

func (g *Game) drawWheel(screen *ebiten.Image) {
	cx, cy, r := float64(config.WheelCenterX), float64(config.WheelCenterY), float64(config.WheelRadius)
	d := g.drawing
	if d.Empty() {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 2, borderColor, true)
		g.drawText(screen, "Add names to spin the wheel", 16, cx, cy, mutedTextColor, text.AlignCenter)
		return
	}

	if len(d.Wedges) == 1 {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), d.Wedges[0].Color, true)
	} else {
		for _, w := range d.Wedges {
			g.fillWedge(screen, cx, cy, r, d.Screen(w.Start), w.Sweep, w.Color)
		}
	}

	for _, dv := range d.Dividers {
		x, y := wheel.Polar(cx, cy, r, d.Screen(dv.Angle))
		vector.StrokeLine(screen, float32(cx), float32(cy), float32(x), float32(y), 3, color.White, true)
	}

	for _, l := range d.Labels {
		x, y := wheel.Polar(cx, cy, r*l.Radius, d.Screen(l.Angle))
		g.drawText(screen, l.Text, 15, x, y, color.White, text.AlignCenter)
	}

	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), 3, color.White, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 8, color.White, true)
}

// fillWedge fills the pie slice starting at screen angle start.
func (g *Game) fillWedge(screen *ebiten.Image, cx, cy, r, start, sweep float64, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(cx), float32(cy))
	path.Arc(float32(cx), float32(cy), float32(r), toRadians(start), toRadians(start+sweep), vector.Clockwise)
	path.Close()

	g.fillPath(screen, &path, clr)
}

// fillPath fills path with a solid color.
func (g *Game) fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	g.vertices, g.indices = path.AppendVerticesAndIndicesForFilling(g.vertices[:0], g.indices[:0])
	for i := range g.vertices {
		v := &g.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(clr.R) / 255
		v.ColorG = float32(clr.G) / 255
		v.ColorB = float32(clr.B) / 255
		v.ColorA = 1
	}
	screen.DrawTriangles(g.vertices, g.indices, g.whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawPointer draws the fixed triangle at 12 o'clock, flashing with the sound level.
func (g *Game) drawPointer(screen *ebiten.Image) {
	if g.drawing.Empty() {
		return
	}
	const half = config.PointerSize / 2
	cx := float32(config.WheelCenterX)
	top := float32(config.WheelCenterY - config.WheelRadius - 18)

	var path vector.Path
	path.MoveTo(cx-half, top)
	path.LineTo(cx+half, top)
	path.LineTo(cx, top+config.PointerSize)
	path.Close()

	g.fillPath(screen, &path, mixColor(pointerColor, pointerFlash, g.level))
}

func (g *Game) drawResult(screen *ebiten.Image) {
	sel, ok := g.ctrl.Selected()
	if !ok {
		return
	}
	g.drawText(screen, "Selected name:", 18, config.WindowWidth/2, config.ResultY, mutedTextColor, text.AlignCenter)
	g.drawText(screen, sel, 28, config.WindowWidth/2, config.ResultY+34, resultColor, text.AlignCenter)
}
