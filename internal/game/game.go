// Package game is the Ebitengine surface of the name wheel: one screen with
// the name input, the list, the spin button and the wheel itself.
package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/name-wheel/internal/config"
	"github.com/iburimskiy/name-wheel/internal/ui"
	"github.com/iburimskiy/name-wheel/internal/wheel"
)

// Sounds is the audio feedback of the wheel. *sound.Player implements it,
// including a nil player.
type Sounds interface {
	Tick()
	Chime()
	Level() float64
}

type Game struct {
	ctrl   *wheel.Controller
	player Sounds
	log    *slog.Logger

	// wheel
	drawing    wheel.Drawing
	renderOpts wheel.RenderOptions
	underPtr   int
	level      float64

	// widgets
	input      ui.TextField
	list       ui.ListWindow
	removeDown int // row whose remove button took the press, -1 if none
	addBtn     button
	importBtn  button
	spinBtn    button

	// input scratch
	runes    []rune
	touchIDs []ebiten.TouchID

	// painting
	fonts      *text.GoTextFaceSource
	whitePixel *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16

	frame   int
	lastErr error
}

// New builds the game around ctrl. player may be a nil *sound.Player for a
// silent game.
func New(cfg config.Config, ctrl *wheel.Controller, player Sounds, logger *slog.Logger) (*Game, error) {
	fonts, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	buttonWidth := float64(config.InputWidth-config.ButtonGap) / 2
	g := &Game{
		ctrl:   ctrl,
		player: player,
		log:    logger,
		renderOpts: wheel.RenderOptions{
			LabelRadius: cfg.Wheel.LabelRadius,
			LabelWidth:  cfg.Wheel.LabelWidth,
		},
		underPtr:   -1,
		removeDown: -1,
		input:      ui.TextField{MaxLen: config.InputMaxLen},
		list: ui.ListWindow{
			Bounds:      ui.Rect{X: config.Margin, Y: config.ListY, W: config.InputWidth, H: config.ListHeight},
			RowHeight:   config.ListRowHeight,
			RemoveWidth: config.ListRowHeight,
		},
		addBtn: button{
			rect:  ui.Rect{X: config.Margin, Y: config.ButtonY, W: buttonWidth, H: config.ButtonHeight},
			label: "Add",
		},
		importBtn: button{
			rect:  ui.Rect{X: config.Margin + buttonWidth + config.ButtonGap, Y: config.ButtonY, W: buttonWidth, H: config.ButtonHeight},
			label: "Import",
		},
		spinBtn: button{
			rect:  ui.Rect{X: config.Margin, Y: config.SpinY, W: config.InputWidth, H: config.SpinHeight},
			label: "Spin",
		},
		fonts:      fonts,
		whitePixel: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}

	ctrl.OnChange(g.onWheelChange)
	g.onWheelChange(ctrl.State())
	return g, nil
}

// onWheelChange re-lays out the wheel and ticks when a new sector reaches the pointer.
func (g *Game) onWheelChange(st wheel.State) {
	g.drawing = wheel.Render(st.Entries, st.Angle, g.renderOpts)
	g.list.Clamp(len(st.Entries))

	under := g.drawing.SectorAt(0)
	if st.Phase == wheel.Spinning && under != g.underPtr {
		g.player.Tick()
	}
	g.underPtr = under
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.frame++

	g.updateTextInput()

	spinning := g.ctrl.Spinning()
	g.addBtn.enabled = !spinning
	g.importBtn.enabled = !spinning
	g.spinBtn.enabled = g.ctrl.CanSpin()

	p := g.readPointer()
	if g.addBtn.update(p) {
		g.commitInput()
	}
	if g.importBtn.update(p) {
		if err := g.openImportDialog(); err != nil {
			g.lastErr = err
			g.log.Error("import names failed", "error", err)
		}
	}
	if g.spinBtn.update(p) {
		g.spin()
	}
	g.updateRemove(p, spinning)
	g.updateListScroll(p)

	dt := time.Second / time.Duration(ebiten.TPS())
	if g.ctrl.Update(dt) {
		sel, _ := g.ctrl.Selected()
		g.log.Info("spin finished", "selected", sel, "angle", g.ctrl.Angle())
		g.player.Chime()
	}
	g.level = g.player.Level()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// commitInput adds the typed name. Rejected input, blank or typed during a
// spin, stays in the field.
func (g *Game) commitInput() {
	if !g.ctrl.AddEntry(g.input.Text()) {
		return
	}
	name := strings.TrimSpace(g.input.Commit())
	g.list.Scroll(g.ctrl.Len(), g.ctrl.Len())
	g.log.Debug("entry added", "entry", name, "count", g.ctrl.Len())
}

// updateRemove removes a row when both press and release land on its remove
// button.
func (g *Game) updateRemove(p pointer, spinning bool) {
	if spinning {
		g.removeDown = -1
		return
	}
	if p.justPressed {
		g.removeDown = -1
		if i, ok := g.list.HitRemove(p.x, p.y, g.ctrl.Len()); ok {
			g.removeDown = i
		}
	}
	if !p.justReleased {
		return
	}
	down := g.removeDown
	g.removeDown = -1
	if i, ok := g.list.HitRemove(p.x, p.y, g.ctrl.Len()); ok && i == down {
		g.removeAt(i)
	}
}

func (g *Game) removeAt(i int) {
	if g.ctrl.RemoveAt(i) {
		g.log.Debug("entry removed", "row", i, "count", g.ctrl.Len())
	}
}

func (g *Game) spin() {
	if !g.ctrl.Spin() {
		return
	}
	st := g.ctrl.State()
	g.log.Info("spin started", "entries", len(st.Entries), "pending", st.Pending)
}
