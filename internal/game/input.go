package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/name-wheel/internal/ui"
)

// pointer is the mouse or the first touch for this tick.
type pointer struct {
	x, y         float64
	justPressed  bool
	justReleased bool
}

func (g *Game) readPointer() pointer {
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		return pointer{x: float64(x), y: float64(y), justPressed: true}
	}
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := inpututil.TouchPositionInPreviousTick(g.touchIDs[0])
		return pointer{x: float64(x), y: float64(y), justReleased: true}
	}

	x, y := ebiten.CursorPosition()
	return pointer{
		x:            float64(x),
		y:            float64(y),
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

type button struct {
	rect    ui.Rect
	label   string
	enabled bool

	hovered bool
	pressed bool
}

// update tracks hover and press state and reports a click: press and release
// both inside the button.
func (b *button) update(p pointer) bool {
	if !b.enabled {
		b.hovered, b.pressed = false, false
		return false
	}
	b.hovered = b.rect.Contains(p.x, p.y)
	if b.hovered && p.justPressed {
		b.pressed = true
	}
	if !p.justReleased {
		return false
	}
	clicked := b.pressed && b.hovered
	b.pressed = false
	return clicked
}

// updateTextInput feeds typed characters into the name field. Enter commits.
func (g *Game) updateTextInput() {
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	g.input.Insert(g.runes...)

	if repeatingKeyPressed(ebiten.KeyBackspace) {
		g.input.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.commitInput()
	}
}

// repeatingKeyPressed is true on the first tick of a press and then at a
// fixed interval while the key is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func (g *Game) updateListScroll(p pointer) {
	_, dy := ebiten.Wheel()
	if dy == 0 || !g.list.Bounds.Contains(p.x, p.y) {
		return
	}
	step := -1
	if dy < 0 {
		step = 1
	}
	g.list.Scroll(step, g.ctrl.Len())
}
