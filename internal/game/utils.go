package game

import (
	"image/color"
	"math"
)

var (
	backgroundColor = color.RGBA{R: 250, G: 248, B: 255, A: 255}
	titleColor      = color.RGBA{R: 63, G: 81, B: 181, A: 255}
	textColor       = color.RGBA{R: 28, G: 27, B: 31, A: 255}
	mutedTextColor  = color.RGBA{R: 120, G: 118, B: 128, A: 255}
	resultColor     = color.RGBA{R: 0, G: 150, B: 136, A: 255}
	borderColor     = color.RGBA{R: 121, G: 116, B: 126, A: 255}
	pointerColor    = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	pointerFlash    = color.RGBA{R: 255, G: 210, B: 40, A: 255}
	removeColor     = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// buttonColors returns fill and border for a button state.
func buttonColors(enabled, hovered, pressed bool) (color.RGBA, color.RGBA) {
	switch {
	case !enabled:
		return color.RGBA{R: 220, G: 218, B: 225, A: 255}, color.RGBA{R: 200, G: 198, B: 205, A: 255}
	case pressed:
		return color.RGBA{R: 70, G: 55, B: 140, A: 255}, color.RGBA{R: 150, G: 140, B: 200, A: 255} // Pressed
	case hovered:
		return color.RGBA{R: 85, G: 68, B: 160, A: 255}, color.RGBA{R: 150, G: 140, B: 200, A: 255} // Hovered
	default:
		return color.RGBA{R: 103, G: 80, B: 164, A: 255}, color.RGBA{R: 150, G: 140, B: 200, A: 255} // Normal
	}
}

// mixColor blends a towards b by t in [0, 1].
func mixColor(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toRadians converts a screen angle (degrees clockwise from 12 o'clock) to
// the radians vector.Path expects (clockwise from 3 o'clock).
func toRadians(a float64) float32 {
	return float32((a - 90) * math.Pi / 180)
}
