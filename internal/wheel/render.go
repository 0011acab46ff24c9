package wheel

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Angles in a Drawing are degrees measured clockwise from 12 o'clock, where
// the fixed pointer sits.

// Wedge is the pie slice of one entry, in wheel coordinates.
type Wedge struct {
	Index int
	Start float64
	Sweep float64
	Color color.RGBA
}

// Divider is a radial line on a sector boundary, in wheel coordinates.
type Divider struct {
	Angle float64
}

// Label is an entry's text placed at the middle of its wedge, Radius being a
// fraction of the wheel radius.
type Label struct {
	Index  int
	Text   string
	Angle  float64
	Radius float64
}

// Drawing is everything needed to paint the wheel.
type Drawing struct {
	Rotation float64
	Wedges   []Wedge
	Dividers []Divider
	Labels   []Label
}

// Empty reports whether there is nothing to paint.
func (d Drawing) Empty() bool {
	return len(d.Wedges) == 0 && len(d.Dividers) == 0 && len(d.Labels) == 0
}

// Screen converts a wheel angle to a screen angle in [0, 360).
func (d Drawing) Screen(a float64) float64 {
	return NormalizeAngle(a + d.Rotation)
}

// SectorAt returns the index of the wedge covering screen angle a, or -1.
func (d Drawing) SectorAt(a float64) int {
	return SectorUnderPointer(d.Rotation-a, len(d.Wedges))
}

// RenderOptions tunes Render. Zero values select the defaults.
type RenderOptions struct {
	// LabelRadius is the radial position of labels as a fraction of the radius.
	LabelRadius float64
	// LabelWidth truncates labels to this many terminal cells.
	LabelWidth int
	// Palette colors wedge i of n.
	Palette func(i, n int) color.RGBA
}

const (
	DefaultLabelRadius = 0.5
	DefaultLabelWidth  = 14
)

// Render lays out the wheel for entries rotated by angle. It has no state and
// returns an empty Drawing for an empty list.
func Render(entries []string, angle float64, opts RenderOptions) Drawing {
	d := Drawing{Rotation: angle}
	n := len(entries)
	if n == 0 {
		return d
	}
	if opts.LabelRadius <= 0 {
		opts.LabelRadius = DefaultLabelRadius
	}
	if opts.LabelWidth <= 0 {
		opts.LabelWidth = DefaultLabelWidth
	}
	if opts.Palette == nil {
		opts.Palette = HuePalette
	}

	sweep := SectorAngle(n)
	d.Wedges = make([]Wedge, 0, n)
	d.Dividers = make([]Divider, 0, n)
	d.Labels = make([]Label, 0, n)
	for i, entry := range entries {
		start := float64(i) * sweep
		d.Wedges = append(d.Wedges, Wedge{Index: i, Start: start, Sweep: sweep, Color: opts.Palette(i, n)})
		d.Dividers = append(d.Dividers, Divider{Angle: start})
		d.Labels = append(d.Labels, Label{
			Index:  i,
			Text:   runewidth.Truncate(entry, opts.LabelWidth, "…"),
			Angle:  start + sweep/2,
			Radius: opts.LabelRadius,
		})
	}
	return d
}

// HuePalette spreads wedge colors evenly around the hue circle.
func HuePalette(i, n int) color.RGBA {
	if n <= 0 {
		n = 1
	}
	c := colorful.Hsv(float64(i)*360/float64(n), 0.55, 0.8)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Polar returns the screen point at distance r from (cx, cy) in direction a.
func Polar(cx, cy, r, a float64) (float64, float64) {
	rad := a * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}
