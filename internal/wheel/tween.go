package wheel

import (
	"math"
	"time"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return clamp01(t) }

const bezierEpsilon = 1e-7

// CubicBezier returns the easing described by a CSS style cubic Bézier with
// control points (x1, y1) and (x2, y2). x1 and x2 must lie in [0, 1].
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	curve := func(u, p1, p2 float64) float64 {
		v := 1 - u
		return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
	}
	slope := func(u, p1, p2 float64) float64 {
		v := 1 - u
		return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
	}

	return func(t float64) float64 {
		t = clamp01(t)
		if t == 0 || t == 1 {
			return t
		}

		// Newton first, it converges in a few steps on well formed curves.
		u := t
		for i := 0; i < 8; i++ {
			dx := curve(u, x1, x2) - t
			if math.Abs(dx) < bezierEpsilon {
				return curve(u, y1, y2)
			}
			d := slope(u, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			u = clamp01(u - dx/d)
		}

		lo, hi := 0.0, 1.0
		u = t
		for i := 0; i < 64; i++ {
			x := curve(u, x1, x2)
			if math.Abs(x-t) < bezierEpsilon {
				break
			}
			if x < t {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return curve(u, y1, y2)
	}
}

// FastOutSlowIn accelerates quickly and settles slowly.
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// Tween interpolates from From to To over Duration.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Ease     Easing
}

// Progress returns elapsed/Duration clamped to [0, 1].
func (tw Tween) Progress(elapsed time.Duration) float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(tw.Duration))
}

// Value samples the tween at elapsed.
func (tw Tween) Value(elapsed time.Duration) float64 {
	p := tw.Progress(elapsed)
	if p >= 1 {
		return tw.To
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	return lerp(tw.From, tw.To, ease(p))
}

// Done reports whether elapsed has reached the end of the tween.
func (tw Tween) Done(elapsed time.Duration) bool {
	return elapsed >= tw.Duration
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
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
