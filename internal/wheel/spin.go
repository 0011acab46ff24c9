package wheel

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	// DefaultFullTurns is how many extra revolutions every spin adds.
	DefaultFullTurns = 5
	// DefaultSpinDuration is the length of the spin tween.
	DefaultSpinDuration = 3000 * time.Millisecond
)

// Source picks the landing sector.
type Source interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// SectorAngle returns the width in degrees of one sector on a wheel of n entries.
func SectorAngle(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360 / float64(n)
}

// TargetAngle returns the rotation at which the pointer rests on the middle of
// sector index after the wheel has made turns more revolutions from current.
//
// The accumulated full turns of current are rounded up, so the result is
// always more than (turns-1)*360 degrees ahead of current.
func TargetAngle(current float64, index, n, turns int) float64 {
	sector := SectorAngle(n)
	base := math.Ceil(current/360) * 360
	return base + float64(turns)*360 - float64(index)*sector - sector/2
}

// NormalizeAngle maps a into [0, 360).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// SectorUnderPointer returns the index of the sector sitting under the fixed
// pointer at screen angle 0 when the wheel is rotated by angle. It returns -1
// for an empty wheel.
func SectorUnderPointer(angle float64, n int) int {
	if n <= 0 {
		return -1
	}
	idx := int(NormalizeAngle(-angle) / SectorAngle(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
