package ui

// Rect is an axis aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ListWindow is the visible slice of a list taller than its bounds.
type ListWindow struct {
	Bounds    Rect
	RowHeight float64
	// RemoveWidth is the width of the remove button at the right of each row.
	RemoveWidth float64

	offset int
}

// Rows returns how many rows fit in the bounds.
func (l *ListWindow) Rows() int {
	if l.RowHeight <= 0 {
		return 0
	}
	return int(l.Bounds.H / l.RowHeight)
}

func (l *ListWindow) Offset() int { return l.offset }

// Scroll moves the window by delta rows and keeps it inside a list of total rows.
func (l *ListWindow) Scroll(delta, total int) {
	l.offset += delta
	l.Clamp(total)
}

// Clamp keeps the window inside a list of total rows.
func (l *ListWindow) Clamp(total int) {
	maxOffset := total - l.Rows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.offset > maxOffset {
		l.offset = maxOffset
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// Visible returns the half open range of row indexes currently shown.
func (l *ListWindow) Visible(total int) (first, last int) {
	l.Clamp(total)
	first = l.offset
	last = first + l.Rows()
	if last > total {
		last = total
	}
	return first, last
}

// RowRect returns the rectangle of row i, false when it is scrolled out.
func (l *ListWindow) RowRect(i int) (Rect, bool) {
	pos := i - l.offset
	if pos < 0 || pos >= l.Rows() {
		return Rect{}, false
	}
	return Rect{
		X: l.Bounds.X,
		Y: l.Bounds.Y + float64(pos)*l.RowHeight,
		W: l.Bounds.W,
		H: l.RowHeight,
	}, true
}

// RemoveRect returns the remove button of row i.
func (l *ListWindow) RemoveRect(i int) (Rect, bool) {
	row, ok := l.RowRect(i)
	if !ok {
		return Rect{}, false
	}
	return Rect{X: row.X + row.W - l.RemoveWidth, Y: row.Y, W: l.RemoveWidth, H: row.H}, true
}

// HitRemove returns the row whose remove button contains (x, y).
func (l *ListWindow) HitRemove(x, y float64, total int) (int, bool) {
	first, last := l.Visible(total)
	for i := first; i < last; i++ {
		if r, ok := l.RemoveRect(i); ok && r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}
