// Package wheel holds the name wheel state: the entries, the accumulated
// rotation of the wheel graphic and the result of the last spin.
package wheel

import (
	"slices"
	"strings"
	"time"
)

// Phase is the spin state of the controller.
type Phase int

const (
	Idle Phase = iota
	Spinning
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	default:
		return "unknown"
	}
}

// State is a snapshot of the controller handed to change observers.
type State struct {
	Entries []string
	Angle   float64
	Phase   Phase

	// Selected is valid only when HasSelection is set.
	Selected     string
	HasSelection bool

	// Pending is the index the wheel is heading to while spinning, -1 otherwise.
	Pending int
}

// Option configures a Controller.
type Option func(*Controller)

// WithSource replaces the random source used to pick the landing sector.
func WithSource(src Source) Option {
	return func(c *Controller) {
		if src != nil {
			c.src = src
		}
	}
}

// WithFullTurns sets the number of revolutions added by each spin.
func WithFullTurns(turns int) Option {
	return func(c *Controller) {
		if turns > 0 {
			c.turns = turns
		}
	}
}

// WithSpinDuration sets the length of the spin animation.
func WithSpinDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithEasing sets the easing curve of the spin animation.
func WithEasing(e Easing) Option {
	return func(c *Controller) {
		if e != nil {
			c.ease = e
		}
	}
}

type spinTask struct {
	tween   Tween
	index   int
	elapsed time.Duration
}

// Controller owns the entry list, the wheel rotation and the selection.
// It is not safe for concurrent use; drive it from the UI loop.
type Controller struct {
	entries      []string
	angle        float64
	selected     string
	hasSelection bool

	src      Source
	turns    int
	duration time.Duration
	ease     Easing

	spin      *spinTask
	observers []func(State)
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		src:      globalSource{},
		turns:    DefaultFullTurns,
		duration: DefaultSpinDuration,
		ease:     FastOutSlowIn,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers fn to be called with a fresh snapshot after every mutation.
func (c *Controller) OnChange(fn func(State)) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

// AddEntry appends the trimmed text. Blank input and calls made while a spin
// is in flight are ignored.
func (c *Controller) AddEntry(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || c.spin != nil {
		return false
	}
	c.entries = append(c.entries, text)
	c.clearSelection()
	c.notify()
	return true
}

// RemoveEntry deletes the first entry equal to entry.
func (c *Controller) RemoveEntry(entry string) bool {
	return c.RemoveAt(slices.Index(c.entries, entry))
}

// RemoveAt deletes the entry at row i.
func (c *Controller) RemoveAt(i int) bool {
	if c.spin != nil || i < 0 || i >= len(c.entries) {
		return false
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	c.clearSelection()
	c.notify()
	return true
}

// Spin picks a random entry and starts rotating the wheel towards it. It
// returns false when the wheel is empty or already spinning.
func (c *Controller) Spin() bool {
	if !c.CanSpin() {
		return false
	}
	n := len(c.entries)
	index := c.src.IntN(n)
	c.spin = &spinTask{
		tween: Tween{
			From:     c.angle,
			To:       TargetAngle(c.angle, index, n, c.turns),
			Duration: c.duration,
			Ease:     c.ease,
		},
		index: index,
	}
	c.notify()
	return true
}

// Update advances an in-flight spin by dt. It returns true on the tick the
// spin completes and the selection is recorded.
func (c *Controller) Update(dt time.Duration) bool {
	if c.spin == nil {
		return false
	}
	s := c.spin
	s.elapsed += dt
	c.angle = s.tween.Value(s.elapsed)
	if !s.tween.Done(s.elapsed) {
		c.notify()
		return false
	}

	c.angle = s.tween.To
	c.selected = c.entries[s.index]
	c.hasSelection = true
	c.spin = nil
	c.notify()
	return true
}

// CanSpin reports whether Spin would start a new spin.
func (c *Controller) CanSpin() bool {
	return c.spin == nil && len(c.entries) > 0
}

func (c *Controller) Spinning() bool { return c.spin != nil }

func (c *Controller) Len() int { return len(c.entries) }

func (c *Controller) Angle() float64 { return c.angle }

// Entries returns a copy of the entry list.
func (c *Controller) Entries() []string { return slices.Clone(c.entries) }

// Selected returns the entry chosen by the last completed spin.
func (c *Controller) Selected() (string, bool) {
	return c.selected, c.hasSelection
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	st := State{
		Entries:      slices.Clone(c.entries),
		Angle:        c.angle,
		Phase:        Idle,
		Selected:     c.selected,
		HasSelection: c.hasSelection,
		Pending:      -1,
	}
	if c.spin != nil {
		st.Phase = Spinning
		st.Pending = c.spin.index
	}
	return st
}

func (c *Controller) clearSelection() {
	c.selected = ""
	c.hasSelection = false
}

func (c *Controller) notify() {
	if len(c.observers) == 0 {
		return
	}
	st := c.State()
	for _, fn := range c.observers {
		fn(st)
	}
}
