package wheel

import (
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixedSource int

func (s fixedSource) IntN(n int) int { return int(s) % n }

func finishSpin(t *testing.T, c *Controller) {
	t.Helper()
	require.True(t, c.Spinning())
	require.True(t, c.Update(DefaultSpinDuration))
	require.False(t, c.Spinning())
}

func TestAddEntryTrimsAndAppends(t *testing.T) {
	c := NewController()
	for i, in := range []string{"Ana", "  Bruno ", "\tCarla\n", "Ana"} {
		before := c.Len()
		require.True(t, c.AddEntry(in))
		require.Equal(t, before+1, c.Len())
		require.Equal(t, []string{"Ana", "Bruno", "Carla", "Ana"}[i], c.Entries()[i])
	}
}

func TestAddEntryIgnoresBlank(t *testing.T) {
	c := NewController()
	require.False(t, c.AddEntry(""))
	require.False(t, c.AddEntry("   "))
	require.False(t, c.AddEntry("\t\n"))
	require.Zero(t, c.Len())
}

func TestRemoveEntry(t *testing.T) {
	c := NewController()
	for _, s := range []string{"A", "B", "A", "C"} {
		c.AddEntry(s)
	}

	require.True(t, c.RemoveEntry("A"))
	require.Equal(t, []string{"B", "A", "C"}, c.Entries())

	require.False(t, c.RemoveEntry("Z"))
	require.Equal(t, 3, c.Len())

	require.True(t, c.RemoveAt(1))
	require.Equal(t, []string{"B", "C"}, c.Entries())
	require.False(t, c.RemoveAt(5))
	require.False(t, c.RemoveAt(-1))
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := NewController()
	c.AddEntry("A")
	got := c.Entries()
	got[0] = "changed"
	require.Equal(t, []string{"A"}, c.Entries())
}

func TestSpinEmptyIsNoop(t *testing.T) {
	c := NewController()
	require.False(t, c.CanSpin())
	require.False(t, c.Spin())
	require.False(t, c.Update(time.Second))
	require.Zero(t, c.Angle())
}

func TestSpinScenarioThreeEntries(t *testing.T) {
	c := NewController(WithSource(fixedSource(1)))
	for _, s := range []string{"A", "B", "C"} {
		c.AddEntry(s)
	}

	require.True(t, c.Spin())
	st := c.State()
	require.Equal(t, Spinning, st.Phase)
	require.Equal(t, 1, st.Pending)

	finishSpin(t, c)
	require.InDelta(t, 1620, c.Angle(), 1e-9)
	sel, ok := c.Selected()
	require.True(t, ok)
	require.Equal(t, "B", sel)
	require.Equal(t, 1, SectorUnderPointer(c.Angle(), c.Len()))
}

func TestSpinSelectsUnderPointerAcrossSpins(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	c := NewController(WithSource(r))
	for i := 0; i < 7; i++ {
		c.AddEntry("n" + strconv.Itoa(i))
	}

	prev := c.Angle()
	for i := 0; i < 50; i++ {
		require.True(t, c.Spin())
		pending := c.State().Pending
		finishSpin(t, c)

		require.Greater(t, c.Angle()-prev, float64(4*360))
		prev = c.Angle()

		sel, _ := c.Selected()
		require.Equal(t, c.Entries()[pending], sel)
		require.Equal(t, pending, SectorUnderPointer(c.Angle(), c.Len()))
	}
}

func TestSpinIsUniform(t *testing.T) {
	const (
		n      = 4
		trials = 8000
	)
	c := NewController(WithSource(rand.New(rand.NewPCG(1, 2))))
	for i := 0; i < n; i++ {
		c.AddEntry(strconv.Itoa(i))
	}

	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		require.True(t, c.Spin())
		finishSpin(t, c)
		sel, _ := c.Selected()
		counts[sel]++
	}

	require.Len(t, counts, n)
	for k, got := range counts {
		require.InDelta(t, trials/n, got, trials/n/10, "entry %s", k)
	}
}

func TestSecondSpinRefusedWhileSpinning(t *testing.T) {
	c := NewController(WithSource(fixedSource(0)))
	c.AddEntry("A")
	c.AddEntry("B")

	require.True(t, c.Spin())
	target := c.spin.tween.To
	require.False(t, c.Spin())
	require.False(t, c.CanSpin())
	require.Equal(t, target, c.spin.tween.To)
}

func TestMutationsRefusedWhileSpinning(t *testing.T) {
	c := NewController(WithSource(fixedSource(1)))
	c.AddEntry("A")
	c.AddEntry("B")
	require.True(t, c.Spin())

	require.False(t, c.AddEntry("C"))
	require.False(t, c.RemoveEntry("B"))
	require.Equal(t, []string{"A", "B"}, c.Entries())

	finishSpin(t, c)
	sel, _ := c.Selected()
	require.Equal(t, "B", sel)
}

func TestSelectionClearedOnMutation(t *testing.T) {
	c := NewController(WithSource(fixedSource(0)))
	c.AddEntry("A")
	c.Spin()
	finishSpin(t, c)
	_, ok := c.Selected()
	require.True(t, ok)

	c.RemoveEntry("A")
	sel, ok := c.Selected()
	require.False(t, ok)
	require.Empty(t, sel)
}

func TestUpdateAnimatesTowardsTarget(t *testing.T) {
	c := NewController(WithSource(fixedSource(0)), WithSpinDuration(time.Second))
	for _, s := range []string{"A", "B", "C", "D"} {
		c.AddEntry(s)
	}
	require.True(t, c.Spin())

	step := time.Second / 60
	prev := c.Angle()
	for c.Spinning() {
		c.Update(step)
		require.GreaterOrEqual(t, c.Angle(), prev)
		prev = c.Angle()
	}
	require.InDelta(t, 1755, c.Angle(), 1e-9)
}

func TestOnChangeReceivesSnapshots(t *testing.T) {
	c := NewController(WithSource(fixedSource(0)), WithSpinDuration(100*time.Millisecond))
	var states []State
	c.OnChange(func(st State) { states = append(states, st) })

	c.AddEntry("A")
	c.AddEntry("  ")
	c.Spin()
	c.Update(50 * time.Millisecond)
	c.Update(50 * time.Millisecond)

	require.Len(t, states, 4)
	require.Equal(t, []string{"A"}, states[0].Entries)
	require.Equal(t, Spinning, states[1].Phase)
	require.Equal(t, Spinning, states[2].Phase)
	require.Equal(t, Idle, states[3].Phase)
	require.True(t, states[3].HasSelection)
	require.Equal(t, "A", states[3].Selected)
	require.Equal(t, -1, states[3].Pending)
}

func TestWithFullTurns(t *testing.T) {
	c := NewController(WithSource(fixedSource(0)), WithFullTurns(2))
	c.AddEntry("A")
	c.AddEntry("B")
	c.Spin()
	finishSpin(t, c)
	require.InDelta(t, 720-90, c.Angle(), 1e-9)
}
