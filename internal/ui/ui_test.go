package ui

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestTextFieldEditing(t *testing.T) {
	f := TextField{}
	f.Insert([]rune("Jo\x08ão")...)
	require.Equal(t, "João", f.Text())
	require.Equal(t, 4, f.Len())

	f.Backspace()
	require.Equal(t, "Joã", f.Text())

	require.Equal(t, "Joã", f.Commit())
	require.Empty(t, f.Text())

	f.Backspace()
	require.Zero(t, f.Len())
}

func TestTextFieldMaxLen(t *testing.T) {
	f := TextField{MaxLen: 3}
	f.Insert([]rune("abcdef")...)
	require.Equal(t, "abc", f.Text())
}

func TestTextFieldDropsNewlines(t *testing.T) {
	f := TextField{}
	f.Insert('a', '\n', '\r', '\t', ' ', 'b')
	require.Equal(t, "a b", f.Text())
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 40}
	require.True(t, r.Contains(10, 20))
	require.True(t, r.Contains(110, 60))
	require.True(t, r.Contains(50, 30))
	require.False(t, r.Contains(9, 30))
	require.False(t, r.Contains(50, 61))

	cx, cy := r.Center()
	require.Equal(t, 60.0, cx)
	require.Equal(t, 40.0, cy)
}

func newList() *ListWindow {
	return &ListWindow{
		Bounds:      Rect{X: 0, Y: 100, W: 200, H: 90},
		RowHeight:   30,
		RemoveWidth: 30,
	}
}

func TestListWindowScrollClamps(t *testing.T) {
	l := newList()
	require.Equal(t, 3, l.Rows())

	l.Scroll(5, 10)
	require.Equal(t, 5, l.Offset())
	l.Scroll(100, 10)
	require.Equal(t, 7, l.Offset())
	l.Scroll(-100, 10)
	require.Zero(t, l.Offset())

	l.Scroll(2, 2)
	require.Zero(t, l.Offset())
}

func TestListWindowVisibleAfterShrink(t *testing.T) {
	l := newList()
	l.Scroll(7, 10)

	first, last := l.Visible(4)
	require.Equal(t, 1, first)
	require.Equal(t, 4, last)

	first, last = l.Visible(0)
	require.Zero(t, first)
	require.Zero(t, last)
}

func TestListWindowHitRemove(t *testing.T) {
	l := newList()
	l.Scroll(2, 6)

	_, ok := l.RowRect(1)
	require.False(t, ok)

	row, ok := l.RowRect(3)
	require.True(t, ok)
	require.Equal(t, Rect{X: 0, Y: 130, W: 200, H: 30}, row)

	i, ok := l.HitRemove(185, 140, 6)
	require.True(t, ok)
	require.Equal(t, 3, i)

	_, ok = l.HitRemove(50, 140, 6)
	require.False(t, ok)
}

func TestParseNames(t *testing.T) {
	in := "\ufeffAna\n\n  Bruno  \r\n# comment\nCarla\nAna\n"
	names, err := ParseNames(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []string{"Ana", "Bruno", "Carla", "Ana"}, names)
}

func TestParseNamesReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ParseNames(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}
