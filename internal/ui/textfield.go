// Package ui has the widget logic of the name wheel screen that does not need
// a window: text editing, hit testing and the scrolling name list.
package ui

import "unicode"

// TextField is a single line rune buffer fed by typed characters.
type TextField struct {
	// MaxLen caps the number of runes, 0 means no limit.
	MaxLen int

	runes []rune
}

// Insert appends printable runes, dropping control characters and anything
// past MaxLen.
func (f *TextField) Insert(rs ...rune) {
	for _, r := range rs {
		if !unicode.IsPrint(r) {
			continue
		}
		if f.MaxLen > 0 && len(f.runes) >= f.MaxLen {
			return
		}
		f.runes = append(f.runes, r)
	}
}

// Backspace removes the last rune.
func (f *TextField) Backspace() {
	if len(f.runes) > 0 {
		f.runes = f.runes[:len(f.runes)-1]
	}
}

func (f *TextField) Text() string { return string(f.runes) }

func (f *TextField) Len() int { return len(f.runes) }

func (f *TextField) Clear() { f.runes = f.runes[:0] }

// Commit returns the current text and clears the field.
func (f *TextField) Commit() string {
	s := f.Text()
	f.Clear()
	return s
}
