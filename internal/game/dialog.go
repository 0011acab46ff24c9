package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/name-wheel/internal/ui"
)

func (g *Game) openImportDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Import Names"),
		zenity.FileFilters{{
			Name:     "Names",
			Patterns: []string{"*.txt", "*.csv", "*.list"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.importNames(filename)
}

// importNames adds every name of a names file to the wheel.
func (g *Game) importNames(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open names file: %w", err)
	}
	defer f.Close()

	names, err := ui.ParseNames(f)
	if err != nil {
		return err
	}
	added := 0
	for _, name := range names {
		if g.ctrl.AddEntry(name) {
			added++
		}
	}
	g.lastErr = nil
	g.log.Info("names imported", "path", path, "added", added)
	return nil
}
