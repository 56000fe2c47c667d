// Package screen implements the presentational half of the terminal
// emulator: a grid of styled cells that absorbs govte.Handler events
// and exposes a read-only display to whoever renders it.
package screen

import "github.com/vtscreen/govte"

// Style carries the cursor's currently accumulating SGR attributes,
// stamped onto every cell it draws.
type Style struct {
	Fg   govte.Color
	Bg   govte.Color
	Attr govte.Attr
}

// DefaultStyle is the style of a freshly reset cursor: default colors,
// no attributes.
func DefaultStyle() Style {
	return Style{
		Fg: govte.NewNamedColor(govte.Foreground),
		Bg: govte.NewNamedColor(govte.Background),
	}
}

// Cell is a single styled character in the grid.
type Cell struct {
	Data rune
	Style
}

// DefaultCell is a blank space in the default style.
func DefaultCell() Cell {
	return Cell{Data: ' ', Style: DefaultStyle()}
}

// Line is a fixed-width row of cells.
type Line []Cell

// newLine returns a line of columns default cells.
func newLine(columns int) Line {
	line := make(Line, columns)
	for i := range line {
		line[i] = DefaultCell()
	}
	return line
}

// String renders a line's character data, ignoring style, for display
// or testing convenience.
func (l Line) String() string {
	runes := make([]rune, len(l))
	for i, c := range l {
		runes[i] = c.Data
	}
	return string(runes)
}
