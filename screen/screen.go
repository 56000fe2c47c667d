package screen

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/vtscreen/govte"
)

// ErrInvalidDimensions is returned by NewScreen when either dimension
// is non-positive.
var ErrInvalidDimensions = errors.New("screen: lines and columns must be positive")

// Screen is an in-memory presentational model of a VT-family terminal:
// a grid of styled cells plus the cursor, scrolling margins, tab
// stops, mode set, savepoint stack, and reply buffer needed to apply
// govte.Handler events to it. It implements govte.Handler directly.
type Screen struct {
	lines, columns int
	grid           []Line

	cursor  Cursor
	margins Margins

	tabStops map[int]bool
	modes    map[govte.Mode]bool

	charsets      [4]govte.StandardCharset
	activeCharset govte.CharsetIndex

	savepoints []Savepoint
	reply      []byte
	title      string
	dcs        dcsState

	// Strict makes internal logic violations (cell writes outside grid
	// bounds) panic instead of being silently skipped. Production code
	// should leave this false; tests exercising invariants may set it.
	Strict bool

	logger debugLogger
}

// debugLogger is the minimal surface Screen needs from a logger; any
// type with a Debug(string) method satisfies it, including the
// zerolog adapter in logger.go (which makes this package import
// zerolog whether or not SetLogger is called).
type debugLogger interface {
	Debug(sequence string)
}

// NewScreen constructs a Screen of the given size, already in its
// reset state.
func NewScreen(lines, columns int) (*Screen, error) {
	if lines <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, lines, columns)
	}
	s := &Screen{lines: lines, columns: columns}
	s.Reset()
	return s, nil
}

// MustNewScreen is NewScreen for callers who know lines/columns are
// already validated (tests, demo code); it panics instead of
// returning an error.
func MustNewScreen(lines, columns int) *Screen {
	s, err := NewScreen(lines, columns)
	if err != nil {
		panic(err)
	}
	return s
}

// SetLogger attaches a debug-event sink. The most recent call wins;
// passing nil detaches it. See the optional zerolog adapter in
// logger.go.
func (s *Screen) SetLogger(l debugLogger) {
	s.logger = l
}

// Reset restores the screen to its initial state: default cursor,
// default style, full-height margins, default modes, default tab
// stops, and empty savepoint/reply buffers.
func (s *Screen) Reset() {
	s.grid = make([]Line, s.lines)
	for i := range s.grid {
		s.grid[i] = newLine(s.columns)
	}
	s.cursor = Cursor{Style: DefaultStyle()}
	s.margins = Margins{Top: 0, Bottom: s.lines - 1}
	s.tabStops = defaultTabStops(s.columns)
	s.modes = map[govte.Mode]bool{
		govte.ModeDECAWM:  true,
		govte.ModeDECTCEM: true,
		govte.ModeLNM:     true,
	}
	s.charsets = [4]govte.StandardCharset{}
	s.activeCharset = govte.G0
	s.savepoints = nil
	s.reply = nil
	s.title = ""
	s.dcs = dcsState{}
}

func defaultTabStops(columns int) map[int]bool {
	stops := make(map[int]bool)
	for col := 7; col < columns; col += 8 {
		stops[col] = true
	}
	return stops
}

// Resize changes the grid dimensions, preserving overlapping content.
// Lines are added at the bottom or removed from the top; columns are
// added at the right or removed from the right. Margins reset to full
// height; the cursor is not clamped.
func (s *Screen) Resize(lines, columns int) {
	if lines <= 0 || columns <= 0 {
		return
	}

	newGrid := make([]Line, lines)
	// Lines are added at the bottom, removed from the top: keep the
	// most recent min(lines, s.lines) rows.
	keep := s.lines
	if lines < keep {
		keep = lines
	}
	drop := s.lines - keep
	for i := 0; i < lines; i++ {
		if i < keep {
			newGrid[i] = resizeLine(s.grid[drop+i], columns)
		} else {
			newGrid[i] = newLine(columns)
		}
	}

	s.grid = newGrid
	s.lines = lines
	s.columns = columns
	s.margins = Margins{Top: 0, Bottom: lines - 1}
	if s.tabStops == nil {
		s.tabStops = defaultTabStops(columns)
	}
}

func resizeLine(old Line, columns int) Line {
	line := newLine(columns)
	n := len(old)
	if n > columns {
		n = columns
	}
	copy(line, old[:n])
	return line
}

// SetMargins sets the top/bottom scrolling margins, 1-indexed and
// inclusive. Ignored unless bottom-top >= 1 after clamping to the
// grid; on success the cursor homes.
func (s *Screen) SetMargins(top, bottom int) {
	t := top - 1
	b := bottom - 1
	if t < 0 {
		t = 0
	}
	if b >= s.lines {
		b = s.lines - 1
	}
	if b-t < 1 {
		return
	}
	s.margins = Margins{Top: t, Bottom: b}
	s.homeCursor()
}

func (s *Screen) homeCursor() {
	if s.modes[govte.ModeDECOM] {
		s.cursor.Y = s.margins.Top
	} else {
		s.cursor.Y = 0
	}
	s.cursor.X = 0
}

// Lines returns the current grid as a read-only slice of lines. The
// returned slice and its lines must not be mutated by callers.
func (s *Screen) Lines() []Line {
	return s.grid
}

// Dimensions returns the current grid size.
func (s *Screen) Dimensions() (lines, columns int) {
	return s.lines, s.columns
}

// CursorPos returns the cursor's current 0-indexed position.
func (s *Screen) CursorPos() (x, y int) {
	return s.cursor.X, s.cursor.Y
}

// MarginsRegion returns the current scrolling region, 0-indexed inclusive.
func (s *Screen) MarginsRegion() (top, bottom int) {
	return s.margins.Top, s.margins.Bottom
}

// Mode reports whether the named mode is currently set.
func (s *Screen) Mode(m govte.Mode) bool {
	return s.modes[m]
}

// TabStops returns the set of columns with a tab stop.
func (s *Screen) TabStops() map[int]bool {
	return s.tabStops
}

// ReplyBuffer returns the accumulated host-readable reply bytes, such
// as Device Attributes and cursor-position reports.
func (s *Screen) ReplyBuffer() []byte {
	return s.reply
}

// DrainReplyBuffer returns the reply buffer and clears it, for a host
// loop that writes replies back to the pty and does not want to
// re-send them.
func (s *Screen) DrainReplyBuffer() []byte {
	out := s.reply
	s.reply = nil
	return out
}

// Title returns the most recent OSC 0/2 window title.
func (s *Screen) Title() string {
	return s.title
}

// DisplayWidth reports the terminal column width of r using East
// Asian/combining-width rules. It is a read-only rendering aid: the
// grid itself always stores exactly one cell per code point,
// regardless of the value this returns.
func DisplayWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

var _ govte.Handler = (*Screen)(nil)
