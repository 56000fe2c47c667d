package screen

import "github.com/vtscreen/govte"

// Draw places a glyph at the cursor and advances it, honoring pending
// wrap, autowrap mode, insert mode, and the active G-set mapping.
func (s *Screen) Draw(c rune) {
	if s.cursor.X == s.columns {
		if s.modes[govte.ModeDECAWM] {
			s.LineFeed()
			s.cursor.X = 0
		} else {
			s.cursor.X = s.columns - 1
		}
	}

	if s.modes[govte.ModeIRM] {
		s.InsertCharacters(1)
	}

	mapped := s.charsets[s.activeCharset].Map(c)
	s.setCell(s.cursor.X, s.cursor.Y, Cell{Data: mapped, Style: s.cursor.Style})
	s.cursor.X++
}

func (s *Screen) setCell(x, y int, cell Cell) {
	if y < 0 || y >= len(s.grid) || x < 0 || x >= len(s.grid[y]) {
		if s.Strict {
			panic("screen: cell write out of bounds")
		}
		return
	}
	s.grid[y][x] = cell
}

// Backspace moves the cursor left one column, never past column 0.
func (s *Screen) Backspace() {
	if s.cursor.X > 0 {
		s.cursor.X--
	}
}

// CarriageReturn moves the cursor to column 0 of the current line.
func (s *Screen) CarriageReturn() {
	s.cursor.X = 0
}

// LineFeed moves the cursor down one line, also performing a carriage
// return when ModeLNM is set.
func (s *Screen) LineFeed() {
	s.Index()
	if s.modes[govte.ModeLNM] {
		s.CarriageReturn()
	}
}

// Tab moves the cursor forward to the next tab stop, or the last
// column if none remain.
func (s *Screen) Tab() {
	for col := s.cursor.X + 1; col < s.columns; col++ {
		if s.tabStops[col] {
			s.cursor.X = col
			return
		}
	}
	s.cursor.X = s.columns - 1
}

// SetTabStop sets a tab stop at the cursor's current column.
func (s *Screen) SetTabStop() {
	s.tabStops[s.cursor.X] = true
}

// ClearTabStop clears tab stops according to mode.
func (s *Screen) ClearTabStop(mode govte.TabulationClearMode) {
	switch mode {
	case govte.TabClearCurrent:
		delete(s.tabStops, s.cursor.X)
	case govte.TabClearAll:
		s.tabStops = make(map[int]bool)
	}
}

// SaveCursor pushes cursor position, style, and the DECOM/DECAWM mode
// bits onto the savepoint stack.
func (s *Screen) SaveCursor() {
	s.savepoints = append(s.savepoints, Savepoint{
		Cursor:   s.cursor,
		Origin:   s.modes[govte.ModeDECOM],
		Autowrap: s.modes[govte.ModeDECAWM],
	})
}

// RestoreCursor pops the most recent savepoint and applies it. A
// no-op on an empty stack other than resetting origin mode and
// homing, per DECRC's documented behavior when nothing was saved.
func (s *Screen) RestoreCursor() {
	if len(s.savepoints) == 0 {
		s.modes[govte.ModeDECOM] = false
		s.homeCursor()
		return
	}
	last := len(s.savepoints) - 1
	sp := s.savepoints[last]
	s.savepoints = s.savepoints[:last]

	s.cursor = sp.Cursor
	s.modes[govte.ModeDECOM] = sp.Origin
	s.modes[govte.ModeDECAWM] = sp.Autowrap
}

// CursorUp moves the cursor up n rows, clamped to the top margin.
func (s *Screen) CursorUp(n int) {
	s.cursor.Y = max(s.cursor.Y-n, s.margins.Top)
}

// CursorDown moves the cursor down n rows, clamped to the bottom margin.
func (s *Screen) CursorDown(n int) {
	s.cursor.Y = min(s.cursor.Y+n, s.margins.Bottom)
}

// CursorForward moves the cursor right n columns, clamped to the last
// column.
func (s *Screen) CursorForward(n int) {
	s.cursor.X = min(s.cursor.X+n, s.columns-1)
}

// CursorBack moves the cursor left n columns, clamped to column 0.
func (s *Screen) CursorBack(n int) {
	s.cursor.X = max(s.cursor.X-n, 0)
}

// CursorUp1 moves the cursor up n rows and to column 0.
func (s *Screen) CursorUp1(n int) {
	s.CursorUp(n)
	s.CarriageReturn()
}

// CursorDown1 moves the cursor down n rows and to column 0.
func (s *Screen) CursorDown1(n int) {
	s.CursorDown(n)
	s.CarriageReturn()
}

// CursorPosition moves the cursor to an absolute (line, column),
// 1-based, subject to origin mode when DECOM is set.
func (s *Screen) CursorPosition(line, col int) {
	line = orOne(line)
	col = orOne(col)

	if s.modes[govte.ModeDECOM] {
		y := s.margins.Top + (line - 1)
		if y < s.margins.Top || y > s.margins.Bottom {
			return
		}
		s.cursor.Y = y
	} else {
		s.cursor.Y = clamp(line-1, 0, s.lines-1)
	}
	s.cursor.X = clamp(col-1, 0, s.columns-1)
}

// CursorToLine moves the cursor to an absolute line, keeping column.
func (s *Screen) CursorToLine(line int) {
	line = orOne(line)
	if s.modes[govte.ModeDECOM] {
		y := s.margins.Top + (line - 1)
		if y < s.margins.Top || y > s.margins.Bottom {
			return
		}
		s.cursor.Y = y
		return
	}
	s.cursor.Y = clamp(line-1, 0, s.lines-1)
}

// CursorToColumn moves the cursor to an absolute column, keeping line.
func (s *Screen) CursorToColumn(col int) {
	col = orOne(col)
	s.cursor.X = clamp(col-1, 0, s.columns-1)
}

func orOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
