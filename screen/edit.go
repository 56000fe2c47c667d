package screen

import "github.com/vtscreen/govte"

// EraseInLine clears part of the current line according to mode. All
// three modes are inclusive of the cursor's column.
func (s *Screen) EraseInLine(mode govte.LineClearMode) {
	s.eraseLineRange(s.cursor.Y, mode)
}

func (s *Screen) eraseLineRange(y int, mode govte.LineClearMode) {
	line := s.grid[y]
	switch mode {
	case govte.LineClearRight:
		for x := s.cursor.X; x < s.columns; x++ {
			line[x] = DefaultCell()
		}
	case govte.LineClearLeft:
		for x := 0; x <= s.cursor.X && x < s.columns; x++ {
			line[x] = DefaultCell()
		}
	case govte.LineClearAll:
		s.grid[y] = newLine(s.columns)
	}
}

// EraseInDisplay clears part of the screen according to mode. For
// ClearBelow/ClearAbove the cursor's own line is erased using the
// matching EraseInLine semantics.
func (s *Screen) EraseInDisplay(mode govte.ClearMode) {
	switch mode {
	case govte.ClearBelow:
		s.eraseLineRange(s.cursor.Y, govte.LineClearRight)
		for y := s.cursor.Y + 1; y < s.lines; y++ {
			s.grid[y] = newLine(s.columns)
		}
	case govte.ClearAbove:
		s.eraseLineRange(s.cursor.Y, govte.LineClearLeft)
		for y := 0; y < s.cursor.Y; y++ {
			s.grid[y] = newLine(s.columns)
		}
	case govte.ClearAll:
		for y := 0; y < s.lines; y++ {
			s.grid[y] = newLine(s.columns)
		}
	case govte.ClearSaved:
		// Scrollback is out of this core's scope; nothing to clear.
	}
}

// InsertLines inserts n blank lines at the cursor's line, within the
// scrolling region, only while the cursor lies within the margins.
func (s *Screen) InsertLines(n int) {
	if n <= 0 {
		n = 1
	}
	if s.cursor.Y < s.margins.Top || s.cursor.Y > s.margins.Bottom {
		return
	}
	s.scrollRegionDown(s.cursor.Y, s.margins.Bottom, n)
	s.cursor.X = 0
}

// DeleteLines deletes n lines at the cursor's line, within the
// scrolling region, only while the cursor lies within the margins.
func (s *Screen) DeleteLines(n int) {
	if n <= 0 {
		n = 1
	}
	if s.cursor.Y < s.margins.Top || s.cursor.Y > s.margins.Bottom {
		return
	}
	s.scrollRegionUp(s.cursor.Y, s.margins.Bottom, n)
	s.cursor.X = 0
}

// InsertCharacters shifts cells right within the line from the
// cursor, filling with default cells; the cursor does not move.
func (s *Screen) InsertCharacters(n int) {
	if n <= 0 {
		n = 1
	}
	line := s.grid[s.cursor.Y]
	x := s.cursor.X
	if x >= s.columns {
		return
	}
	shift := n
	if shift > s.columns-x {
		shift = s.columns - x
	}
	copy(line[x+shift:], line[x:s.columns-shift])
	for i := x; i < x+shift; i++ {
		line[i] = DefaultCell()
	}
}

// DeleteCharacters shifts cells left, appending default cells; the
// cursor does not move.
func (s *Screen) DeleteCharacters(n int) {
	if n <= 0 {
		n = 1
	}
	line := s.grid[s.cursor.Y]
	x := s.cursor.X
	if x >= s.columns {
		return
	}
	shift := n
	if shift > s.columns-x {
		shift = s.columns - x
	}
	copy(line[x:], line[x+shift:])
	for i := s.columns - shift; i < s.columns; i++ {
		line[i] = DefaultCell()
	}
}

// EraseCharacters replaces n cells at the cursor with blanks without
// shifting.
func (s *Screen) EraseCharacters(n int) {
	if n <= 0 {
		n = 1
	}
	line := s.grid[s.cursor.Y]
	end := s.cursor.X + n
	if end > s.columns {
		end = s.columns
	}
	for i := s.cursor.X; i < end; i++ {
		line[i] = DefaultCell()
	}
}

// AlignmentDisplay fills the screen with 'E' at default style and
// resets the scrolling margins, per DECALN.
func (s *Screen) AlignmentDisplay() {
	for y := 0; y < s.lines; y++ {
		for x := 0; x < s.columns; x++ {
			s.grid[y][x] = Cell{Data: 'E', Style: DefaultStyle()}
		}
	}
	s.margins = Margins{Top: 0, Bottom: s.lines - 1}
}
