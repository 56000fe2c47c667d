package screen

// scrollRegionUp drops `top` and appends a default row at `bottom`,
// shifting every row strictly between up by one. Rows outside
// [top, bottom] are untouched.
func (s *Screen) scrollRegionUp(top, bottom, n int) {
	for i := 0; i < n; i++ {
		copy(s.grid[top:bottom], s.grid[top+1:bottom+1])
		s.grid[bottom] = newLine(s.columns)
	}
}

// scrollRegionDown drops `bottom` and inserts a default row at `top`,
// shifting every row strictly between down by one.
func (s *Screen) scrollRegionDown(top, bottom, n int) {
	for i := 0; i < n; i++ {
		copy(s.grid[top+1:bottom+1], s.grid[top:bottom])
		s.grid[top] = newLine(s.columns)
	}
}

// Index moves the cursor down one line, scrolling the margin region
// up when already at its bottom.
func (s *Screen) Index() {
	switch {
	case s.cursor.Y == s.margins.Bottom:
		s.scrollRegionUp(s.margins.Top, s.margins.Bottom, 1)
	case s.cursor.Y < s.lines-1:
		s.cursor.Y++
	}
}

// ReverseIndex moves the cursor up one line, scrolling the margin
// region down when already at its top.
func (s *Screen) ReverseIndex() {
	switch {
	case s.cursor.Y == s.margins.Top:
		s.scrollRegionDown(s.margins.Top, s.margins.Bottom, 1)
	case s.cursor.Y > 0:
		s.cursor.Y--
	}
}
