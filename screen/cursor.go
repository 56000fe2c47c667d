package screen

// Cursor tracks position and carried style. X may legally equal the
// screen's column count as a pending-wrap marker; it is never advanced
// past that point until the next draw resolves the wrap.
type Cursor struct {
	X, Y  int
	Style Style
}

// Margins is the vertical scrolling region, 0-indexed and inclusive on
// both ends.
type Margins struct {
	Top, Bottom int
}

// Savepoint is a saved cursor plus the mode bits DECSC/DECRC mandate be
// restored alongside it.
type Savepoint struct {
	Cursor   Cursor
	Origin   bool
	Autowrap bool
}
