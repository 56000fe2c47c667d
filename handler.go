// Package govte provides high-level terminal control interfaces.
package govte

// Handler defines the semantic terminal operations a Screen implements.
// Processor calls these after translating a byte stream into a parsed
// control sequence; method names and argument shapes mirror the screen
// operation table directly rather than the raw CSI/ESC mnemonics.
type Handler interface {
	// Screen Operations

	// Reset restores the screen to its initial state: default cursor,
	// default style, full-height margins, every mode at its default,
	// default tab stops, and an empty savepoint stack and reply buffer.
	Reset()

	// Resize changes the grid dimensions. Existing content is
	// preserved in the overlapping region; margins are reset to full
	// height. The cursor is not clamped into the new bounds.
	Resize(lines, columns int)

	// SetMargins sets the top and bottom scrolling margins (1-based,
	// inclusive). Ignored unless bottom-top >= 1 after clamping to the
	// grid; on success the cursor homes.
	SetMargins(top, bottom int)

	// SetMode enables the named mode.
	SetMode(mode Mode)

	// ResetMode disables the named mode.
	ResetMode(mode Mode)

	// Text and Cursor Movement

	// Draw places a glyph at the cursor and advances it, honoring
	// pending-wrap and insert mode.
	Draw(c rune)

	// Backspace moves the cursor left one column, never past column 0.
	Backspace()

	// CarriageReturn moves the cursor to column 0 of the current line.
	CarriageReturn()

	// LineFeed moves the cursor down one line, scrolling the margin
	// region if already at the bottom margin. Also performs a carriage
	// return when ModeLNM is set.
	LineFeed()

	// Index moves the cursor down one line, scrolling if needed,
	// without touching the column.
	Index()

	// ReverseIndex moves the cursor up one line, scrolling the margin
	// region downward if already at the top margin.
	ReverseIndex()

	// Tab moves the cursor forward to the next tab stop, or the last
	// column if none remain.
	Tab()

	// SetTabStop sets a tab stop at the cursor's current column.
	SetTabStop()

	// ClearTabStop clears tab stops according to mode.
	ClearTabStop(mode TabulationClearMode)

	// SaveCursor pushes cursor position, style, and the DECOM/DECAWM
	// mode bits onto the savepoint stack.
	SaveCursor()

	// RestoreCursor pops the most recent savepoint and applies it. On
	// an empty stack it resets origin mode and homes the cursor.
	RestoreCursor()

	// CursorUp moves the cursor up n rows, clamped to the top margin.
	CursorUp(n int)

	// CursorDown moves the cursor down n rows, clamped to the bottom margin.
	CursorDown(n int)

	// CursorForward moves the cursor right n columns, clamped to the
	// last column.
	CursorForward(n int)

	// CursorBack moves the cursor left n columns, clamped to column 0.
	CursorBack(n int)

	// CursorUp1 moves the cursor up n rows and to column 0.
	CursorUp1(n int)

	// CursorDown1 moves the cursor down n rows and to column 0.
	CursorDown1(n int)

	// CursorPosition moves the cursor to an absolute (line, column),
	// 1-based. Subject to origin mode when DECOM is set.
	CursorPosition(line, col int)

	// CursorToLine moves the cursor to an absolute line, keeping column.
	CursorToLine(line int)

	// CursorToColumn moves the cursor to an absolute column, keeping line.
	CursorToColumn(col int)

	// Text Modification

	// EraseInLine clears part of the current line according to mode.
	EraseInLine(mode LineClearMode)

	// EraseInDisplay clears part of the screen according to mode.
	EraseInDisplay(mode ClearMode)

	// InsertLines inserts n blank lines at the cursor's line, within
	// the scrolling region, shifting lines below down and off the
	// bottom margin.
	InsertLines(n int)

	// DeleteLines deletes n lines at the cursor's line, within the
	// scrolling region, shifting lines below up.
	DeleteLines(n int)

	// InsertCharacters inserts n blank characters at the cursor,
	// shifting the rest of the line right and off the end.
	InsertCharacters(n int)

	// DeleteCharacters deletes n characters at the cursor, shifting
	// the rest of the line left.
	DeleteCharacters(n int)

	// EraseCharacters replaces n characters at the cursor with blanks
	// without shifting.
	EraseCharacters(n int)

	// Text Attributes

	// SelectGraphicRendition applies one or more SGR parameter groups
	// to the cursor's carried style.
	SelectGraphicRendition(params [][]uint16)

	// Device Operations

	// AlignmentDisplay fills the screen with 'E' and resets margins,
	// per DECALN.
	AlignmentDisplay()

	// Answer appends the terminal's identification string to the
	// reply buffer (CSI c / DA).
	Answer()

	// Bell signals an audible/visible bell request.
	Bell()

	// Supplemented device and window operations

	// DeviceStatus appends a status report to the reply buffer. kind
	// follows DSR numbering; kind==6 reports the cursor position (CPR).
	DeviceStatus(kind int)

	// SetTitle sets the window/icon title (OSC 0/2).
	SetTitle(title string)

	// Device Control String (DCS) Support

	// Hook is called when a DCS sequence begins.
	Hook(params [][]uint16, intermediates []byte, ignore bool, action rune)

	// Put receives data bytes within a DCS sequence.
	Put(data []byte)

	// Unhook is called when a DCS sequence ends.
	Unhook()

	// Character Set Support

	// ConfigureCharset designates a standard charset into one of G0-G3.
	ConfigureCharset(index CharsetIndex, charset StandardCharset)

	// SetActiveCharset shifts the active graphic-set slot (SI/SO).
	SetActiveCharset(index CharsetIndex)

	// Debug Observation

	// Debug is called for a recognised-but-unmapped or malformed control
	// sequence, carrying its literal textual form. It never affects grid
	// state; implementations typically just log it.
	Debug(sequence string)
}

// NoopHandler is a no-op implementation of Handler.
// It can be embedded in custom handlers to avoid implementing all methods.
type NoopHandler struct{}

// Ensure NoopHandler implements Handler
var _ Handler = (*NoopHandler)(nil)

func (h *NoopHandler) Reset()                             {}
func (h *NoopHandler) Resize(lines, columns int)          {}
func (h *NoopHandler) SetMargins(top, bottom int)         {}
func (h *NoopHandler) SetMode(mode Mode)                  {}
func (h *NoopHandler) ResetMode(mode Mode)                {}
func (h *NoopHandler) Draw(c rune)                        {}
func (h *NoopHandler) Backspace()                         {}
func (h *NoopHandler) CarriageReturn()                    {}
func (h *NoopHandler) LineFeed()                          {}
func (h *NoopHandler) Index()                             {}
func (h *NoopHandler) ReverseIndex()                      {}
func (h *NoopHandler) Tab()                               {}
func (h *NoopHandler) SetTabStop()                        {}
func (h *NoopHandler) ClearTabStop(mode TabulationClearMode) {}
func (h *NoopHandler) SaveCursor()                        {}
func (h *NoopHandler) RestoreCursor()                     {}
func (h *NoopHandler) CursorUp(n int)                     {}
func (h *NoopHandler) CursorDown(n int)                   {}
func (h *NoopHandler) CursorForward(n int)                {}
func (h *NoopHandler) CursorBack(n int)                   {}
func (h *NoopHandler) CursorUp1(n int)                    {}
func (h *NoopHandler) CursorDown1(n int)                  {}
func (h *NoopHandler) CursorPosition(line, col int)       {}
func (h *NoopHandler) CursorToLine(line int)              {}
func (h *NoopHandler) CursorToColumn(col int)             {}
func (h *NoopHandler) EraseInLine(mode LineClearMode)     {}
func (h *NoopHandler) EraseInDisplay(mode ClearMode)      {}
func (h *NoopHandler) InsertLines(n int)                  {}
func (h *NoopHandler) DeleteLines(n int)                  {}
func (h *NoopHandler) InsertCharacters(n int)             {}
func (h *NoopHandler) DeleteCharacters(n int)             {}
func (h *NoopHandler) EraseCharacters(n int)              {}
func (h *NoopHandler) SelectGraphicRendition(params [][]uint16) {}
func (h *NoopHandler) AlignmentDisplay()                  {}
func (h *NoopHandler) Answer()                            {}
func (h *NoopHandler) Bell()                              {}
func (h *NoopHandler) DeviceStatus(kind int)              {}
func (h *NoopHandler) SetTitle(title string)              {}
func (h *NoopHandler) Hook(params [][]uint16, intermediates []byte, ignore bool, action rune) {}
func (h *NoopHandler) Put(data []byte)                    {}
func (h *NoopHandler) Unhook()                            {}
func (h *NoopHandler) ConfigureCharset(index CharsetIndex, charset StandardCharset) {}
func (h *NoopHandler) SetActiveCharset(index CharsetIndex) {}
func (h *NoopHandler) Debug(sequence string)               {}
