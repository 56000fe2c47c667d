package screen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vtscreen/govte"
)

// S1 — Hello world.
func TestHelloWorld(t *testing.T) {
	s := MustNewScreen(24, 80)

	for _, c := range "Hello world!" {
		s.Draw(c)
	}

	want := "Hello world!" + strings.Repeat(" ", 68)
	assert.Equal(t, want, s.Lines()[0].String())
	for i := 1; i < 24; i++ {
		assert.Equal(t, strings.Repeat(" ", 80), s.Lines()[i].String())
	}

	x, y := s.CursorPos()
	assert.Equal(t, 12, x)
	assert.Equal(t, 0, y)
}

// S4 — Autowrap + insert-replace.
func TestAutowrapAndInsertReplace(t *testing.T) {
	s := MustNewScreen(3, 3)

	for _, c := range "abc" {
		s.Draw(c)
	}
	assert.Equal(t, "abc", s.Lines()[0].String())
	x, y := s.CursorPos()
	assert.Equal(t, 3, x)
	assert.Equal(t, 0, y)

	s.Draw('a')
	assert.Equal(t, "abc", s.Lines()[0].String())
	x, y = s.CursorPos()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	s.ResetMode(govte.ModeDECAWM)
	s.EraseInDisplay(govte.ClearAll)
	s.CursorPosition(1, 1)
	for _, c := range "abc" {
		s.Draw(c)
	}
	s.Draw('a')
	assert.Equal(t, "aba", s.Lines()[0].String())
	x, y = s.CursorPos()
	assert.Equal(t, 3, x)
	assert.Equal(t, 0, y)

	s.SetMode(govte.ModeIRM)
	s.CursorPosition(1, 1)
	s.Draw('x')
	s.Draw('y')
	assert.Equal(t, "xya", s.Lines()[0].String())
}

func TestDrawWrapsToMarginAwareLine(t *testing.T) {
	s := MustNewScreen(5, 3)
	s.SetMargins(2, 5)
	s.CursorPosition(1, 3)

	s.Draw('a')
	s.Draw('b')

	x, y := s.CursorPos()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
	assert.Equal(t, "b  ", s.Lines()[1].String())
}

func TestBackspaceNeverPassesColumnZero(t *testing.T) {
	s := MustNewScreen(5, 5)
	s.Backspace()
	x, _ := s.CursorPos()
	assert.Equal(t, 0, x)

	s.Draw('a')
	s.Draw('b')
	s.Backspace()
	x, _ = s.CursorPos()
	assert.Equal(t, 1, x)
}

func TestCarriageReturnAndLineFeed(t *testing.T) {
	s := MustNewScreen(5, 5)
	s.Draw('a')
	s.Draw('b')
	s.LineFeed()

	x, y := s.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)

	s.ResetMode(govte.ModeLNM)
	s.Draw('c')
	s.LineFeed()
	x, y = s.CursorPos()
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
}

func TestTabMovesToNextStopOrLastColumn(t *testing.T) {
	s := MustNewScreen(3, 20)
	s.Tab()
	x, _ := s.CursorPos()
	assert.Equal(t, 7, x)

	s.Tab()
	x, _ = s.CursorPos()
	assert.Equal(t, 15, x)

	s.Tab()
	x, _ = s.CursorPos()
	assert.Equal(t, 19, x)
}

func TestSetAndClearTabStops(t *testing.T) {
	s := MustNewScreen(3, 20)
	s.CursorPosition(1, 4)
	s.SetTabStop()
	s.CursorPosition(1, 1)

	s.Tab()
	x, _ := s.CursorPos()
	assert.Equal(t, 3, x)

	s.ClearTabStop(govte.TabClearCurrent)
	s.CursorPosition(1, 1)
	s.Tab()
	x, _ = s.CursorPos()
	assert.Equal(t, 7, x)

	s.ClearTabStop(govte.TabClearAll)
	s.CursorPosition(1, 1)
	s.Tab()
	x, _ = s.CursorPos()
	assert.Equal(t, 19, x)
}

// Universal invariant 7: save/restore round-trips cursor, style, and
// the DECOM/DECAWM mode bits.
func TestSaveRestoreCursorRoundTrip(t *testing.T) {
	s := MustNewScreen(10, 10)
	s.SetMode(govte.ModeDECOM)
	s.ResetMode(govte.ModeDECAWM)
	s.CursorPosition(3, 4)
	s.SelectGraphicRendition([][]uint16{{31}})

	s.SaveCursor()

	s.CursorPosition(9, 9)
	s.SelectGraphicRendition([][]uint16{{0}})
	s.ResetMode(govte.ModeDECOM)
	s.SetMode(govte.ModeDECAWM)

	s.RestoreCursor()

	x, y := s.CursorPos()
	assert.Equal(t, 3, x)
	assert.Equal(t, 2, y)
	assert.True(t, s.Mode(govte.ModeDECOM))
	assert.False(t, s.Mode(govte.ModeDECAWM))
	assert.Equal(t, govte.NewNamedColor(govte.Red), s.cursor.Style.Fg)
}

func TestRestoreCursorOnEmptyStackHomesAndClearsOrigin(t *testing.T) {
	s := MustNewScreen(10, 10)
	s.SetMode(govte.ModeDECOM)
	s.SetMargins(3, 8)
	s.CursorPosition(5, 5)

	s.RestoreCursor()

	assert.False(t, s.Mode(govte.ModeDECOM))
	x, y := s.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestCursorUpDownClampedToMargins(t *testing.T) {
	s := MustNewScreen(10, 10)
	s.SetMargins(3, 8)
	s.CursorPosition(4, 1)

	s.CursorUp(10)
	_, y := s.CursorPos()
	assert.Equal(t, 2, y)

	s.CursorPosition(4, 1)
	s.CursorDown(10)
	_, y = s.CursorPos()
	assert.Equal(t, 7, y)
}

func TestCursorForwardBackClampedToScreen(t *testing.T) {
	s := MustNewScreen(3, 5)
	s.CursorForward(100)
	x, _ := s.CursorPos()
	assert.Equal(t, 4, x)

	s.CursorBack(100)
	x, _ = s.CursorPos()
	assert.Equal(t, 0, x)
}

func TestCursorUp1Down1AlsoReturnToColumnZero(t *testing.T) {
	s := MustNewScreen(5, 5)
	s.CursorPosition(3, 3)

	s.CursorDown1(1)
	x, y := s.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 3, y)

	s.CursorUp1(2)
	x, y = s.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, y)
}

// Origin mode: cursor_position with an out-of-range line is ignored,
// not clamped, while the grid-relative addressing mode clamps.
func TestCursorPositionOriginModeIgnoresOutOfRange(t *testing.T) {
	s := MustNewScreen(10, 10)
	s.SetMargins(3, 8)
	s.SetMode(govte.ModeDECOM)
	s.CursorPosition(2, 2)

	s.CursorPosition(20, 1)

	x, y := s.CursorPos()
	assert.Equal(t, 1, x)
	assert.Equal(t, 3, y)
}

func TestCursorPositionOriginModeRelativeToMargins(t *testing.T) {
	s := MustNewScreen(10, 10)
	s.SetMargins(3, 8)
	s.SetMode(govte.ModeDECOM)

	s.CursorPosition(1, 1)

	x, y := s.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 2, y)
}

func TestCursorPositionAbsoluteClampsToGrid(t *testing.T) {
	s := MustNewScreen(10, 10)
	s.CursorPosition(9999, 9999)

	x, y := s.CursorPos()
	assert.Equal(t, 9, x)
	assert.Equal(t, 9, y)
}

// Universal invariant 6: drawing into an empty row with DECAWM off
// never changes any other row.
func TestDrawingOneRowNeverTouchesAnotherWithAutowrapOff(t *testing.T) {
	s := MustNewScreen(5, 5)
	s.ResetMode(govte.ModeDECAWM)
	s.CursorPosition(3, 1)

	for _, c := range "abcdefgh" {
		s.Draw(c)
	}

	// DECAWM off: once x reaches the last column, further draws
	// overprint it instead of advancing, so only the final character
	// of the overflow survives.
	assert.Equal(t, "abcdh", s.Lines()[2].String())
	for _, i := range []int{0, 1, 3, 4} {
		assert.Equal(t, "     ", s.Lines()[i].String())
	}
}
