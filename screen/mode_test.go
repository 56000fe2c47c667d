package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vtscreen/govte"
)

func TestSetAndResetModeToggleFlag(t *testing.T) {
	s := MustNewScreen(24, 80)

	s.SetMode(govte.ModeIRM)
	assert.True(t, s.Mode(govte.ModeIRM))

	s.ResetMode(govte.ModeIRM)
	assert.False(t, s.Mode(govte.ModeIRM))
}

func TestDECCOLMSetResizesTo132AndErasesAndHomes(t *testing.T) {
	s := MustNewScreen(24, 80)
	s.Draw('x')
	s.CursorPosition(5, 5)

	s.SetMode(govte.ModeDECCOLM)

	_, columns := s.Dimensions()
	assert.Equal(t, 132, columns)
	x, y := s.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	for _, row := range rowStrings(s) {
		assert.Len(t, row, 132)
	}
}

func TestDECCOLMResetResizesTo80(t *testing.T) {
	s := MustNewScreen(24, 80)
	s.SetMode(govte.ModeDECCOLM)

	s.ResetMode(govte.ModeDECCOLM)

	_, columns := s.Dimensions()
	assert.Equal(t, 80, columns)
}

func TestDECOMSideEffectHomesToMarginTop(t *testing.T) {
	s := MustNewScreen(24, 80)
	s.SetMargins(5, 20)
	s.CursorPosition(10, 10)

	s.SetMode(govte.ModeDECOM)

	x, y := s.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 4, y)
}

func TestDECOMResetHomesToAbsoluteOrigin(t *testing.T) {
	s := MustNewScreen(24, 80)
	s.SetMargins(5, 20)
	s.SetMode(govte.ModeDECOM)
	s.CursorPosition(2, 2)

	s.ResetMode(govte.ModeDECOM)

	x, y := s.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}
