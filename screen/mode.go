package screen

import "github.com/vtscreen/govte"

const (
	columns80  = 80
	columns132 = 132
)

// SetMode enables the named mode, applying DECCOLM/DECOM side
// effects.
func (s *Screen) SetMode(mode govte.Mode) {
	s.modes[mode] = true

	switch mode {
	case govte.ModeDECCOLM:
		s.Resize(s.lines, columns132)
		s.EraseInDisplay(govte.ClearAll)
		s.homeCursor()
	case govte.ModeDECOM:
		s.homeCursor()
	}
}

// ResetMode disables the named mode, applying DECCOLM/DECOM side
// effects.
func (s *Screen) ResetMode(mode govte.Mode) {
	s.modes[mode] = false

	switch mode {
	case govte.ModeDECCOLM:
		s.Resize(s.lines, columns80)
		s.EraseInDisplay(govte.ClearAll)
		s.homeCursor()
	case govte.ModeDECOM:
		s.homeCursor()
	}
}
