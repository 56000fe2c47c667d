package screen

import "github.com/vtscreen/govte"

// ConfigureCharset designates a standard charset into one of G0-G3.
func (s *Screen) ConfigureCharset(index govte.CharsetIndex, charset govte.StandardCharset) {
	s.charsets[index] = charset
}

// SetActiveCharset shifts the active graphic-set slot (SI/SO).
func (s *Screen) SetActiveCharset(index govte.CharsetIndex) {
	s.activeCharset = index
}
