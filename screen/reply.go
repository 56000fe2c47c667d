package screen

import "fmt"

// Answer appends the primary Device Attributes reply to the reply
// buffer: a VT220 claiming 132-column and selective-erase support.
func (s *Screen) Answer() {
	s.reply = append(s.reply, []byte("\x1b[?62;1;6c")...)
}

// Bell has no observable grid effect; it is an external hook for a
// host-side audible/visible bell.
func (s *Screen) Bell() {}

// DeviceStatus appends a status report to the reply buffer. kind==6
// reports the cursor position (CPR); kind==5 reports device OK.
// Other kinds are not supported by this core and are silently
// ignored, per the primary-DA-and-CPR-only scope.
func (s *Screen) DeviceStatus(kind int) {
	switch kind {
	case 5:
		s.reply = append(s.reply, []byte("\x1b[0n")...)
	case 6:
		s.reply = append(s.reply, []byte(fmt.Sprintf("\x1b[%d;%dR", s.cursor.Y+1, s.cursor.X+1))...)
	}
}

// SetTitle sets the window/icon title (OSC 0/2).
func (s *Screen) SetTitle(title string) {
	s.title = title
}

// Debug is called for a recognised-but-unmapped or malformed control
// sequence. It has no effect on grid state; if a logger has been
// attached via SetLogger, the sequence is forwarded to it.
func (s *Screen) Debug(sequence string) {
	if s.logger != nil {
		s.logger.Debug(sequence)
	}
}
