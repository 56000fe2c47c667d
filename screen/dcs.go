package screen

import (
	"fmt"
	"strings"
)

// dcsState accumulates an in-progress Device Control String. This
// core does not implement DECRQSS/Sixel/ReGIS bodies (out of scope);
// it only tracks enough to avoid corrupting state across Hook/Put/
// Unhook and to surface the sequence via Debug once finished.
type dcsState struct {
	active        bool
	params        [][]uint16
	intermediates []byte
	action        rune
	data          []byte
}

// Hook is called when a DCS sequence begins.
func (s *Screen) Hook(params [][]uint16, intermediates []byte, ignore bool, action rune) {
	if ignore {
		return
	}
	s.dcs = dcsState{
		active:        true,
		params:        params,
		intermediates: append([]byte(nil), intermediates...),
		action:        action,
	}
}

// Put receives data bytes within a DCS sequence.
func (s *Screen) Put(data []byte) {
	if !s.dcs.active {
		return
	}
	s.dcs.data = append(s.dcs.data, data...)
}

// Unhook is called when a DCS sequence ends.
func (s *Screen) Unhook() {
	if !s.dcs.active {
		return
	}
	s.Debug(formatDCS(s.dcs))
	s.dcs = dcsState{}
}

func formatDCS(d dcsState) string {
	var b strings.Builder
	b.WriteString("DCS ")
	b.Write(d.intermediates)
	b.WriteString(fmt.Sprint(d.params))
	b.WriteRune(d.action)
	b.Write(d.data)
	return b.String()
}
