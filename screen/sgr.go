package screen

import "github.com/vtscreen/govte"

// SelectGraphicRendition applies one or more SGR parameter groups to
// the cursor's carried style. Groups are interpreted in order, each
// independently; unknown codes are skipped. Extended 256-color and
// truecolor forms (38/48 with a `:2`/`:5` sub-parameter or as
// separate `;`-joined legacy groups) are both supported.
func (s *Screen) SelectGraphicRendition(params [][]uint16) {
	if len(params) == 0 {
		s.cursor.Style = DefaultStyle()
		return
	}

	for i := 0; i < len(params); i++ {
		group := params[i]
		if len(group) == 0 {
			continue
		}
		code := group[0]

		switch {
		case code == 0:
			s.cursor.Style = DefaultStyle()
		case code == 1:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Add(govte.AttrBold)
		case code == 2:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Add(govte.AttrDim)
		case code == 3:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Add(govte.AttrItalic)
		case code == 4:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Add(govte.AttrUnderline)
		case code == 5 || code == 6:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Add(govte.AttrBlinking)
		case code == 7:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Add(govte.AttrReverse)
		case code == 8:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Add(govte.AttrHidden)
		case code == 9:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Add(govte.AttrStrikethrough)
		case code == 21:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Add(govte.AttrDoubleUnderline)
		case code == 22:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Remove(govte.AttrBold).Remove(govte.AttrDim)
		case code == 23:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Remove(govte.AttrItalic)
		case code == 24:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Remove(govte.AttrUnderline).Remove(govte.AttrDoubleUnderline)
		case code == 25:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Remove(govte.AttrBlinking)
		case code == 27:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Remove(govte.AttrReverse)
		case code == 28:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Remove(govte.AttrHidden)
		case code == 29:
			s.cursor.Style.Attr = s.cursor.Style.Attr.Remove(govte.AttrStrikethrough)
		case code >= 30 && code <= 37:
			s.cursor.Style.Fg = govte.NewNamedColor(namedColorFromSGR(code - 30))
		case code == 38:
			consumed := s.applyExtendedColor(params[i:], true)
			i += consumed - 1
		case code == 39:
			s.cursor.Style.Fg = govte.NewNamedColor(govte.Foreground)
		case code >= 40 && code <= 47:
			s.cursor.Style.Bg = govte.NewNamedColor(namedColorFromSGR(code - 40))
		case code == 48:
			consumed := s.applyExtendedColor(params[i:], false)
			i += consumed - 1
		case code == 49:
			s.cursor.Style.Bg = govte.NewNamedColor(govte.Background)
		case code >= 90 && code <= 97:
			s.cursor.Style.Fg = govte.NewNamedColor(namedColorFromSGR(code-90) + 8)
		case code >= 100 && code <= 107:
			s.cursor.Style.Bg = govte.NewNamedColor(namedColorFromSGR(code-100) + 8)
		}
	}
}

func namedColorFromSGR(code uint16) govte.NamedColor {
	switch code {
	case 0:
		return govte.Black
	case 1:
		return govte.Red
	case 2:
		return govte.Green
	case 3:
		return govte.Yellow // "brown" in the classic vt102 palette
	case 4:
		return govte.Blue
	case 5:
		return govte.Magenta
	case 6:
		return govte.Cyan
	default:
		return govte.White
	}
}

// applyExtendedColor handles a 38/48 group, either in `:`-joined form
// (a single group `{38, 2|5, ...}`) or the legacy `;`-joined form
// (separate groups consumed from the slice). Returns the number of
// groups consumed starting at params[0].
func (s *Screen) applyExtendedColor(params [][]uint16, fg bool) int {
	head := params[0]
	if len(head) >= 2 {
		// Colon-joined sub-parameters: {38, kind, ...}
		switch kind, rest := head[1], head[2:]; kind {
		case 2:
			if len(rest) >= 3 {
				s.setColor(fg, govte.NewRgbColor(uint8(rest[0]), uint8(rest[1]), uint8(rest[2])))
			}
		case 5:
			if len(rest) >= 1 {
				s.setColor(fg, govte.NewIndexedColor(uint8(rest[0])))
			}
		}
		return 1
	}
	if len(params) < 2 || len(params[1]) == 0 {
		return 1
	}
	kind := params[1][0]
	switch kind {
	case 2:
		if len(params) < 5 {
			return len(params)
		}
		r := componentOr(params[2], 0)
		g := componentOr(params[3], 0)
		b := componentOr(params[4], 0)
		s.setColor(fg, govte.NewRgbColor(uint8(r), uint8(g), uint8(b)))
		return 5
	case 5:
		if len(params) < 3 || len(params[2]) == 0 {
			return 2
		}
		s.setColor(fg, govte.NewIndexedColor(uint8(params[2][0])))
		return 3
	default:
		return 1
	}
}

func (s *Screen) setColor(fg bool, c govte.Color) {
	if fg {
		s.cursor.Style.Fg = c
	} else {
		s.cursor.Style.Bg = c
	}
}

func componentOr(group []uint16, def uint16) uint16 {
	if len(group) == 0 {
		return def
	}
	return group[0]
}
