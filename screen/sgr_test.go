package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vtscreen/govte"
)

func TestSGRResetRestoresDefaultStyle(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{1}, {31}})
	s.SelectGraphicRendition(nil)

	assert.Equal(t, DefaultStyle(), s.cursor.Style)
}

func TestSGREmptyGroupDefaultsToReset(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{1}})
	s.SelectGraphicRendition([][]uint16{})

	assert.Equal(t, DefaultStyle(), s.cursor.Style)
}

func TestSGRBasicAttributes(t *testing.T) {
	tests := []struct {
		name string
		code uint16
		attr govte.Attr
	}{
		{"bold", 1, govte.AttrBold},
		{"dim", 2, govte.AttrDim},
		{"italic", 3, govte.AttrItalic},
		{"underline", 4, govte.AttrUnderline},
		{"blink", 5, govte.AttrBlinking},
		{"reverse", 7, govte.AttrReverse},
		{"hidden", 8, govte.AttrHidden},
		{"strikethrough", 9, govte.AttrStrikethrough},
		{"double underline", 21, govte.AttrDoubleUnderline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustNewScreen(1, 1)
			s.SelectGraphicRendition([][]uint16{{tt.code}})
			assert.True(t, s.cursor.Style.Attr.Has(tt.attr))
		})
	}
}

func TestSGRAttributeRemoval(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{1}, {4}, {7}})
	s.SelectGraphicRendition([][]uint16{{22}, {24}, {27}})

	assert.False(t, s.cursor.Style.Attr.Has(govte.AttrBold))
	assert.False(t, s.cursor.Style.Attr.Has(govte.AttrUnderline))
	assert.False(t, s.cursor.Style.Attr.Has(govte.AttrReverse))
}

func TestSGRNamedForegroundAndBackground(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{31}, {44}})

	assert.Equal(t, govte.NewNamedColor(govte.Red), s.cursor.Style.Fg)
	assert.Equal(t, govte.NewNamedColor(govte.Blue), s.cursor.Style.Bg)
}

func TestSGRBrightForegroundAndBackground(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{91}, {104}})

	assert.Equal(t, govte.NewNamedColor(govte.BrightRed), s.cursor.Style.Fg)
	assert.Equal(t, govte.NewNamedColor(govte.BrightBlue), s.cursor.Style.Bg)
}

func TestSGRDefaultForegroundBackground(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{31}, {44}})
	s.SelectGraphicRendition([][]uint16{{39}, {49}})

	assert.Equal(t, govte.NewNamedColor(govte.Foreground), s.cursor.Style.Fg)
	assert.Equal(t, govte.NewNamedColor(govte.Background), s.cursor.Style.Bg)
}

func TestSGRIndexedColorLegacySemicolonForm(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{38}, {5}, {200}})

	assert.Equal(t, govte.NewIndexedColor(200), s.cursor.Style.Fg)
}

func TestSGRTruecolorLegacySemicolonForm(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{48}, {2}, {10}, {20}, {30}})

	assert.Equal(t, govte.NewRgbColor(10, 20, 30), s.cursor.Style.Bg)
}

func TestSGRIndexedColorColonJoinedForm(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{38, 5, 77}})

	assert.Equal(t, govte.NewIndexedColor(77), s.cursor.Style.Fg)
}

func TestSGRTruecolorColonJoinedForm(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{38, 2, 1, 2, 3}})

	assert.Equal(t, govte.NewRgbColor(1, 2, 3), s.cursor.Style.Fg)
}

func TestSGRUnknownCodeIsSkipped(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{1}, {59}, {4}})

	assert.True(t, s.cursor.Style.Attr.Has(govte.AttrBold))
	assert.True(t, s.cursor.Style.Attr.Has(govte.AttrUnderline))
}

func TestSGRGroupsApplyInOrder(t *testing.T) {
	s := MustNewScreen(1, 1)
	s.SelectGraphicRendition([][]uint16{{31}, {0}, {32}})

	assert.Equal(t, govte.NewNamedColor(govte.Green), s.cursor.Style.Fg)
	assert.False(t, s.cursor.Style.Attr.Has(govte.AttrBold))
}
