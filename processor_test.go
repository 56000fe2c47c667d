package govte

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProcessorCreation(t *testing.T) {
	p := NewProcessor(&NoopHandler{})
	assert.NotNil(t, p)
	assert.NotNil(t, p.parser)
	assert.NotNil(t, p.syncState)
	assert.Equal(t, 150*time.Millisecond, p.syncState.timeout)
}

func TestProcessorBasicText(t *testing.T) {
	p := NewProcessor(&NoopHandler{})
	h := NewTestHandler()

	p.Advance(h, []byte("Hello"))

	assert.Equal(t, []rune{'H', 'e', 'l', 'l', 'o'}, h.drawnChars)
}

func TestProcessorControlCharacters(t *testing.T) {
	p := NewProcessor(&NoopHandler{})
	h := NewTestHandler()

	// Test various control characters
	p.Advance(h, []byte("\x07")) // BEL
	assert.Equal(t, 1, h.bellCount)

	p.Advance(h, []byte("\x08")) // BS
	// Backspace doesn't have a test handler method, but it shouldn't panic

	p.Advance(h, []byte("\x0A")) // LF
	assert.Equal(t, 1, h.lineFeedCount)

	p.Advance(h, []byte("\x0D")) // CR
	assert.Equal(t, 1, h.carriageReturns)
}

func TestProcessorCursorMovement(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
		checkFn  func(*testing.T, *TestHandler)
	}{
		{
			name:     "Cursor up",
			sequence: "\x1b[5A",
			checkFn: func(t *testing.T, h *TestHandler) {
				// CursorUp is routed through NoopHandler in this test, no direct assertion
			},
		},
		{
			name:     "Cursor position",
			sequence: "\x1b[10;20H",
			checkFn: func(t *testing.T, h *TestHandler) {
				assert.Equal(t, 10, h.cursorPos.line)
				assert.Equal(t, 20, h.cursorPos.col)
			},
		},
		{
			name:     "Cursor position with defaults",
			sequence: "\x1b[H",
			checkFn: func(t *testing.T, h *TestHandler) {
				assert.Equal(t, 1, h.cursorPos.line)
				assert.Equal(t, 1, h.cursorPos.col)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(&NoopHandler{})
			h := NewTestHandler()

			p.Advance(h, []byte(tt.sequence))
			tt.checkFn(t, h)
		})
	}
}

func TestProcessorSGRForwarding(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
		expected [][]uint16
	}{
		{"Bold", "\x1b[1m", [][]uint16{{1}}},
		{"Named foreground", "\x1b[31m", [][]uint16{{31}}},
		{"Multiple groups", "\x1b[1;31;44m", [][]uint16{{1}, {31}, {44}}},
		{"RGB extended foreground", "\x1b[38:2:255:128:64m", [][]uint16{{38, 2, 255, 128, 64}}},
		{"256-color palette", "\x1b[38:5:128m", [][]uint16{{38, 5, 128}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(&NoopHandler{})
			h := NewTestHandler()

			p.Advance(h, []byte(tt.sequence))
			assert.Len(t, h.sgrCalls, 1)
			assert.Equal(t, tt.expected, h.sgrCalls[0])
		})
	}
}

func TestProcessorEraseOperations(t *testing.T) {
	tests := []struct {
		name           string
		sequence       string
		expectedLines  []LineClearMode
		expectedScreen []ClearMode
	}{
		{
			name:          "Erase line right",
			sequence:      "\x1b[K",
			expectedLines: []LineClearMode{LineClearRight},
		},
		{
			name:          "Erase line left",
			sequence:      "\x1b[1K",
			expectedLines: []LineClearMode{LineClearLeft},
		},
		{
			name:          "Erase entire line",
			sequence:      "\x1b[2K",
			expectedLines: []LineClearMode{LineClearAll},
		},
		{
			name:           "Erase screen below",
			sequence:       "\x1b[J",
			expectedScreen: []ClearMode{ClearBelow},
		},
		{
			name:           "Erase screen above",
			sequence:       "\x1b[1J",
			expectedScreen: []ClearMode{ClearAbove},
		},
		{
			name:           "Erase entire screen",
			sequence:       "\x1b[2J",
			expectedScreen: []ClearMode{ClearAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(&NoopHandler{})
			h := NewTestHandler()

			p.Advance(h, []byte(tt.sequence))

			if tt.expectedLines != nil {
				assert.Equal(t, tt.expectedLines, h.erasedLines)
			}
			if tt.expectedScreen != nil {
				assert.Equal(t, tt.expectedScreen, h.erasedScreens)
			}
		})
	}
}

func TestProcessorModes(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
		mode     Mode
		enabled  bool
	}{
		{
			name:     "Set private mode",
			sequence: "\x1b[?25h",
			mode:     ModeDECTCEM,
			enabled:  true,
		},
		{
			name:     "Reset private mode",
			sequence: "\x1b[?25l",
			mode:     ModeDECTCEM,
			enabled:  false,
		},
		{
			name:     "Set standard mode",
			sequence: "\x1b[4h",
			mode:     ModeIRM,
			enabled:  true,
		},
		{
			name:     "Reset standard mode",
			sequence: "\x1b[4l",
			mode:     ModeIRM,
			enabled:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(&NoopHandler{})
			h := NewTestHandler()

			p.Advance(h, []byte(tt.sequence))

			val, exists := h.modes[tt.mode]
			assert.True(t, exists)
			assert.Equal(t, tt.enabled, val)
		})
	}
}

func TestProcessorDebugDispatch(t *testing.T) {
	tests := []struct {
		name     string
		sequence string
	}{
		{"Unrecognised CSI final", "\x1b[5z"},
		{"Unrecognised ESC final", "\x1bZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(&NoopHandler{})
			h := NewTestHandler()

			p.Advance(h, []byte(tt.sequence))
			assert.Len(t, h.debugCalls, 1)
		})
	}
}

func TestProcessorOSC(t *testing.T) {
	tests := []struct {
		name          string
		sequence      string
		expectedTitle string
	}{
		{
			name:          "Set window title with BEL",
			sequence:      "\x1b]0;Test Title\x07",
			expectedTitle: "Test Title",
		},
		{
			name:          "Set window title with ST",
			sequence:      "\x1b]2;Another Title\x1b\\",
			expectedTitle: "Another Title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(&NoopHandler{})
			h := NewTestHandler()

			p.Advance(h, []byte(tt.sequence))
			assert.Equal(t, tt.expectedTitle, h.title)
		})
	}
}

func TestProcessorReset(t *testing.T) {
	p := NewProcessor(&NoopHandler{})

	// Modify some state
	p.Advance(&NoopHandler{}, []byte("Test"))

	// Reset
	p.Reset()

	assert.NotNil(t, p.parser)
	assert.False(t, p.syncState.enabled)
	assert.Empty(t, p.syncState.buffer)
}

func TestProcessorSyncTimeout(t *testing.T) {
	p := NewProcessor(&NoopHandler{})

	// Set custom timeout
	p.SetSyncTimeout(200 * time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, p.syncState.timeout)
}

func TestGetParam(t *testing.T) {
	groups := [][]uint16{
		{1, 2, 3},
		{4},
		{5, 6},
	}

	tests := []struct {
		groupIdx     int
		paramIdx     int
		defaultValue int
		expected     int
	}{
		{0, 0, 10, 1},  // First param of first group
		{0, 1, 10, 2},  // Second param of first group
		{0, 2, 10, 3},  // Third param of first group
		{1, 0, 10, 4},  // First param of second group
		{2, 1, 10, 6},  // Second param of third group
		{3, 0, 10, 10}, // Out of bounds group - use default
		{0, 5, 10, 10}, // Out of bounds param - use default
		{0, 0, 0, 1},   // Default is 0, value is non-zero
		{1, 1, 20, 20}, // Param doesn't exist - use default
	}

	for _, tt := range tests {
		result := getParam(groups, tt.groupIdx, tt.paramIdx, tt.defaultValue)
		assert.Equal(t, tt.expected, result)
	}
}
