package screen

import "github.com/rs/zerolog"

// ZerologAdapter wraps a zerolog.Logger so it can be attached to a
// Screen via SetLogger, turning unrecognised-sequence debug events
// (the Parser's failure model never raises, it only emits these) into
// structured log lines instead of silently dropping them.
type ZerologAdapter struct {
	Logger zerolog.Logger
}

// NewZerologAdapter wraps l for use with Screen.SetLogger.
func NewZerologAdapter(l zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{Logger: l}
}

// Debug implements the debugLogger interface Screen.SetLogger expects.
func (a *ZerologAdapter) Debug(sequence string) {
	a.Logger.Debug().Str("sequence", sequence).Msg("unrecognised control sequence")
}

var _ debugLogger = (*ZerologAdapter)(nil)
