package gesture

import (
	"io"
	"log"
)

// SetDebugMode enables or disables debug mode. When enabled, binding changes,
// region lifetimes and dropped events are logged.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// SetLogger replaces the logger used for handler failures and debug output.
// A nil logger discards everything.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	e.logger = l
}

// logf reports conditions the host should know about regardless of debug mode.
func (e *Engine) logf(format string, args ...any) {
	e.logger.Printf(format, args...)
}

// debugf logs only in debug mode.
func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	e.logger.Printf("debug: "+format, args...)
}
