package verboselog

import (
	"sync"

	"verbose-log/internal/logging"
)

var (
	installMu     sync.Mutex
	defaultLogger *Logger
)

// Install creates the process-wide logger on first use. Later calls return
// the existing logger and ignore their options, so configuration applied
// after the first install is never reset.
func Install(opts ...Option) *Logger {
	installMu.Lock()
	defer installMu.Unlock()

	if defaultLogger != nil {
		if len(opts) > 0 {
			logging.Debug("verboselog: already installed, ignoring %d option(s)", len(opts))
		}
		return defaultLogger
	}
	defaultLogger = New(opts...)
	return defaultLogger
}

// Default returns the process-wide logger, installing one with defaults if
// needed.
func Default() *Logger {
	return Install()
}

// Log writes through the process-wide logger.
func Log(message any, level Level, customEmoji string) {
	Default().Log(message, level, customEmoji)
}

// Table writes a table through the process-wide logger.
func Table(data any, level Level, customEmoji string) {
	Default().Table(data, level, customEmoji)
}
