// Package obs holds the observability seams the client reports
// through: a leveled Logger and a Meter for counters and durations.
// Both default to no-ops so protocol code never checks for nil.
package obs

import "log"

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is a minimal logging interface. Implementations must be safe
// for concurrent use; independent exchanges may log at once.
type Logger interface {
	Logf(level Level, format string, args ...interface{})
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(level Level, format string, args ...interface{}) {}

// StdLogger adapts the standard library logger, dropping entries
// below Min.
type StdLogger struct {
	L   *log.Logger
	Min Level
}

func (s StdLogger) Logf(level Level, format string, args ...interface{}) {
	if s.L == nil || level < s.Min {
		return
	}
	s.L.Printf("[%s] "+format, append([]interface{}{level.String()}, args...)...)
}

// WireTap returns a line tap that echoes every protocol line at Debug
// level, prefixed with its direction ('>' written, '<' read). A nil
// logger yields a nil tap, disabling the echo entirely.
func WireTap(lg Logger) func(dir byte, line string) {
	if lg == nil {
		return nil
	}
	return func(dir byte, line string) {
		lg.Logf(Debug, "%c %s", dir, line)
	}
}
