// Package logging provides the leveled logger behind the almanac's
// compute loop.  Lines carry a wall-clock timestamp and a short severity
// tag so interleaved loop output stays greppable.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Level is the minimum severity a Logger lets through.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = [...]string{"DBG", "INF", "WRN", "ERR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "???"
	}
	return levelTags[l]
}

// ParseLevel maps a config string to a Level.  Unrecognized strings fall
// back to info so a config typo never silences warnings.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped, severity-tagged lines to one destination.
// Methods are safe for concurrent use from the compute loop and main.
type Logger struct {
	mu  sync.Mutex
	min Level
	out io.Writer
}

// New returns a Logger writing to w at the given threshold.
func New(min Level, w io.Writer) *Logger {
	return &Logger{min: min, out: w}
}

func (l *Logger) printf(lv Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lv < l.min {
		return
	}
	fmt.Fprintf(l.out, "%s %s %s\n",
		time.Now().Format("15:04:05.000"), lv, fmt.Sprintf(format, args...))
}

// Debugf logs compute-loop detail, visible only at the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.printf(LevelDebug, format, args...)
}

// Warnf logs a recoverable condition, such as a series range warning.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.printf(LevelWarn, format, args...)
}

// Errorf logs a failed snapshot computation.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.printf(LevelError, format, args...)
}
