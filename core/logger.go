package core

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// base is the process-wide logrus instance every subsystem logger derives
// from via WithField. Formatting defaults to logrus's text formatter; hosts
// embedding this library can replace it with SetOutput/SetFormatter on the
// value returned by Base.
var (
	base     *logrus.Logger
	baseOnce sync.Once
)

// Base returns the shared root logger, creating it on first use.
func Base() *logrus.Logger {
	baseOnce.Do(func() {
		base = logrus.New()
		base.SetOutput(os.Stderr)
		base.SetLevel(logrus.WarnLevel)
	})
	return base
}

// Logger is a subsystem-scoped logging handle. It exists so resolution,
// DPLL, and the FOL chaining routines can log with a consistent "system"
// field without every call site spelling it out.
type Logger struct {
	entry *logrus.Entry
}

// NewLogger returns a Logger tagged with the given subsystem name, e.g.
// "prop.resolution" or "fol.forwardchain".
func NewLogger(system string) *Logger {
	return &Logger{entry: Base().WithField("system", system)}
}

func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.entry.WithField(key, value)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.entry.Tracef(format, args...)
}
