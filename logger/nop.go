package logger

import (
	"os"
	"sync/atomic"
)

type nopLogger struct {
	level *atomic.Int32
}

// NewNop returns a Logger that discards every message. Fatal still exits the process.
func NewNop() Logger {
	l := &nopLogger{level: &atomic.Int32{}}
	l.level.Store(int32(InfoLevel))

	return l
}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Fatal(string, ...any) { os.Exit(1) }

func (l *nopLogger) With(...any) Logger { return l }

func (l *nopLogger) Level() Level { return Level(l.level.Load()) }

func (l *nopLogger) SetLevel(level Level) { l.level.Store(int32(level)) }
