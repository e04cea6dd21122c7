/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package log provides structured logging built on top of github.com/ssgreg/logf.
package log

import (
	"os"

	"github.com/ssgreg/logf"
)

// FieldLogger writes leveled messages with structured fields.
type FieldLogger interface {
	With(fields ...Field) FieldLogger
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// CloseFunc flushes buffered entries and stops the background writer.
type CloseFunc func()

// Logger is a FieldLogger backed by *logf.Logger.
type Logger struct {
	inner *logf.Logger
}

var _ FieldLogger = (*Logger)(nil)

// Wrap makes a FieldLogger from a logf logger.
func Wrap(l *logf.Logger) *Logger {
	return &Logger{inner: l}
}

// NewDisabledLogger returns a logger that drops every entry.
func NewDisabledLogger() FieldLogger {
	return Wrap(logf.NewDisabledLogger())
}

// NewLogger builds a logger from the configuration.
// The returned CloseFunc must be called before exit, otherwise buffered entries may be lost.
func NewLogger(cfg *Config) (FieldLogger, CloseFunc) {
	writer, closeWriter := logf.NewChannelWriter(logf.ChannelWriterConfig{
		Appender:          newAppender(cfg),
		EnableSyncOnError: true,
	})
	l := logf.NewLogger(cfg.Level.toLogf(), writer).With(logf.Int("pid", os.Getpid()))
	if cfg.AddCaller {
		l = l.WithCaller().WithCallerSkip(1)
	}
	return Wrap(l), CloseFunc(closeWriter)
}

// With returns a child logger that adds fields to every entry.
func (l *Logger) With(fields ...Field) FieldLogger {
	return Wrap(l.inner.With(fields...))
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields ...Field) { l.inner.Debug(msg, fields...) }

// Info logs at info level.
func (l *Logger) Info(msg string, fields ...Field) { l.inner.Info(msg, fields...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields ...Field) { l.inner.Warn(msg, fields...) }

// Error logs at error level.
func (l *Logger) Error(msg string, fields ...Field) { l.inner.Error(msg, fields...) }

var logfLevels = map[Level]logf.Level{
	LevelError: logf.LevelError,
	LevelWarn:  logf.LevelWarn,
	LevelInfo:  logf.LevelInfo,
	LevelDebug: logf.LevelDebug,
}

func (lvl Level) toLogf() logf.Level {
	if v, ok := logfLevels[lvl]; ok {
		return v
	}
	return logf.LevelInfo
}

// LevelOf maps a logf level back to Level.
func LevelOf(v logf.Level) Level {
	for lvl, lv := range logfLevels {
		if lv == v {
			return lvl
		}
	}
	return LevelInfo
}
