// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package log provides a thread safe leveled logger
// with key=value context pairs.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var defaultWriter io.Writer = os.Stdout

// Logger is the logger implementation structure.
// It is thread safe to use.
type Logger struct {
	settings settings
	mutex    *sync.Mutex // pointer for child loggers
}

// New creates a new logger.
// If you want to create more loggers with different settings for the
// same writer, child loggers can be created using the New method on
// the parent logger, to ensure thread safety on the same writer.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()

	return &Logger{
		settings: s,
		mutex:    new(sync.Mutex),
	}
}

// New creates a new thread safe child logger.
// It inherits the settings of its parent, overridden
// by the options given.
func (l *Logger) New(options ...Option) *Logger {
	s := newSettings(options)
	s.mergeWith(l.settings)
	s.setDefaults()

	return &Logger{
		settings: s,
		mutex:    l.mutex,
	}
}

// Patch patches the existing settings with any option given.
// Note it does not affect child loggers.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	for _, option := range options {
		option(&l.settings)
	}
	l.settings.setDefaults()
}

func (l *Logger) log(logLevel Level, s string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if *l.settings.level > logLevel {
		return
	}

	line := time.Now().Format("2006-01-02T15:04:05") +
		" " + logLevel.ColouredString() + " " + s

	if len(l.settings.context) > 0 {
		keyValues := make([]string, 0, len(l.settings.context))
		for _, kvs := range l.settings.context {
			keyValue := kvs.key + "=" + strings.Join(kvs.values, ",")
			keyValues = append(keyValues, keyValue)
		}
		line += "\t" + strings.Join(keyValues, " ")
	}

	fmt.Fprintln(l.settings.writer, line)
}

func (l *Logger) logf(logLevel Level, format string, args ...interface{}) {
	l.log(logLevel, fmt.Sprintf(format, args...))
}

// Trace logs with the trce level.
func (l *Logger) Trace(s string) { l.log(Trace, s) }

// Debug logs with the dbug level.
func (l *Logger) Debug(s string) { l.log(Debug, s) }

// Info logs with the info level.
func (l *Logger) Info(s string) { l.log(Info, s) }

// Warn logs with the warn level.
func (l *Logger) Warn(s string) { l.log(Warn, s) }

// Error logs with the eror level.
func (l *Logger) Error(s string) { l.log(Error, s) }

// Critical logs with the crit level.
func (l *Logger) Critical(s string) { l.log(Critical, s) }

// Tracef formats and logs at the trce level.
func (l *Logger) Tracef(format string, args ...interface{}) { l.logf(Trace, format, args...) }

// Debugf formats and logs at the dbug level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(Debug, format, args...) }

// Infof formats and logs at the info level.
func (l *Logger) Infof(format string, args ...interface{}) { l.logf(Info, format, args...) }

// Warnf formats and logs at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.logf(Warn, format, args...) }

// Errorf formats and logs at the eror level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(Error, format, args...) }

// Criticalf formats and logs at the crit level.
func (l *Logger) Criticalf(format string, args ...interface{}) { l.logf(Critical, format, args...) }
