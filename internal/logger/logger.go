/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable leveled logger that can be silenced
// for batch runs and tests.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu sync.RWMutex
	// Default logs to stderr. Set to io.Discard for silent mode.
	output io.Writer = os.Stderr
	level            = zerolog.InfoLevel
	logger           = build(output, level)
)

func build(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(console).Level(lvl)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = build(output, level)
}

// SetLevel sets the minimum level that is written.
func SetLevel(lvl zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	logger = build(output, level)
}

// SetVerbosity maps the CLI flags onto a level: quiet wins over verbose.
func SetVerbosity(verbose, quiet bool) {
	switch {
	case quiet:
		SetLevel(zerolog.Disabled)
	case verbose:
		SetLevel(zerolog.DebugLevel)
	default:
		SetLevel(zerolog.InfoLevel)
	}
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// Critical logs a message about a broken internal invariant.
func Critical(format string, args ...any) {
	current().Error().Bool("critical", true).Msgf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	current().Error().Msgf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current().Warn().Msgf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current().Info().Msgf(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	current().Debug().Msgf(format, args...)
}
