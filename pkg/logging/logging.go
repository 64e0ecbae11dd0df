// Copyright 2025 The cthash Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides the leveled logging used by the cthash CLI.
// It defines a small Logger interface, a pluggable Formatter for text
// and JSON output, and a DefaultLogger implementation.
package logging

import "strings"

// LogLevel is the severity of a log message.
type LogLevel int

const (
	// LevelDebug is the most verbose level.
	LevelDebug LogLevel = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn indicates potential problems.
	LevelWarn
	// LevelError indicates failures.
	LevelError
	// LevelSilent disables all output.
	LevelSilent
)

// String returns the lower-case name of the level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a level name. Unrecognized input falls back to
// LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// LogFormat selects the output format.
type LogFormat int

const (
	// FormatText outputs human-readable text logs.
	FormatText LogFormat = iota
	// FormatJSON outputs one JSON object per entry.
	FormatJSON
)

// ParseLogFormat parses a format name. Unrecognized input falls back to
// FormatText.
func ParseLogFormat(s string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger is the leveled, structured logging interface used throughout
// the CLI. Any backend can implement it; DefaultLogger is the built-in
// one.
type Logger interface {
	// Debug logs at debug level with printf-style formatting.
	Debug(format string, args ...interface{})
	// Info logs at info level with printf-style formatting.
	Info(format string, args ...interface{})
	// Warn logs at warn level with printf-style formatting.
	Warn(format string, args ...interface{})
	// Error logs at error level with printf-style formatting.
	Error(format string, args ...interface{})

	// GetLevel returns the current minimum level.
	GetLevel() LogLevel

	// WithField returns a Logger that attaches the key-value pair to
	// every entry.
	WithField(key string, value interface{}) Logger
}

// Default returns an info-level text logger writing to stderr.
func Default() Logger {
	return NewLogger(DefaultLoggerOptions())
}

// EnsureLogger returns l, or a default logger when l is nil.
func EnsureLogger(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}
