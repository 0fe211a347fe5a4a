// Package enginelog provides the small stdlib-backed logger used across the
// engine core, in the same spirit as engine/profiler.Profiler: a thin struct
// wrapping *log.Logger rather than a logging framework. Config/CLI/logging
// frameworks are out of scope (spec.md §1); debug-build diagnostics still
// need somewhere to go.
package enginelog

import (
	"log"
	"os"
)

// realExit is os.Exit; fatalExit points at it by default and is swapped out
// in tests (see export_test.go) so Fatalf's exit path doesn't kill the test
// binary.
var realExit = os.Exit
var fatalExit = realExit

// Logger wraps a standard library logger with an enable flag so callers can
// silence diagnostics (foreign-goroutine resource access, cyclic-hierarchy
// reports, shader compiler logs) without branching at every call site.
type Logger struct {
	out     *log.Logger
	enabled bool
}

// New creates a Logger writing to stderr with the given prefix. Disabled
// loggers still accept calls but discard them, so callers never need a nil
// check.
//
// Parameters:
//   - prefix: short tag prepended to every line (e.g. "ecs", "render")
//   - enabled: if false, Printf/Println are no-ops
//
// Returns:
//   - *Logger: the newly created logger
func New(prefix string, enabled bool) *Logger {
	return &Logger{
		out:     log.New(os.Stderr, "["+prefix+"] ", log.LstdFlags),
		enabled: enabled,
	}
}

// Printf logs a formatted message when the logger is enabled.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	l.out.Printf(format, args...)
}

// Println logs a message when the logger is enabled.
func (l *Logger) Println(args ...any) {
	if l == nil || !l.enabled {
		return
	}
	l.out.Println(args...)
}

// SetEnabled toggles whether subsequent calls are emitted.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.enabled = enabled
}

// Fatalf logs a formatted message unconditionally (ignoring the enabled
// flag, since a fatal error must surface) and terminates the process,
// matching the stdlib log.Fatalf contract callers replace it with.
func (l *Logger) Fatalf(format string, args ...any) {
	if l == nil {
		log.New(os.Stderr, "", log.LstdFlags).Printf(format, args...)
	} else {
		l.out.Printf(format, args...)
	}
	fatalExit(1)
}
