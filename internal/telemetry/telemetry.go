// Package telemetry threads a structured diagnostic logger through
// context.Context, mirroring the teacher's dominant logging idiom:
// goa.design/clue/log's context-scoped package functions
// (log.Context/log.Printf/log.Debugf), used throughout subm/*.go and
// users.go (e.g. subm/subm-create.go's log.Errorf/log.Printf calls),
// rather than the stdlib-slog-backed logger.Context helper the teacher
// reserves for its HTTP middleware stack and uses in far fewer files.
//
// The engine logs one debug-level event per processed command to
// stderr; it never writes to the writer the protocol output goes to,
// and default verbosity is silent so a default run matches spec.md
// §6's stdout-only contract byte-for-byte.
package telemetry

import (
	"context"
	"io"

	"goa.design/clue/log"
)

// Level is the diagnostic verbosity knob, distinct from the contest's
// own state machine.
type Level string

const (
	LevelSilent Level = "silent"
	LevelInfo   Level = "info"
	LevelDebug  Level = "debug"
)

// Context returns a context carrying a clue logger writing to w. Only
// LevelDebug enables the Debugf calls the engine makes; LevelSilent and
// LevelInfo both leave diagnostic output disabled, since the engine has
// nothing to say at info level that isn't also a debug event.
func Context(ctx context.Context, level Level, w io.Writer) context.Context {
	opts := []log.LogOption{log.WithOutput(w), log.WithFormat(log.FormatJSON)}
	if level == LevelDebug {
		opts = append(opts, log.WithDebug())
	}
	return log.Context(ctx, opts...)
}

// ParseLevel maps the -log-level flag / ICPCBOARD_LOG_LEVEL env value
// onto a Level, defaulting to LevelSilent for anything unrecognized.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelInfo, LevelDebug:
		return Level(s)
	default:
		return LevelSilent
	}
}

// Debugf logs one diagnostic event for a processed command, mirroring
// the teacher's log.Printf(ctx, ...) call sites. It is a no-op unless
// ctx was built with Context(ctx, LevelDebug, w).
func Debugf(ctx context.Context, format string, v ...interface{}) {
	log.Debugf(ctx, format, v...)
}
