// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the go-task-keeper server and
// client.
//
// The Logger type embeds zerolog.Logger, so Debug, Info, Warn and the rest
// are available directly on *Logger. Pass *Logger by pointer and get
// request-scoped loggers through FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// New builds a JSON logger writing to w at level. Every entry carries the
// role, a timestamp and the calling function name.
func New(w io.Writer, role string, level zerolog.Level) *Logger {
	l := zerolog.New(w).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewLogger is the server logger: JSON on stdout, debug and above until
// SetLevel narrows it.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return New(os.Stdout, role, zerolog.DebugLevel)
}

// NewClientLogger constructs a *Logger for the command-line client. Entries
// go to stderr at warn level and above so they never mix with command output
// printed on stdout.
func NewClientLogger(role string) *Logger {
	logger := zerolog.New(os.Stderr).
		Level(zerolog.WarnLevel).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards everything. Meant for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// SetLevel changes the minimum level from a name such as "info" or "warn".
// An empty name keeps the current level.
func (l *Logger) SetLevel(name string) error {
	if name == "" {
		return nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", name, err)
	}

	l.Logger = l.Level(level)
	return nil
}

// GetChildLogger returns a copy of the receiver that can be given extra
// fields without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to r's context by the trace-id
// middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one zerolog falls
// back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// Fatalf logs the formatted message at fatal level and exits. Together with
// zerolog's Printf it lets *Logger serve as the migration tool logger.
func (l *Logger) Fatalf(format string, v ...any) {
	l.Fatal().Msg(fmt.Sprintf(format, v...))
}
