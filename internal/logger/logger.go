// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the voice notes server and client.
//
// Every entry is JSON with a "role" field, a timestamp and a "func" field
// naming the calling function. Request and stream handlers attach a scoped
// logger to their context, and code below them reads it back with
// [FromContext] or [FromRequest].
package logger

import (
	"context"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so Debug, Info, Warn, Err and friends are
// called on it directly.
type Logger struct {
	zerolog.Logger
}

var setupGlobals sync.Once

func configureGlobals() {
	setupGlobals.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

func newLogger(w io.Writer, role string) *Logger {
	configureGlobals()
	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger returns a logger for a server process writing to stdout.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a logger for the terminal client. The TUI owns the
// terminal, so entries are appended to logPath. An empty logPath means a
// "logs" file next to the executable; if the file cannot be opened entries
// go to stderr.
func NewClientLogger(role, logPath string) *Logger {
	return newLogger(openLogFile(logPath), role)
}

func openLogFile(logPath string) io.Writer {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "logs")
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l so fields added to the copy stay off the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// StdLogger adapts l for APIs that take a *log.Logger, such as
// http.Server.ErrorLog.
func (l *Logger) StdLogger(component string) *stdlog.Logger {
	return stdlog.New(l.With().Str("component", component).Logger(), "", 0)
}

// FromRequest returns the logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
