// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 the wechat-connect authors

// Package logger provides a thin wrapper around zerolog.Logger used by
// the wechat-connect tooling.
//
// The Logger type embeds zerolog.Logger so all standard zerolog
// methods (Debug, Info, Warn, Error, Fatal, etc.) are available
// directly on *Logger.
package logger

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding exposes
// the full zerolog API while leaving room for helper methods.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label (e.g. "errprobe").
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role, useful for filtering logs from
//     different tools;
//   - a "ts" timestamp field on every entry;
//   - a "func" caller field recording the fully-qualified function
//     name instead of the default file:line format.
//
// Output is written to os.Stdout in JSON format.
func New(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output. It is intended
// for tests and other contexts where logging would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
