// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the structured logger for command diagnostics.
// On a terminal it uses slog.TextHandler for human-readable output;
// when stderr is piped or redirected it switches to slog.JSONHandler
// so scripts get machine-parseable lines. Verbose lowers the level to
// Debug, which is where the classifier's auto-mode fallback reporting
// lives.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
