// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-line framework behind prettycbor.
//
// The central type is [Command]: a named command with an optional
// pflag FlagSet factory, a Run function, and nested subcommands.
// [Command.Execute] handles help flags, subcommand routing, flag
// parsing, and structured help output with examples. Unknown command
// and flag names get a "did you mean" suggestion computed by
// Levenshtein edit distance (threshold 3).
//
// [ExitError] lets a command request a specific exit code without an
// extra error line; main checks for its ExitCode method. [NewLogger]
// builds the slog logger commands use for diagnostics: human-readable
// text on a terminal, JSON when stderr is redirected.
package cli
