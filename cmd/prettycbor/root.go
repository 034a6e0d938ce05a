// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/prettycbor/prettycbor/cmd/prettycbor/cli"
	"github.com/prettycbor/prettycbor/lib/layout"
)

// options holds the root command's flag values.
type options struct {
	embedded bool
	indent   int
	hex      bool
	diag     bool
	color    string
	verbose  bool
}

func root() *cli.Command {
	var opts options

	return &cli.Command{
		Name:    "prettycbor",
		Summary: "Pretty-print CBOR diagnostic notation",
		Description: `Reformat CBOR diagnostic notation (RFC 8949 §8) into an indented,
multi-line layout.

Input is read from stdin, from a file named by the trailing argument,
or from the argument itself when it names no file. Hex-encoded CBOR is
decoded and converted to diagnostic notation before layout; diagnostic
text is laid out as-is. Without --hex or --diag the input is first
tried as hexadecimal and falls back to diagnostic text.

The layout pass does not parse or validate the data. Malformed input
is passed through on a best-effort basis rather than rejected.`,
		Usage: "prettycbor [flags] [data|file]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("prettycbor", pflag.ContinueOnError)
			flagSet.BoolVarP(&opts.embedded, "embedded", "e", false, "expand byte strings holding CBOR into <<...>> form")
			flagSet.IntVarP(&opts.indent, "indent", "i", layout.DefaultWidth, "spaces per indentation level")
			flagSet.BoolVarP(&opts.hex, "hex", "x", false, "force treating input as hex-encoded CBOR")
			flagSet.BoolVarP(&opts.diag, "diag", "d", false, "force treating input as diagnostic notation")
			flagSet.StringVar(&opts.color, "color", "auto", "colorize output: auto, always, or never")
			flagSet.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
			return flagSet
		},
		Subcommands: []*cli.Command{versionCommand()},
		Examples: []cli.Example{
			{
				Description: "Pretty-print hex-encoded CBOR",
				Command:     "echo 'a2616101616202' | prettycbor",
			},
			{
				Description: "Pretty-print diagnostic notation directly",
				Command:     `prettycbor '{"a":1,"b":[2,3]}'`,
			},
			{
				Description: "Expand embedded CBOR byte strings",
				Command:     "prettycbor --embedded dump.hex",
			},
			{
				Description: "Four-space indentation, no color",
				Command:     "prettycbor -i 4 --color never data.hex",
			},
		},
		Run: func(args []string) error {
			return runRoot(opts, args)
		},
	}
}

func runRoot(opts options, args []string) error {
	if opts.hex && opts.diag {
		return fmt.Errorf("--hex and --diag are mutually exclusive")
	}
	if opts.indent < 0 {
		return fmt.Errorf("--indent must be non-negative, got %d", opts.indent)
	}
	if opts.color != "auto" && opts.color != "always" && opts.color != "never" {
		return fmt.Errorf("--color must be auto, always, or never, got %q", opts.color)
	}

	logger := cli.NewLogger(opts.verbose).With("command", "prettycbor")

	raw, err := resolveInput(args)
	if err != nil {
		return err
	}

	output, err := render(raw, opts, logger)
	if err != nil {
		return err
	}

	fmt.Println(colorize(output, opts.color))
	return nil
}

// colorize applies syntax highlighting according to the --color mode.
// In auto mode styling is skipped entirely when stdout is not a
// terminal, so piped output stays byte-clean.
func colorize(text, mode string) string {
	switch mode {
	case "never":
		return text
	case "always":
		renderer := lipgloss.NewRenderer(os.Stdout)
		renderer.SetColorProfile(termenv.ANSI256)
		return layout.DefaultTheme(renderer).Highlight(text)
	default:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return text
		}
		return layout.DefaultTheme(lipgloss.NewRenderer(os.Stdout)).Highlight(text)
	}
}
