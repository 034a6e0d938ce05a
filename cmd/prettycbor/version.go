// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/prettycbor/prettycbor/cmd/prettycbor/cli"
	"github.com/prettycbor/prettycbor/lib/version"
)

func versionCommand() *cli.Command {
	var full bool

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Usage:   "prettycbor version [--full]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
			flagSet.BoolVar(&full, "full", false, "include Go and platform details")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("version takes no arguments, got %q", args[0])
			}
			if full {
				fmt.Println(version.Full())
			} else {
				fmt.Println("prettycbor " + version.Info())
			}
			return nil
		},
	}
}
