// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// resolveInput returns the raw input bytes. A single trailing argument
// naming a regular file on disk is read from disk; any other argument
// is taken as the data itself; with no argument, stdin is read.
func resolveInput(args []string) ([]byte, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("expected at most one data or file argument, got %d", len(args))
	}

	var data []byte
	switch {
	case len(args) == 1:
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			data, err = os.ReadFile(args[0])
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", args[0], err)
			}
		} else {
			data = []byte(args[0])
		}
	default:
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("no input received: pass data via stdin or as an argument")
	}
	return data, nil
}
