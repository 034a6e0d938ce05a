// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/prettycbor/prettycbor/lib/codec"
	"github.com/prettycbor/prettycbor/lib/hexinput"
	"github.com/prettycbor/prettycbor/lib/layout"
)

// render turns raw input into indented diagnostic notation: classify,
// convert hex-decoded CBOR if needed, then lay out. Conversion
// failures abort; the layout engine never sees a failed conversion's
// output.
func render(raw []byte, opts options, logger *slog.Logger) (string, error) {
	mode := hexinput.ModeAuto
	switch {
	case opts.hex:
		mode = hexinput.ModeHex
	case opts.diag:
		mode = hexinput.ModeDiag
	}

	result, err := hexinput.Classify(raw, mode)
	if err != nil {
		return "", err
	}
	if result.HexErr != nil {
		logger.Debug("input is not hexadecimal, treating it as diagnostic notation",
			"error", result.HexErr)
	}

	if result.Kind == hexinput.KindDiag {
		text := strings.TrimRight(string(result.Data), "\r\n")
		return layout.Indent(text, opts.indent), nil
	}

	// Decoded CBOR bytes. Convert item by item so CBOR sequences
	// (RFC 8742) come out as one laid-out block per item.
	var blocks []string
	remaining := result.Data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining, opts.embedded)
		if err != nil {
			offset := len(result.Data) - len(remaining)
			return "", fmt.Errorf("convert CBOR at byte %d: %w", offset, err)
		}
		blocks = append(blocks, layout.Indent(notation, opts.indent))
		remaining = rest
	}
	return strings.Join(blocks, "\n"), nil
}
