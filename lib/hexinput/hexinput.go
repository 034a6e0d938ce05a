// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package hexinput classifies raw command-line input as hex-encoded
// CBOR or as diagnostic-notation text.
package hexinput

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"unicode"
)

// Mode selects how Classify treats the input.
type Mode int

const (
	// ModeAuto tries a hex decode and falls back to diagnostic text
	// when the input is not valid hexadecimal.
	ModeAuto Mode = iota

	// ModeHex requires the input to be hex-encoded CBOR.
	ModeHex

	// ModeDiag takes the input as diagnostic-notation text directly.
	ModeDiag
)

// Kind is the classification result.
type Kind int

const (
	// KindCBOR means Data holds decoded CBOR bytes that still need
	// conversion to diagnostic notation.
	KindCBOR Kind = iota

	// KindDiag means Data holds diagnostic-notation text.
	KindDiag
)

// Result is a classified input.
type Result struct {
	Kind Kind
	Data []byte

	// HexErr records the hex-decode failure that caused an auto-mode
	// fallback to diagnostic text. Nil in every other case. Callers
	// may log it; it is not an error condition.
	HexErr error
}

// Decode strips whitespace from hex-encoded input and decodes it to
// binary. Whitespace anywhere between digit pairs is allowed, so wire
// dumps like "a1 63 6b 65 79" paste straight in.
func Decode(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// Classify applies mode to the raw input. ModeHex fails on input that
// does not decode; ModeAuto never fails, recording the decode failure
// in Result.HexErr instead.
func Classify(raw []byte, mode Mode) (Result, error) {
	switch mode {
	case ModeHex:
		decoded, err := Decode(raw)
		if err != nil {
			return Result{}, fmt.Errorf("hexadecimal decoding failed: %w", err)
		}
		return Result{Kind: KindCBOR, Data: decoded}, nil

	case ModeDiag:
		return Result{Kind: KindDiag, Data: raw}, nil

	default:
		decoded, err := Decode(raw)
		if err != nil {
			return Result{Kind: KindDiag, Data: raw, HexErr: err}, nil
		}
		return Result{Kind: KindCBOR, Data: decoded}, nil
	}
}
