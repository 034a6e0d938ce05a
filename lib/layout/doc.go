// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package layout reformats CBOR diagnostic notation (RFC 8949 §8) from
// a flat, single-line rendering into an indented multi-line one.
//
// The engine does not parse the notation. It scans the text once,
// left to right, and reacts to exactly three structural characters:
// container opens ({ and [), container closes (} and ]), and the item
// separator (,). A newline and depth-proportional indentation are
// inserted after every open, before every close, and after every
// separator. Everything else is copied through untouched, including
// whitespace already present in the input.
//
// Quote-delimited spans are opaque: a text string ("..." with
// backslash escapes) or a byte string ('...' behind any encoding
// prefix such as h or b64) is copied verbatim, so delimiter characters
// inside a literal never affect the computed depth or trigger line
// breaks. This is the engine's central invariant.
//
// Malformed input degrades instead of failing: a close with no
// matching open is emitted at column zero, containers still open at
// the end of the input are left open, and an unterminated literal
// swallows the rest of the input verbatim. Indent is total — there is
// no error path.
//
// Running Indent on its own output is well-defined but not a no-op:
// the first pass's newlines are ordinary pass-through characters on
// the second pass, which inserts its own breaks next to them.
package layout
