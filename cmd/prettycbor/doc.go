// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

// Prettycbor pretty-prints CBOR diagnostic notation.
//
// Input is hex-encoded CBOR or diagnostic-notation text, taken from
// stdin, a file argument, or a literal data argument. Hex input is
// decoded and converted to diagnostic notation first; diagnostic text
// is laid out directly. Without --hex or --diag the tool tries a hex
// decode and falls back to treating the input as diagnostic text.
//
//	echo 'a2616101616202' | prettycbor
//	prettycbor '{"a":1,"b":[2,3]}'
//	prettycbor --embedded --indent 4 dump.hex
package main
