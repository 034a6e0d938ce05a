// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding configuration shared by the
// tool and its tests.
//
// The interesting direction is CBOR bytes to diagnostic notation
// (RFC 8949 §8), done with fxamacker/cbor's diagnostic mode instead of
// shelling out to an external cbor2diag program. Two modes are
// prepared at init: the plain one renders byte strings as h'...' hex
// literals, the embedded one additionally tries to expand byte strings
// that hold well-formed CBOR into <<...>> form.
//
// The encoding direction uses Core Deterministic Encoding (RFC 8949
// §4.2) so fixtures built by tests are byte-stable.
package codec
