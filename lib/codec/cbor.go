// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// ErrConvert marks a failed conversion from CBOR bytes to diagnostic
// notation. Callers match it with errors.Is; the layout engine is
// never handed the output of a failed conversion.
var ErrConvert = errors.New("cbor conversion failed")

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items.
var encMode cbor.EncMode

// decMode is the CBOR decoder. DefaultMapType keeps any-typed targets
// compatible with ordinary Go code when map keys are strings.
var decMode cbor.DecMode

// diagMode renders byte strings as h'...' hex literals.
var diagMode cbor.DiagMode

// diagEmbeddedMode additionally expands byte strings holding
// well-formed CBOR into <<...>> embedded form, the equivalent of
// cbor2diag.rb's -e flag.
var diagEmbeddedMode cbor.DiagMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}

	diagMode, err = cbor.DiagOptions{}.DiagMode()
	if err != nil {
		panic("codec: CBOR diagnostic mode initialization failed: " + err.Error())
	}

	diagEmbeddedMode, err = cbor.DiagOptions{
		ByteStringEmbeddedCBOR: true,
	}.DiagMode()
	if err != nil {
		panic("codec: CBOR embedded diagnostic mode initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Diagnose returns the diagnostic notation for the single data item
// in data. With embedded set, byte strings containing well-formed
// CBOR are rendered as <<...>> instead of hex.
func Diagnose(data []byte, embedded bool) (string, error) {
	notation, err := diag(embedded).Diagnose(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConvert, err)
	}
	return notation, nil
}

// DiagnoseFirst returns the diagnostic notation for the first data
// item in data along with the unconsumed remainder. Callers iterate
// it to process CBOR sequences (RFC 8742) item by item.
func DiagnoseFirst(data []byte, embedded bool) (string, []byte, error) {
	notation, rest, err := diag(embedded).DiagnoseFirst(data)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrConvert, err)
	}
	return notation, rest, nil
}

func diag(embedded bool) cbor.DiagMode {
	if embedded {
		return diagEmbeddedMode
	}
	return diagMode
}
