// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical bytes, which is what makes content addressing
// of encoded values meaningful.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured for the IPLD data model.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// IPLD maps carry text keys only. When the decoder's target is
		// interface{}/any, it must pick a concrete Go map type; forcing
		// map[string]any makes a non-text map key an immediate decode
		// error instead of a silently mistyped map[any]any.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		// Integers of every wire width funnel into one representation:
		// int64 when the value fits, big.Int otherwise. A u64 above
		// math.MaxInt64 and a bignum outside the 64-bit range both
		// survive decoding without truncation.
		IntDec: cbor.IntDecConvertSignedOrBigInt,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
	// Decode nesting depth is bounded by the engine (MaxNestedLevels
	// defaults to 32), so adversarially deep input cannot exhaust the
	// stack through the recursive value fold in lib/ipld.
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Encoder is a CBOR stream encoder. Type alias so consumers import
// only lib/codec, not fxamacker/cbor directly.
type Encoder = cbor.Encoder

// Decoder is a CBOR stream decoder. Type alias so consumers import
// only lib/codec, not fxamacker/cbor directly.
type Decoder = cbor.Decoder

// RawMessage is a raw encoded CBOR value. It implements
// cbor.Marshaler and cbor.Unmarshaler so it can be used to delay
// CBOR decoding or pre-encode CBOR output.
type RawMessage = cbor.RawMessage

// Tag is a CBOR tag (major type 6): a tag number annotating one
// nested data item. Decoding an unrecognized tagged item into any
// produces a Tag; encoding a Tag produces the tag number and its
// content as a single tagged unit.
type Tag = cbor.Tag

// NewEncoder returns a CBOR encoder that writes to w using the
// module's Core Deterministic Encoding configuration.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a CBOR decoder that reads from r using the
// module's standard decoding configuration.
func NewDecoder(r io.Reader) *Decoder {
	return decMode.NewDecoder(r)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}

// DiagnoseFirst returns the CBOR diagnostic notation for the first
// data item in data, along with the remaining unconsumed bytes. Use
// this to process CBOR sequences one item at a time.
func DiagnoseFirst(data []byte) (string, []byte, error) {
	return cbor.DiagnoseFirst(data)
}
