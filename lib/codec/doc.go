// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the module's standard CBOR encoding
// configuration.
//
// Everything above this package treats CBOR parsing and emission as a
// provided capability: buffer handling, tag-number wire encoding, and
// the primitive type mappings all live in fxamacker/cbor v2. This
// package pins one shared configuration so that every consumer encodes
// and decodes identically without duplicating options.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes.
//
// The decoder is configured for the IPLD data model:
//
//   - Map keys must be text. Any-typed targets decode maps as
//     map[string]any; a CBOR map with a non-text key is a decode
//     error, not a lossy conversion.
//   - Integers widen losslessly. Decoding into any yields int64 when
//     the value fits and big.Int otherwise, so unsigned 64-bit values
//     above the int64 range and bignums outside 64 bits round-trip
//     exactly.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
//
// Unrecognized CBOR tags decode into [Tag] values; interpreting them
// (in particular tag 42, the content link) is lib/ipld's job, not this
// package's.
package codec
