// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package ipld implements a self-describing, content-addressable data
// model over DAG-CBOR: the [Value] recursive variant type, the [Cid]
// content link, and the decode logic that folds CBOR items into the
// model while giving tag 42 its link meaning.
//
// The data model is closed over exactly nine kinds: null, bool,
// integer (arbitrary precision), float, string, bytes, list, map with
// text keys iterated in sort order, and link. A decoded Value never
// represents "tag 42 wrapping bytes" as bytes — that combination is
// always a link.
//
// Typed records encode and decode through lib/codec directly; a
// struct field of type Cid participates in the tag-42 rules via its
// cbor.Marshaler and cbor.Unmarshaler implementations:
//
//	type Contact struct {
//	    Name    string   `cbor:"name"`
//	    Details ipld.Cid `cbor:"details"`
//	}
//
//	data, err := codec.Marshal(contact)   // encode
//	err = codec.Unmarshal(data, &contact) // decode to the struct
//	value, err := ipld.Decode(data)       // decode to the dynamic model
//
// All CBOR parsing is delegated to lib/codec; this package only reacts
// to the typed values the engine produces. Decoding is synchronous and
// in-memory, and every failure is terminal — there is no partial
// decode.
package ipld
