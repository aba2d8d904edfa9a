// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

package ipld

import (
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"github.com/vmx/go-ipld-dag-cbor/lib/codec"
)

// Kind identifies which of the nine data model cases a [Value] holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindBytes
	KindList
	KindMap
	KindLink
)

// String returns the lowercase kind name used in error messages and
// diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindLink:
		return "link"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is one node of the IPLD data model: a closed variant over
// null, bool, integer, float, string, bytes, list, map, and link.
// Lists keep wire order; maps iterate in key sort order; integers are
// arbitrary precision so every decodable integer width is held
// exactly.
//
// Values are immutable once constructed. Constructors and accessors
// copy byte, list, and map payloads, so recomposing a structure means
// building a new Value rather than mutating an old one. The zero
// Value is Null.
type Value struct {
	kind    Kind
	boolean bool
	integer *big.Int
	float   float64
	text    string
	bytes   []byte
	list    []Value
	entries map[string]Value
	link    Cid
}

// Null is the unit value.
var Null = Value{}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Integer returns an integer Value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, integer: big.NewInt(i)}
}

// BigInteger returns an integer Value holding a copy of n. Use this
// for values outside the int64 range; there is no magnitude limit
// beyond what the wire format can carry.
func BigInteger(n *big.Int) Value {
	return Value{kind: KindInteger, integer: new(big.Int).Set(n)}
}

// Float returns a 64-bit float Value. The bits are stored verbatim —
// no NaN canonicalization, no precision normalization.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// String returns a UTF-8 text Value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Bytes returns an opaque byte string Value holding a copy of b.
func Bytes(b []byte) Value {
	return Value{kind: KindBytes, bytes: append([]byte(nil), b...)}
}

// List returns an ordered list Value holding a copy of elements.
// List() is the empty list.
func List(elements ...Value) Value {
	return Value{kind: KindList, list: append([]Value(nil), elements...)}
}

// Map returns a map Value holding a copy of entries. Iteration order
// is key sort order regardless of how entries was built. Map(nil) is
// the empty map.
func Map(entries map[string]Value) Value {
	copied := make(map[string]Value, len(entries))
	maps.Copy(copied, entries)
	return Value{kind: KindMap, entries: copied}
}

// Link returns a link Value holding a copy of c.
func Link(c Cid) Value {
	return Value{kind: KindLink, link: append(Cid(nil), c...)}
}

// Kind reports which data model case this Value holds.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean payload. The second result is false when
// the Value is not a bool.
func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// AsInteger returns a copy of the integer payload, or false when the
// Value is not an integer.
func (v Value) AsInteger() (*big.Int, bool) {
	if v.kind != KindInteger {
		return nil, false
	}
	return new(big.Int).Set(v.integer), true
}

// Int64 returns the integer payload as an int64. The second result is
// false when the Value is not an integer or the value does not fit.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindInteger || !v.integer.IsInt64() {
		return 0, false
	}
	return v.integer.Int64(), true
}

// AsFloat returns the float payload, or false when the Value is not a
// float.
func (v Value) AsFloat() (float64, bool) {
	return v.float, v.kind == KindFloat
}

// AsString returns the text payload, or false when the Value is not a
// string.
func (v Value) AsString() (string, bool) {
	return v.text, v.kind == KindString
}

// AsBytes returns a copy of the byte string payload, or false when the
// Value is not bytes. A link's payload is NOT reachable through this
// accessor; use [Value.AsLink].
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return append([]byte(nil), v.bytes...), true
}

// AsList returns a copy of the list elements in wire order, or false
// when the Value is not a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return append([]Value(nil), v.list...), true
}

// AsLink returns a copy of the link payload, or false when the Value
// is not a link.
func (v Value) AsLink() (Cid, bool) {
	if v.kind != KindLink {
		return nil, false
	}
	return append(Cid(nil), v.link...), true
}

// Keys returns the map keys in natural sort order. A non-map Value
// has no keys.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	return slices.Sorted(maps.Keys(v.entries))
}

// Lookup returns the map entry for key. The second result is false
// when the Value is not a map or the key is absent.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	entry, ok := v.entries[key]
	return entry, ok
}

// Len returns the number of elements in a list or entries in a map,
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.entries)
	default:
		return 0
	}
}

// Equal reports structural equality: same kind, same payload, with
// lists compared in order, maps compared by key set and per-key value,
// and integers compared by numeric value. Floats compare with ==, so
// NaN values are never equal (matching the wire format's fuzzy float
// mapping).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindInteger:
		return v.integer.Cmp(other.integer) == 0
	case KindFloat:
		return v.float == other.float
	case KindString:
		return v.text == other.text
	case KindBytes:
		return slices.Equal(v.bytes, other.bytes)
	case KindList:
		return slices.EqualFunc(v.list, other.list, Value.Equal)
	case KindMap:
		return maps.EqualFunc(v.entries, other.entries, Value.Equal)
	case KindLink:
		return v.link.Equal(other.link)
	default:
		return false
	}
}

// String renders the Value in a diagnostic notation close to RFC 8949
// §8: byte strings as h'..', links as 42(h'..'), maps in key sort
// order. Debug output only — it is not a serialization format.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindInteger:
		return v.integer.String()
	case KindFloat:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.text)
	case KindBytes:
		return "h'" + fmt.Sprintf("%x", v.bytes) + "'"
	case KindList:
		var builder strings.Builder
		builder.WriteByte('[')
		for i, element := range v.list {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(element.String())
		}
		builder.WriteByte(']')
		return builder.String()
	case KindMap:
		var builder strings.Builder
		builder.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(strconv.Quote(key))
			builder.WriteString(": ")
			builder.WriteString(v.entries[key].String())
		}
		builder.WriteByte('}')
		return builder.String()
	case KindLink:
		return fmt.Sprintf("%d(h'%x')", LinkTag, []byte(v.link))
	default:
		return v.kind.String()
	}
}

// MarshalCBOR implements cbor.Marshaler. Each kind re-encodes to its
// wire form: integers in shortest form (plain integer when the value
// fits 64 bits, bignum otherwise), maps with deterministically sorted
// keys, links as tag 42 wrapping a byte string — so a decoded link
// re-encodes identically to its original wire bytes.
func (v Value) MarshalCBOR() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return codec.Marshal(nil)
	case KindBool:
		return codec.Marshal(v.boolean)
	case KindInteger:
		return codec.Marshal(v.integer)
	case KindFloat:
		return codec.Marshal(v.float)
	case KindString:
		return codec.Marshal(v.text)
	case KindBytes:
		if v.bytes == nil {
			return codec.Marshal([]byte{})
		}
		return codec.Marshal(v.bytes)
	case KindList:
		if v.list == nil {
			return codec.Marshal([]Value{})
		}
		return codec.Marshal(v.list)
	case KindMap:
		if v.entries == nil {
			return codec.Marshal(map[string]Value{})
		}
		return codec.Marshal(v.entries)
	case KindLink:
		return v.link.MarshalCBOR()
	default:
		return nil, fmt.Errorf("cannot encode invalid value kind %d", v.kind)
	}
}
