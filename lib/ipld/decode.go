// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

package ipld

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/vmx/go-ipld-dag-cbor/lib/codec"
)

// Decode decodes one complete CBOR item into the dynamic data model.
// The whole decode is one terminal operation: it returns a Value or an
// error, never a partial result. Typed records decode with
// codec.Unmarshal instead; Decode is for data whose shape is not known
// up front.
func Decode(data []byte) (Value, error) {
	var v Value
	if err := codec.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// UnmarshalCBOR implements cbor.Unmarshaler by folding the engine's
// decoded form of one item into a Value.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var raw any
	if err := codec.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := decodeRaw(raw, nil)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// decodeRaw folds one engine-decoded item into a Value. tag is the
// CBOR tag in effect for this item, nil when it is untagged. The tag
// travels as an explicit parameter rather than ambient state, so it is
// consumed exactly once at the point the tagged payload is visited and
// can never leak to a sibling or parent value.
func decodeRaw(raw any, tag *uint64) (Value, error) {
	if tag != nil {
		return decodeTagged(tag, raw)
	}

	switch value := raw.(type) {
	case nil:
		return Value{}, nil

	case bool:
		return Value{kind: KindBool, boolean: value}, nil

	// Every integer width widens losslessly into the arbitrary
	// precision representation. The engine hands back int64 for
	// values that fit and big.Int for anything wider (large uint64,
	// bignum tags 2 and 3).
	case int64:
		return Value{kind: KindInteger, integer: big.NewInt(value)}, nil
	case uint64:
		return Value{kind: KindInteger, integer: new(big.Int).SetUint64(value)}, nil
	case big.Int:
		return Value{kind: KindInteger, integer: &value}, nil
	case *big.Int:
		return Value{kind: KindInteger, integer: new(big.Int).Set(value)}, nil

	case float64:
		return Value{kind: KindFloat, float: value}, nil

	case string:
		return Value{kind: KindString, text: value}, nil

	case []byte:
		// Own the bytes: the engine's buffer must not be retained
		// past this callback.
		return Value{kind: KindBytes, bytes: append([]byte(nil), value...)}, nil

	case []any:
		elements := make([]Value, 0, len(value))
		for _, element := range value {
			decoded, err := decodeRaw(element, nil)
			if err != nil {
				return Value{}, err
			}
			elements = append(elements, decoded)
		}
		return Value{kind: KindList, list: elements}, nil

	case map[string]any:
		entries := make(map[string]Value, len(value))
		for key, element := range value {
			decoded, err := decodeRaw(element, nil)
			if err != nil {
				return Value{}, err
			}
			entries[key] = decoded
		}
		return Value{kind: KindMap, entries: entries}, nil

	case codec.Tag:
		// The innermost tag is the one in effect when the payload is
		// visited. Descend with it set; the check at the top of
		// decodeRaw applies the tag policy before anything else looks
		// at the payload.
		return decodeRaw(value.Content, &value.Number)

	default:
		return Value{}, fmt.Errorf("cannot decode CBOR item of type %T into the data model", raw)
	}
}

// decodeTagged applies the link-tag policy to a tagged wire value.
// Only tag 42 has a meaning in this data model: its payload must be a
// byte string, which is rewrapped as a link so that tag-42-wrapped
// bytes are never exposed as plain bytes. Every other tag is rejected
// rather than silently misread.
//
// A nil tag means the engine committed to a tagged value but exposed
// no tag number. That is an engine inconsistency, not an acceptable
// input, so it fails — unlike [Cid.UnmarshalCBOR], which accepts a
// missing tag because its callers legitimately re-decode untagged
// byte strings.
func decodeTagged(tag *uint64, content any) (Value, error) {
	switch {
	case tag == nil:
		return Value{}, errors.New("tag expected")

	case *tag == LinkTag:
		inner, err := decodeRaw(content, nil)
		if err != nil {
			return Value{}, err
		}
		if inner.kind != KindBytes {
			return Value{}, errors.New("bytes expected")
		}
		return Value{kind: KindLink, link: Cid(inner.bytes)}, nil

	default:
		return Value{}, fmt.Errorf("unexpected tag (%d)", *tag)
	}
}
