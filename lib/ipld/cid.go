// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

package ipld

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/vmx/go-ipld-dag-cbor/lib/codec"
)

// LinkTag is the CBOR tag number (RFC 8949 major type 6) that marks a
// byte string as a content link. Registered for CIDs in the IANA CBOR
// tag registry.
const LinkTag uint64 = 42

// Cid is a content identifier: an opaque byte sequence naming a piece
// of content by what it is rather than where it lives. The bytes are
// never validated — multihash and multicodec structure is the
// producer's business, and equality is byte-for-byte.
//
// Encoding: CBOR uses tag 42 wrapping a byte string (via
// cbor.Marshaler), emitted as a single tagged unit. Decoding accepts
// the same form, or a bare byte string when the producer did not tag
// the value; any other tag is rejected.
type Cid []byte

// Sum derives a Cid from content by hashing it with BLAKE3. This is
// the module's content-addressing constructor: the same bytes always
// produce the same link.
func Sum(content []byte) Cid {
	digest := blake3.Sum256(content)
	return Cid(digest[:])
}

// ParseCid parses the hex representation produced by [Cid.String].
func ParseCid(hexString string) (Cid, error) {
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return nil, fmt.Errorf("parsing cid: %w", err)
	}
	return Cid(decoded), nil
}

// String returns the lowercase hex representation of the identifier.
func (c Cid) String() string { return hex.EncodeToString(c) }

// Equal reports whether two identifiers name the same content.
func (c Cid) Equal(other Cid) bool { return bytes.Equal(c, other) }

// Defined reports whether the identifier holds any content bytes.
func (c Cid) Defined() bool { return len(c) > 0 }

// MarshalCBOR implements cbor.Marshaler. The identifier encodes as
// tag 42 wrapping a byte string, produced as one tagged unit rather
// than a tag head followed by separately encoded content.
func (c Cid) MarshalCBOR() ([]byte, error) {
	content := []byte(c)
	if content == nil {
		// A nil slice would encode as CBOR null; the wire form of an
		// empty link is tag 42 over a zero-length byte string.
		content = []byte{}
	}
	return codec.Marshal(codec.Tag{Number: LinkTag, Content: content})
}

// UnmarshalCBOR implements cbor.Unmarshaler. It accepts a byte string
// wrapped in tag 42, or a bare byte string with no tag at all — the
// latter so that a Cid still decodes when embedded in a generic
// consumer that dropped the tag on a previous pass. A byte string
// under any other tag is rejected.
func (c *Cid) UnmarshalCBOR(data []byte) error {
	var raw any
	if err := codec.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case []byte:
		*c = append(Cid(nil), value...)
		return nil
	case codec.Tag:
		if value.Number != LinkTag {
			return fmt.Errorf("unexpected tag (%d)", value.Number)
		}
		payload, ok := value.Content.([]byte)
		if !ok {
			return fmt.Errorf("bytes expected, got %T", value.Content)
		}
		*c = append(Cid(nil), payload...)
		return nil
	default:
		return fmt.Errorf("bytes expected, got %T", raw)
	}
}
