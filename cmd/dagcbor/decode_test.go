// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmx/go-ipld-dag-cbor/lib/codec"
	"github.com/vmx/go-ipld-dag-cbor/lib/ipld"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	data, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	return data
}

func TestDecodeDagCBOR(t *testing.T) {
	data, err := codec.Marshal(ipld.Map(map[string]ipld.Value{
		"name":    ipld.String("Hello World!"),
		"details": ipld.Link(ipld.Cid{7, 8, 9}),
	}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var output bytes.Buffer
	if err := decodeDagCBOR(data, &output, true); err != nil {
		t.Fatalf("decodeDagCBOR: %v", err)
	}

	got := strings.TrimSpace(output.String())
	want := `{"details":{"/":"070809"},"name":"Hello World!"}`
	if got != want {
		t.Errorf("output %s, want %s", got, want)
	}
}

func TestDecodeDagCBORPrettyPrints(t *testing.T) {
	var output bytes.Buffer
	if err := decodeDagCBOR(mustHex(t, "a163666f6f01"), &output, false); err != nil {
		t.Fatalf("decodeDagCBOR: %v", err)
	}
	if !strings.Contains(output.String(), "\n  \"foo\": 1\n") {
		t.Errorf("output not indented:\n%s", output.String())
	}
}

func TestDecodeDagCBOREmptyInput(t *testing.T) {
	var output bytes.Buffer
	if err := decodeDagCBOR(nil, &output, false); err == nil {
		t.Error("empty input should fail")
	}
}

func TestDecodeDagCBORRejectsForeignTag(t *testing.T) {
	var output bytes.Buffer
	err := decodeDagCBOR(mustHex(t, "c743070809"), &output, false)
	if err == nil {
		t.Fatal("tag 7 should fail")
	}
	if !strings.Contains(err.Error(), "unexpected tag (7)") {
		t.Errorf("error %q does not name the tag", err)
	}
}

func TestJSONValueWideInteger(t *testing.T) {
	// 2^64 must survive as an exact JSON number, not a float.
	value, err := ipld.Decode(mustHex(t, "c249010000000000000000"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := jsonValue(value).(json.Number)
	if !ok {
		t.Fatalf("wide integer rendered as %T, want json.Number", jsonValue(value))
	}
	if got.String() != "18446744073709551616" {
		t.Errorf("got %s, want 18446744073709551616", got)
	}
}

func TestJSONValueBytesRenderBase64(t *testing.T) {
	var output bytes.Buffer
	// Bare byte string h'070809', no tag.
	if err := decodeDagCBOR(mustHex(t, "43070809"), &output, true); err != nil {
		t.Fatalf("decodeDagCBOR: %v", err)
	}
	got := strings.TrimSpace(output.String())
	if got != `"BwgJ"` {
		t.Errorf("bytes rendered as %s, want \"BwgJ\"", got)
	}
}
