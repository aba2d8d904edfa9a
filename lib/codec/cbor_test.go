// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"math"
	"math/big"
	"strings"
	"testing"
)

// sampleRecord is a representative typed record: ordinary fields that
// decode through the engine's struct machinery.
type sampleRecord struct {
	Name  string `cbor:"name"`
	Count int    `cbor:"count"`
	Blob  []byte `cbor:"blob,omitempty"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleRecord{
		Name:  "Hello World!",
		Count: 42,
		Blob:  []byte{7, 8, 9},
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != original.Name || decoded.Count != original.Count ||
		!bytes.Equal(decoded.Blob, original.Blob) {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	value := map[string]any{"b": 1, "a": 2, "c": 3}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(value)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestUnmarshalIntegerWidening(t *testing.T) {
	// Decoding into any must never truncate: values inside the int64
	// range come back as int64, anything wider as big.Int.
	data, err := Marshal(uint64(math.MaxUint64))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var wide any
	if err := Unmarshal(data, &wide); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	var n big.Int
	switch got := wide.(type) {
	case big.Int:
		n = got
	case *big.Int:
		n = *got
	default:
		t.Fatalf("u64 max decoded as %T, want big.Int", wide)
	}
	if n.String() != "18446744073709551615" {
		t.Errorf("u64 max decoded as %s", n.String())
	}

	data, err = Marshal(int64(7))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var small any
	if err := Unmarshal(data, &small); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got, ok := small.(int64); !ok || got != 7 {
		t.Errorf("7 decoded as %T %v, want int64 7", small, small)
	}
}

func TestUnmarshalMapKeysMustBeText(t *testing.T) {
	// {1: 2} — an integer map key has no place in the data model, so
	// decoding into any must fail rather than produce a mistyped map.
	var value any
	if err := Unmarshal([]byte{0xa1, 0x01, 0x02}, &value); err == nil {
		t.Error("map with integer key should not decode into any")
	}
}

func TestUnmarshalTagIntoAny(t *testing.T) {
	// An unregistered tag surfaces as a Tag value carrying the number
	// and its decoded content.
	data, err := Marshal(Tag{Number: 42, Content: []byte{7, 8, 9}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var value any
	if err := Unmarshal(data, &value); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	tag, ok := value.(Tag)
	if !ok {
		t.Fatalf("decoded as %T, want Tag", value)
	}
	if tag.Number != 42 {
		t.Errorf("tag number %d, want 42", tag.Number)
	}
	if content, ok := tag.Content.([]byte); !ok || !bytes.Equal(content, []byte{7, 8, 9}) {
		t.Errorf("tag content %v, want [7 8 9]", tag.Content)
	}
}

func TestEncoderDecoderStreamRoundtrip(t *testing.T) {
	records := []sampleRecord{
		{Name: "first", Count: 1},
		{Name: "second", Count: 2, Blob: []byte{0xff}},
		{Name: "third", Count: 0},
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i, want := range records {
		var got sampleRecord
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode record %d: %v", i, err)
		}
		if got.Name != want.Name || got.Count != want.Count || !bytes.Equal(got.Blob, want.Blob) {
			t.Errorf("record %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var record sampleRecord
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &record); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(map[string]any{"name": "Hello World!"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(notation, `"name"`) {
		t.Errorf("notation %q does not contain \"name\"", notation)
	}
	if !strings.Contains(notation, `"Hello World!"`) {
		t.Errorf("notation %q does not contain the value", notation)
	}
}

func TestDiagnoseFirst(t *testing.T) {
	item1, err := Marshal("hello")
	if err != nil {
		t.Fatalf("Marshal item 1: %v", err)
	}
	item2, err := Marshal(int64(42))
	if err != nil {
		t.Fatalf("Marshal item 2: %v", err)
	}

	var sequence []byte
	sequence = append(sequence, item1...)
	sequence = append(sequence, item2...)

	notation, remaining, err := DiagnoseFirst(sequence)
	if err != nil {
		t.Fatalf("DiagnoseFirst: %v", err)
	}
	if !strings.Contains(notation, `"hello"`) {
		t.Errorf("first item notation %q does not contain \"hello\"", notation)
	}
	if len(remaining) == 0 {
		t.Fatal("expected remaining bytes after first item")
	}

	notation2, remaining2, err := DiagnoseFirst(remaining)
	if err != nil {
		t.Fatalf("DiagnoseFirst second: %v", err)
	}
	if !strings.Contains(notation2, "42") {
		t.Errorf("second item notation %q does not contain \"42\"", notation2)
	}
	if len(remaining2) != 0 {
		t.Errorf("expected no remaining bytes, got %d", len(remaining2))
	}
}

func BenchmarkMarshal(b *testing.B) {
	record := sampleRecord{Name: "Hello World!", Count: 42, Blob: []byte{7, 8, 9}}

	b.ReportAllocs()
	for b.Loop() {
		Marshal(record)
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	record := sampleRecord{Name: "Hello World!", Count: 42, Blob: []byte{7, 8, 9}}
	data, err := Marshal(record)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		var decoded sampleRecord
		Unmarshal(data, &decoded)
	}
}
