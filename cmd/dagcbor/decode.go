// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/vmx/go-ipld-dag-cbor/cmd/dagcbor/cli"
	"github.com/vmx/go-ipld-dag-cbor/lib/ipld"
)

func decodeCommand() *cli.Command {
	var (
		compact  bool
		hexInput bool
	)

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert DAG-CBOR to JSON",
		Description: `Read DAG-CBOR from stdin (or a file argument) and write the equivalent
JSON to stdout.

Input is decoded through the dynamic value model, so tag 42 is
understood: links render as {"/": "<hex>"} objects rather than opaque
byte strings, and any other tag is rejected. Byte strings render as
base64 text (the JSON convention for binary). Integers outside the
64-bit range are written as exact JSON numbers.

By default, output is pretty-printed with 2-space indentation. Use -c
for compact single-line output.`,
		Usage: "dagcbor decode [-c] [-x] [file]",
		Examples: []cli.Example{
			{
				Description: "Decode a DAG-CBOR file to pretty JSON",
				Command:     "dagcbor decode block.cbor",
			},
			{
				Description: "Decode hex-encoded wire bytes",
				Command:     "echo 'd82a43070809' | dagcbor decode -x",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			flagSet.BoolVarP(&compact, "compact", "c", false, "compact output (no indentation)")
			flagSet.BoolVarP(&hexInput, "hex", "x", false, "treat input as hex-encoded CBOR")
			return flagSet
		},
		Run: func(args []string) error {
			data, remainingArgs, err := readInput(args, hexInput)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return fmt.Errorf("decode takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
			}
			return decodeDagCBOR(data, os.Stdout, compact)
		},
	}
}

// decodeDagCBOR decodes one DAG-CBOR item and writes it as JSON to w.
func decodeDagCBOR(data []byte, w io.Writer, compact bool) error {
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected DAG-CBOR data")
	}

	value, err := ipld.Decode(data)
	if err != nil {
		return fmt.Errorf("decode DAG-CBOR: %w", err)
	}

	return writeJSON(w, jsonValue(value), compact)
}

// jsonValue converts a decoded Value to JSON-compatible types. Links
// become {"/": "<hex>"} objects; integers outside the int64 range
// become json.Number so their exact decimal form survives; everything
// else maps to its natural JSON type.
func jsonValue(v ipld.Value) any {
	switch v.Kind() {
	case ipld.KindNull:
		return nil
	case ipld.KindBool:
		b, _ := v.AsBool()
		return b
	case ipld.KindInteger:
		if i, ok := v.Int64(); ok {
			return i
		}
		wide, _ := v.AsInteger()
		return json.Number(wide.String())
	case ipld.KindFloat:
		f, _ := v.AsFloat()
		return f
	case ipld.KindString:
		s, _ := v.AsString()
		return s
	case ipld.KindBytes:
		b, _ := v.AsBytes()
		return b
	case ipld.KindList:
		elements, _ := v.AsList()
		result := make([]any, len(elements))
		for i, element := range elements {
			result[i] = jsonValue(element)
		}
		return result
	case ipld.KindMap:
		result := make(map[string]any, v.Len())
		for _, key := range v.Keys() {
			entry, _ := v.Lookup(key)
			result[key] = jsonValue(entry)
		}
		return result
	case ipld.KindLink:
		link, _ := v.AsLink()
		return map[string]any{"/": link.String()}
	default:
		return nil
	}
}

// writeJSON encodes value as JSON and writes it to w with a trailing
// newline. When compact is false, output is pretty-printed with
// 2-space indentation.
func writeJSON(w io.Writer, value any, compact bool) error {
	var output []byte
	var err error
	if compact {
		output, err = json.Marshal(value)
	} else {
		output, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(output))
	return err
}
