// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"
	"golang.org/x/term"

	"github.com/vmx/go-ipld-dag-cbor/cmd/dagcbor/cli"
	"github.com/vmx/go-ipld-dag-cbor/lib/codec"
)

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:    "encode",
		Summary: "Convert JSON to DAG-CBOR",
		Description: `Read JSON from stdin (or a file argument) and write the equivalent
CBOR to stdout using Core Deterministic Encoding (RFC 8949 §4.2).

Input may contain // and /* */ comments and trailing commas (JSONC);
they are stripped before parsing. JSON integers are preserved as CBOR
integers, not floats.

The output is binary, so writing to a terminal is refused. Pipe to
"dagcbor diag" or redirect to a file.`,
		Usage: "dagcbor encode [file]",
		Examples: []cli.Example{
			{
				Description: "Encode JSON to DAG-CBOR",
				Command:     "echo '{\"count\":42}' | dagcbor encode > block.cbor",
			},
			{
				Description: "Round-trip: encode then decode",
				Command:     "echo '{\"count\":42}' | dagcbor encode | dagcbor decode",
			},
		},
		Run: func(args []string) error {
			data, remainingArgs, err := readInput(args, false)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return fmt.Errorf("encode takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
			}
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("refusing to write binary CBOR to a terminal; redirect to a file or pipe to another command")
			}
			return encodeJSON(data, os.Stdout)
		},
	}
}

// encodeJSON encodes JSON (or JSONC) data as DAG-CBOR and writes it
// to w.
func encodeJSON(data []byte, w io.Writer) error {
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected JSON data")
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}

	cborData, err := codec.Marshal(convertNumbers(value))
	if err != nil {
		return fmt.Errorf("encode CBOR: %w", err)
	}

	_, err = w.Write(cborData)
	return err
}

// convertNumbers recursively walks a JSON-decoded value and converts
// json.Number to int64 or float64. Without this, json.Decoder with
// UseNumber() leaves numbers as strings that the CBOR encoder would
// encode as text instead of numeric types.
func convertNumbers(v any) any {
	switch value := v.(type) {
	case json.Number:
		if integer, err := value.Int64(); err == nil {
			return integer
		}
		if float, err := value.Float64(); err == nil {
			return float
		}
		return value.String()

	case map[string]any:
		for key, element := range value {
			value[key] = convertNumbers(element)
		}
		return value

	case []any:
		for index, element := range value {
			value[index] = convertNumbers(element)
		}
		return value

	default:
		return v
	}
}
