// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/vmx/go-ipld-dag-cbor/cmd/dagcbor/cli"
	"github.com/vmx/go-ipld-dag-cbor/lib/codec"
)

func diagCommand() *cli.Command {
	var hexInput bool

	return &cli.Command{
		Name:    "diag",
		Summary: "Convert CBOR to diagnostic notation",
		Description: `Read CBOR from stdin (or a file argument) and write RFC 8949 Extended
Diagnostic Notation (EDN) to stdout.

Unlike JSON output, diagnostic notation preserves CBOR type
information: integer vs float, byte strings vs text strings, and
tagged values. A content link shows up as 42(h'...'), which is the
quickest way to confirm a value was actually tagged on the wire.

Examples of diagnostic notation:

  {"name": "Hello World!", "count": 42}   text keys, integer value
  42(h'070809')                           tagged content link
  h'a163'                                 byte string in hex`,
		Usage: "dagcbor diag [-x] [file]",
		Examples: []cli.Example{
			{
				Description: "Show the wire structure of a block",
				Command:     "dagcbor diag block.cbor",
			},
			{
				Description: "Encode JSON and inspect the CBOR structure",
				Command:     "echo '{\"count\":42}' | dagcbor encode | dagcbor diag",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("diag", pflag.ContinueOnError)
			flagSet.BoolVarP(&hexInput, "hex", "x", false, "treat input as hex-encoded CBOR")
			return flagSet
		},
		Run: func(args []string) error {
			data, remainingArgs, err := readInput(args, hexInput)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return fmt.Errorf("diag takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
			}
			return diagCBOR(data, os.Stdout)
		},
	}
}

// diagCBOR writes the diagnostic notation of data to w, one line per
// CBOR sequence item.
func diagCBOR(data []byte, w io.Writer) error {
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected CBOR data")
	}

	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return fmt.Errorf("diagnose CBOR at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}

	return nil
}
