// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

// The dagcbor tool inspects and produces DAG-CBOR data from the
// command line: decode to JSON through the dynamic value model,
// encode JSON to deterministic CBOR, print diagnostic notation, and
// derive content links.
package main

import (
	"os"

	"github.com/vmx/go-ipld-dag-cbor/cmd/dagcbor/cli"
)

func main() {
	if err := rootCommand().Execute(os.Args[1:]); err != nil {
		cli.NewCommandLogger().Error("command failed", "error", err)
		os.Exit(1)
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "dagcbor",
		Summary: "Inspect and produce DAG-CBOR data",
		Description: `Tools for working with DAG-CBOR from the command line.

DAG-CBOR is CBOR with Core Deterministic Encoding (RFC 8949 §4.2) plus
one reserved tag: tag 42 marks a byte string as a content link. The
decode and diag subcommands understand that profile; encode produces
it; link derives a content link from raw bytes.`,
		Subcommands: []*cli.Command{
			decodeCommand(),
			encodeCommand(),
			diagCommand(),
			linkCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Decode a DAG-CBOR file to pretty JSON",
				Command:     "dagcbor decode block.cbor",
			},
			{
				Description: "Round-trip: encode then inspect the wire structure",
				Command:     "echo '{\"count\":42}' | dagcbor encode | dagcbor diag",
			},
			{
				Description: "Derive the content link for a file",
				Command:     "dagcbor link block.cbor",
			},
		},
	}
}
