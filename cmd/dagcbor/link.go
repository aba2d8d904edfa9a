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
	"github.com/vmx/go-ipld-dag-cbor/lib/ipld"
)

func linkCommand() *cli.Command {
	var wire bool

	return &cli.Command{
		Name:    "link",
		Summary: "Derive the content link for input bytes",
		Description: `Read bytes from stdin (or a file argument) and print the content link
derived from them: the lowercase hex of the BLAKE3 digest. The same
bytes always produce the same link.

With -w, print the link's DAG-CBOR wire form (tag 42 over the digest
byte string) as hex instead of the bare digest.`,
		Usage: "dagcbor link [-w] [file]",
		Examples: []cli.Example{
			{
				Description: "Derive the content link for a file",
				Command:     "dagcbor link block.cbor",
			},
			{
				Description: "Show how the link encodes on the wire",
				Command:     "dagcbor link -w block.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("link", pflag.ContinueOnError)
			flagSet.BoolVarP(&wire, "wire", "w", false, "print the tag-42 wire form as hex")
			return flagSet
		},
		Run: func(args []string) error {
			data, remainingArgs, err := readInput(args, false)
			if err != nil {
				return err
			}
			if len(remainingArgs) > 0 {
				return fmt.Errorf("link takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
			}
			return printLink(data, os.Stdout, wire)
		},
	}
}

// printLink writes the content link for data to w: the bare digest
// hex, or the link's full wire encoding when wire is set.
func printLink(data []byte, w io.Writer, wire bool) error {
	link := ipld.Sum(data)

	if !wire {
		_, err := fmt.Fprintln(w, link)
		return err
	}

	encoded, err := codec.Marshal(link)
	if err != nil {
		return fmt.Errorf("encode link: %w", err)
	}
	_, err = fmt.Fprintf(w, "%x\n", encoded)
	return err
}
