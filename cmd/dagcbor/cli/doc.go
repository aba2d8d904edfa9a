// Copyright 2026 The go-ipld-dag-cbor Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the dagcbor tool:
// a [Command] tree with pflag flag parsing, structured help output,
// and a structured logger whose handler follows where stderr points.
package cli
