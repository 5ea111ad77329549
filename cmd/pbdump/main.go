// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pbdump prints a schema-less structural dump of a protocol buffer
// wire-format message, read from stdin or from the files named on the
// command line.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gopb/wireproto/wire"
)

func main() {
	log.SetFlags(0)
	maxDepth := flag.Int("max_depth", 10, "maximum nesting depth to attempt heuristic submessage decoding")
	flag.Parse()

	buf, err := readInput(flag.Args())
	if err != nil {
		log.Fatalf("pbdump: %v", err)
	}

	if err := dump(os.Stdout, buf, 0, *maxDepth); err != nil {
		log.Fatalf("pbdump: %v", err)
	}
}

func readInput(files []string) ([]byte, error) {
	if len(files) == 0 {
		return io.ReadAll(os.Stdin)
	}
	var buf []byte
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
	}
	return buf, nil
}

// dump walks b as a top-level sequence of wire-format fields, printing one
// line per field. Since there is no descriptor to say which fields are
// submessages, length-delimited values that themselves parse cleanly as a
// sequence of valid fields are heuristically dumped as nested messages,
// the same guess protoscope-style tools make absent a schema.
func dump(w io.Writer, b []byte, depth, maxDepth int) error {
	indent := strings.Repeat("  ", depth)
	r := wire.NewReader(b)
	for {
		t, ok, err := r.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch t.Type() {
		case wire.VarintType:
			v, err := r.ReadVarint64()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%d: varint %d\n", indent, t.Number(), v)
		case wire.Bit32Type:
			v, err := r.ReadFixed32()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%d: fixed32 %#08x\n", indent, t.Number(), v)
		case wire.Bit64Type:
			v, err := r.ReadFixed64()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%d: fixed64 %#016x\n", indent, t.Number(), v)
		case wire.LengthDelimitedType:
			v, err := r.ReadBytes()
			if err != nil {
				return err
			}
			if depth < maxDepth && looksLikeMessage(v) {
				fmt.Fprintf(w, "%s%d: message {\n", indent, t.Number())
				if err := dump(w, v, depth+1, maxDepth); err != nil {
					fmt.Fprintf(w, "%s  (not a message: %v)\n", indent, err)
					fmt.Fprintf(w, "%s%d: bytes %x\n", indent, t.Number(), v)
				} else {
					fmt.Fprintf(w, "%s}\n", indent)
				}
				continue
			}
			fmt.Fprintf(w, "%s%d: bytes %x\n", indent, t.Number(), v)
		case wire.StartGroupType:
			fmt.Fprintf(w, "%s%d: group {\n", indent, t.Number())
			err := r.ReadGroup(t.Number(), func(r *wire.Reader) error {
				return dumpReader(w, r, depth+1, maxDepth)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s}\n", indent)
		default:
			return &wire.InvalidTagError{Raw: uint64(t)}
		}
	}
}

// dumpReader is dump's inner loop reused for groups, which read from the
// same Reader rather than an independently pushed byte slice.
func dumpReader(w io.Writer, r *wire.Reader, depth, maxDepth int) error {
	indent := strings.Repeat("  ", depth)
	for {
		t, ok, err := r.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch t.Type() {
		case wire.VarintType:
			v, err := r.ReadVarint64()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%d: varint %d\n", indent, t.Number(), v)
		case wire.Bit32Type:
			v, err := r.ReadFixed32()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%d: fixed32 %#08x\n", indent, t.Number(), v)
		case wire.Bit64Type:
			v, err := r.ReadFixed64()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%d: fixed64 %#016x\n", indent, t.Number(), v)
		case wire.LengthDelimitedType:
			v, err := r.ReadBytes()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s%d: bytes %x\n", indent, t.Number(), v)
		case wire.StartGroupType:
			fmt.Fprintf(w, "%s%d: group {\n", indent, t.Number())
			err := r.ReadGroup(t.Number(), func(r *wire.Reader) error {
				return dumpReader(w, r, depth+1, maxDepth)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s}\n", indent)
		default:
			return &wire.InvalidTagError{Raw: uint64(t)}
		}
	}
}

// looksLikeMessage reports whether b parses end to end as a sequence of
// valid, non-overlapping wire-format fields. Arbitrary byte strings
// (especially short ones) sometimes pass this check by coincidence; the
// heuristic trades occasional false positives for usable output absent a
// schema.
func looksLikeMessage(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	var sink bytes.Buffer
	return dump(&sink, b, 0, 0) == nil
}
