// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"unicode/utf8"

	"github.com/gopb/wireproto/wire"
)

// BytesCodec codes a proto "bytes" field as a length-delimited blob with
// no further validation.
type BytesCodec struct{}

func (BytesCodec) WireType() wire.Type { return wire.LengthDelimitedType }
func (BytesCodec) Read(r *wire.Reader) ([]byte, error) { return r.ReadBytes() }
func (BytesCodec) Write(w *wire.Writer, v []byte) error { return w.WriteBytes(v) }
func (BytesCodec) Size(v []byte) int32 {
	return int32(wire.SizeVarint(uint64(len(v))) + len(v))
}
func (BytesCodec) IsInitialized([]byte) bool { return true }

var Bytes BytesCodec

// StringCodec codes a proto "string" field, validating that its contents
// are well-formed UTF-8 on read.
type StringCodec struct {
	// Field names the field for InvalidStringError messages; it has no
	// effect on encoding.
	Field string
}

func (StringCodec) WireType() wire.Type { return wire.LengthDelimitedType }

func (c StringCodec) Read(r *wire.Reader) (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &wire.InvalidStringError{Field: c.Field}
	}
	return string(b), nil
}

func (StringCodec) Write(w *wire.Writer, v string) error {
	return w.WriteBytes([]byte(v))
}

func (StringCodec) Size(v string) int32 {
	return int32(wire.SizeVarint(uint64(len(v))) + len(v))
}

func (StringCodec) IsInitialized(string) bool { return true }

// String is the default String codec, with no field name attached; use
// StringCodec{Field: "..."} directly for a codec that names itself in
// validation errors.
var String StringCodec
