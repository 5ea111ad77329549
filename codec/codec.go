// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codec binds logical protocol buffer value types to their wire
// representation: the wire type they occupy, how to read and write a
// value, how to size one, and whether a value counts as initialized. The
// scalar codecs are stateless, zero-size value types; StringCodec carries
// a field name for error messages, and MessageCodec and GroupCodec carry a
// constructor. Code that takes a Codec[T] (SizeField, WriteField, and the
// field and extension containers) holds it as an interface value, so its
// codec calls are interface method calls.
package codec

import (
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/wire"
)

// Codec binds a Go type T to a wire representation.
type Codec[T any] interface {
	// WireType is the wire type values of this codec occupy on the wire.
	WireType() wire.Type

	// Read parses one value of T from r. The tag has already been
	// consumed by the caller; Read consumes exactly the value's payload.
	Read(r *wire.Reader) (T, error)

	// Write writes one value of T's payload to w (the caller writes the
	// tag). For Group, Write writes the group's fields but not the
	// trailing EndGroup tag; callers use WriteField for that.
	Write(w *wire.Writer, v T) error

	// Size returns the number of bytes Write would produce for v,
	// including any length prefix the codec's wire type requires (so
	// that, for LengthDelimited codecs, Size already folds in the
	// prefix). Group is the one exception: its Size is the bracketed
	// fields' size only, since groups have no length prefix.
	Size(v T) int32

	// IsInitialized reports whether v satisfies the codec's notion of
	// "fully populated" (relevant only to Message and Group, which must
	// check required sub-fields; every other codec always returns true).
	IsInitialized(v T) bool
}

// ConstSized is implemented by codecs whose wire size never depends on
// the value (Bool, and the six fixed-width kinds Fixed32, Sfixed32, Float,
// Fixed64, Sfixed64 and Double). field.Repeated uses it to size a packed
// repeated field in O(1) instead of looping.
type ConstSized interface {
	ConstSize() int32
}

// SizeField returns the number of bytes WriteField would produce for a
// single (tag, value) pair under field number num, including the
// trailing EndGroup tag for Group codecs.
func SizeField[T any](c Codec[T], num wire.Number, v T) int32 {
	b := size.New()
	b.AddTag(num)
	b.AddBytes(int(c.Size(v)))
	if c.WireType() == wire.StartGroupType {
		b.AddTag(num) // EndGroup tag; same size as StartGroup's for the same number
	}
	n, _ := b.Len()
	return n
}

// WriteField writes a field's tag followed by its value, appending the
// matching EndGroup tag for Group codecs.
func WriteField[T any](w *wire.Writer, c Codec[T], num wire.Number, v T) error {
	if err := w.WriteTag(num, c.WireType()); err != nil {
		return err
	}
	if err := c.Write(w, v); err != nil {
		return err
	}
	if c.WireType() == wire.StartGroupType {
		return w.WriteTag(num, wire.EndGroupType)
	}
	return nil
}

// ReadGroupField reads a Group codec's bracketed fields given that the
// StartGroup tag for num has already been consumed by the caller.
func ReadGroupField[T any](r *wire.Reader, c Codec[T], num wire.Number) (T, error) {
	var out T
	err := r.ReadGroup(num, func(r *wire.Reader) error {
		v, err := c.Read(r)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}
