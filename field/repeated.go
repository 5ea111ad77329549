// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements the container types generated code uses to
// hold repeated, map, and unrecognized fields: Repeated, Map, and
// UnknownFields.
package field

import (
	"github.com/gopb/wireproto/codec"
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/wire"
)

// Repeated is a repeated field's storage: a plain growable slice plus the
// codec needed to read, write, and size its elements. A zero Repeated
// (codec unset) must not be used; generated code always constructs one
// via NewRepeated.
type Repeated[T any] struct {
	c      codec.Codec[T]
	Values []T
}

// NewRepeated returns an empty Repeated field using c to code elements.
func NewRepeated[T any](c codec.Codec[T]) *Repeated[T] {
	return &Repeated[T]{c: c}
}

// packable reports whether this field's element type may use the packed
// encoding (varint, fixed32, or fixed64 wire types only; length-delimited
// and group elements are never packable).
func (f *Repeated[T]) packable() bool {
	return f.c.WireType().IsPackable()
}

// MergeEntry merges a single field occurrence into the repeated field.
// For a packable element type, the occurrence may be either the packed
// (length-delimited) form or a single unpacked value; this dispatches on
// the wire type just read, matching the "packed and unpacked decoding
// must both be accepted" rule real protobuf parsers follow regardless of
// how the field is declared.
func (f *Repeated[T]) MergeEntry(r *wire.Reader, wt wire.Type) error {
	if f.packable() && wt == wire.LengthDelimitedType {
		return f.mergePacked(r)
	}
	if wt == wire.StartGroupType {
		v, err := codec.ReadGroupField(r, f.c, r.LastTag().Number())
		if err != nil {
			return err
		}
		f.Values = append(f.Values, v)
		return nil
	}
	v, err := f.c.Read(r)
	if err != nil {
		return err
	}
	f.Values = append(f.Values, v)
	return nil
}

func (f *Repeated[T]) mergePacked(r *wire.Reader) error {
	l, err := r.PushLimit()
	if err != nil {
		return err
	}
	err = l.ForAll(func() error {
		v, err := f.c.Read(r)
		if err != nil {
			return err
		}
		f.Values = append(f.Values, v)
		return nil
	})
	return err
}

// CalculateSize folds the size this field will occupy under field number
// num into b, preferring the packed encoding whenever the element type
// allows it (matching proto3's default packing for scalar repeated
// fields).
func (f *Repeated[T]) CalculateSize(b *size.Builder, num wire.Number) {
	if len(f.Values) == 0 {
		return
	}
	if f.packable() {
		b.AddTag(num)
		b.AddLengthDelimited(int(f.packedPayloadSize()))
		return
	}
	for _, v := range f.Values {
		b.AddBytes(int(codec.SizeField(f.c, num, v)))
	}
}

func (f *Repeated[T]) packedPayloadSize() int32 {
	if cs, ok := any(f.c).(codec.ConstSized); ok {
		return cs.ConstSize() * int32(len(f.Values))
	}
	var n int32
	for _, v := range f.Values {
		n += f.c.Size(v)
	}
	return n
}

// WriteTo writes this field's wire representation under field number num.
func (f *Repeated[T]) WriteTo(w *wire.Writer, num wire.Number) error {
	if len(f.Values) == 0 {
		return nil
	}
	if f.packable() {
		if err := w.WriteTag(num, wire.LengthDelimitedType); err != nil {
			return err
		}
		if err := w.WriteLength(f.packedPayloadSize()); err != nil {
			return err
		}
		for _, v := range f.Values {
			if err := f.c.Write(w, v); err != nil {
				return err
			}
		}
		return nil
	}
	for _, v := range f.Values {
		if err := codec.WriteField(w, f.c, num, v); err != nil {
			return err
		}
	}
	return nil
}

// IsInitialized reports whether every element is initialized.
func (f *Repeated[T]) IsInitialized() bool {
	for _, v := range f.Values {
		if !f.c.IsInitialized(v) {
			return false
		}
	}
	return true
}

// Len returns the number of elements.
func (f *Repeated[T]) Len() int { return len(f.Values) }
