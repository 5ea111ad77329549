// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/wire"
)

// unknownField is one occurrence of a field number a message's generated
// code does not recognize. Which variant is populated is determined by
// the wire type the field occurred with.
type unknownField struct {
	num wire.Number
	typ wire.Type

	varint uint64
	bit32  uint32
	bit64  uint64
	bytes  []byte    // LengthDelimitedType payload
	group  []unknownField
}

// UnknownFields preserves, in the order encountered, every field a
// message's MergeFrom did not recognize, so that decode-modify-encode
// round trips without a schema change never lose data.
type UnknownFields struct {
	fields []unknownField
}

// TryMerge consumes the value belonging to t (already read as the current
// tag) and appends it to the set, unless the reader is configured to
// discard unknown fields, in which case it is skipped instead. Callers
// invoke this only after failing to match t.Number() against a known
// field and against any registered extension.
func (u *UnknownFields) TryMerge(r *wire.Reader, t wire.Tag) error {
	if r.DiscardUnknown() {
		return r.Skip()
	}
	f, err := readUnknownField(r, t)
	if err != nil {
		return err
	}
	u.fields = append(u.fields, f)
	return nil
}

func readUnknownField(r *wire.Reader, t wire.Tag) (unknownField, error) {
	f := unknownField{num: t.Number(), typ: t.Type()}
	switch t.Type() {
	case wire.VarintType:
		v, err := r.ReadVarint64()
		if err != nil {
			return f, err
		}
		f.varint = v
	case wire.Bit32Type:
		v, err := r.ReadFixed32()
		if err != nil {
			return f, err
		}
		f.bit32 = v
	case wire.Bit64Type:
		v, err := r.ReadFixed64()
		if err != nil {
			return f, err
		}
		f.bit64 = v
	case wire.LengthDelimitedType:
		b, err := r.ReadBytes()
		if err != nil {
			return f, err
		}
		f.bytes = b
	case wire.StartGroupType:
		err := r.ReadGroup(t.Number(), func(r *wire.Reader) error {
			for {
				gt, ok, err := r.ReadTag()
				if err != nil || !ok {
					return err
				}
				gf, err := readUnknownField(r, gt)
				if err != nil {
					return err
				}
				f.group = append(f.group, gf)
			}
		})
		if err != nil {
			return f, err
		}
	default:
		return f, &wire.InvalidTagError{Raw: uint64(t)}
	}
	return f, nil
}

// CalculateSize folds the size of every preserved field into b.
func (u *UnknownFields) CalculateSize(b *size.Builder) {
	for _, f := range u.fields {
		calculateUnknownFieldSize(b, f)
	}
}

func calculateUnknownFieldSize(b *size.Builder, f unknownField) {
	switch f.typ {
	case wire.VarintType:
		b.AddTag(f.num)
		b.AddVarint(f.varint)
	case wire.Bit32Type:
		b.AddTag(f.num)
		b.AddBytes(4)
	case wire.Bit64Type:
		b.AddTag(f.num)
		b.AddBytes(8)
	case wire.LengthDelimitedType:
		b.AddTag(f.num)
		b.AddLengthDelimited(len(f.bytes))
	case wire.StartGroupType:
		b.AddTag(f.num) // StartGroup
		for _, gf := range f.group {
			calculateUnknownFieldSize(b, gf)
		}
		b.AddTag(f.num) // EndGroup, same size
	}
}

// WriteTo writes every preserved field back out, in original encounter
// order.
func (u *UnknownFields) WriteTo(w *wire.Writer) error {
	for _, f := range u.fields {
		if err := writeUnknownField(w, f); err != nil {
			return err
		}
	}
	return nil
}

func writeUnknownField(w *wire.Writer, f unknownField) error {
	if err := w.WriteTag(f.num, f.typ); err != nil {
		return err
	}
	switch f.typ {
	case wire.VarintType:
		return w.WriteVarint64(f.varint)
	case wire.Bit32Type:
		return w.WriteFixed32(f.bit32)
	case wire.Bit64Type:
		return w.WriteFixed64(f.bit64)
	case wire.LengthDelimitedType:
		return w.WriteBytes(f.bytes)
	case wire.StartGroupType:
		for _, gf := range f.group {
			if err := writeUnknownField(w, gf); err != nil {
				return err
			}
		}
		return w.WriteTag(f.num, wire.EndGroupType)
	}
	return nil
}

// Len returns the number of preserved field occurrences at this level
// (nested group members are not counted).
func (u *UnknownFields) Len() int { return len(u.fields) }
