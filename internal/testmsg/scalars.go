// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testmsg holds hand-written proto.Message fixtures exercising
// the codecs, field containers, and extension mechanism, standing in for
// the generated code a .proto compiler would otherwise produce.
package testmsg

import (
	"github.com/gopb/wireproto/codec"
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/field"
	"github.com/gopb/wireproto/internal/errors"
	"github.com/gopb/wireproto/internal/scalar"
	"github.com/gopb/wireproto/wire"
)

// field numbers for Scalars, declared once so MergeFrom/CalculateSize/
// WriteTo stay in sync.
const (
	scalarsFieldI32    wire.Number = 1
	scalarsFieldStr    wire.Number = 2
	scalarsFieldBool   wire.Number = 3
	scalarsFieldDouble wire.Number = 4
	scalarsFieldOptI32 wire.Number = 5 // proto3 "optional"
)

const optI32Index = 0 // index into Presence for scalarsFieldOptI32

// Scalars is a proto3-style message with int32, string, bool and double
// fields plus one int32 field with explicit presence tracking.
type Scalars struct {
	I32    int32
	Str    string
	Bool   bool
	Double float64

	OptI32   int32
	presence field.Presence

	unknown field.UnknownFields
}

// SetOptI32 sets the explicit-presence field, mirroring how generated
// code for a proto3 "optional" field would wrap scalar.Int32.
func (m *Scalars) SetOptI32(v int32) {
	m.OptI32 = *scalar.Int32(v)
	m.presence.Set(optI32Index)
}

// HasOptI32 reports whether OptI32 has been explicitly set.
func (m *Scalars) HasOptI32() bool { return m.presence.Has(optI32Index) }

// ClearOptI32 clears the explicit-presence field.
func (m *Scalars) ClearOptI32() {
	m.OptI32 = 0
	m.presence.Clear(optI32Index)
}

func (m *Scalars) MergeFrom(r *wire.Reader) error {
	var nf errors.NonFatal
	err := field.Each(r, func(num wire.Number, typ wire.Type) (bool, error) {
		switch num {
		case scalarsFieldI32:
			v, err := codec.Int32.Read(r)
			if err != nil {
				return true, err
			}
			m.I32 = v
			return true, nil
		case scalarsFieldStr:
			v, err := codec.String.Read(r)
			if err != nil {
				if !nf.Merge(err) {
					return true, err
				}
				return true, nil
			}
			m.Str = v
			return true, nil
		case scalarsFieldBool:
			v, err := codec.Bool.Read(r)
			if err != nil {
				return true, err
			}
			m.Bool = v
			return true, nil
		case scalarsFieldDouble:
			v, err := codec.Double.Read(r)
			if err != nil {
				return true, err
			}
			m.Double = v
			return true, nil
		case scalarsFieldOptI32:
			v, err := codec.Int32.Read(r)
			if err != nil {
				return true, err
			}
			m.OptI32 = v
			m.presence.Set(optI32Index)
			return true, nil
		}
		err := m.unknown.TryMerge(r, wire.EncodeTag(num, typ))
		return true, err
	})
	if err != nil {
		return err
	}
	return nf.E
}

func (m *Scalars) CalculateSize(b *size.Builder) {
	if m.I32 != 0 {
		b.AddBytes(int(codec.SizeField(codec.Int32, scalarsFieldI32, m.I32)))
	}
	if m.Str != "" {
		b.AddBytes(int(codec.SizeField(codec.String, scalarsFieldStr, m.Str)))
	}
	if m.Bool {
		b.AddBytes(int(codec.SizeField(codec.Bool, scalarsFieldBool, m.Bool)))
	}
	if m.Double != 0 {
		b.AddBytes(int(codec.SizeField(codec.Double, scalarsFieldDouble, m.Double)))
	}
	if m.presence.Has(optI32Index) {
		b.AddBytes(int(codec.SizeField(codec.Int32, scalarsFieldOptI32, m.OptI32)))
	}
	m.unknown.CalculateSize(b)
}

func (m *Scalars) WriteTo(w *wire.Writer) error {
	if m.I32 != 0 {
		if err := codec.WriteField(w, codec.Int32, scalarsFieldI32, m.I32); err != nil {
			return err
		}
	}
	if m.Str != "" {
		if err := codec.WriteField(w, codec.String, scalarsFieldStr, m.Str); err != nil {
			return err
		}
	}
	if m.Bool {
		if err := codec.WriteField(w, codec.Bool, scalarsFieldBool, m.Bool); err != nil {
			return err
		}
	}
	if m.Double != 0 {
		if err := codec.WriteField(w, codec.Double, scalarsFieldDouble, m.Double); err != nil {
			return err
		}
	}
	if m.presence.Has(optI32Index) {
		if err := codec.WriteField(w, codec.Int32, scalarsFieldOptI32, m.OptI32); err != nil {
			return err
		}
	}
	return m.unknown.WriteTo(w)
}

func (m *Scalars) IsInitialized() bool { return true }
