// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"math"

	"github.com/gopb/wireproto/wire"
)

// Int32 codes a proto "int32" field: a varint, sign-extended to 64 bits
// on the wire so that negative values take the full 10 bytes (matching
// the historical, if wasteful, wire encoding for this type).
type Int32Codec struct{}

func (Int32Codec) WireType() wire.Type { return wire.VarintType }
func (Int32Codec) Read(r *wire.Reader) (int32, error) {
	v, err := r.ReadVarint64()
	return int32(v), err
}
func (Int32Codec) Write(w *wire.Writer, v int32) error {
	return w.WriteVarint64(uint64(int64(v)))
}
func (Int32Codec) Size(v int32) int32 { return int32(wire.SizeVarint(uint64(int64(v)))) }
func (Int32Codec) IsInitialized(int32) bool { return true }

// Int32 is the Int32 codec singleton.
var Int32 Int32Codec

// Uint32 codes a proto "uint32" field.
type Uint32Codec struct{}

func (Uint32Codec) WireType() wire.Type { return wire.VarintType }
func (Uint32Codec) Read(r *wire.Reader) (uint32, error) {
	return r.ReadVarint32()
}
func (Uint32Codec) Write(w *wire.Writer, v uint32) error { return w.WriteVarint32(v) }
func (Uint32Codec) Size(v uint32) int32 { return int32(wire.SizeVarint(uint64(v))) }
func (Uint32Codec) IsInitialized(uint32) bool { return true }

var Uint32 Uint32Codec

// Sint32 codes a proto "sint32" field using zigzag encoding, favoring
// small negative values over Int32's sign-extension scheme.
type Sint32Codec struct{}

func (Sint32Codec) WireType() wire.Type { return wire.VarintType }
func (Sint32Codec) Read(r *wire.Reader) (int32, error) {
	v, err := r.ReadVarint32()
	return wire.DecodeZigZag32(v), err
}
func (Sint32Codec) Write(w *wire.Writer, v int32) error {
	return w.WriteVarint32(wire.EncodeZigZag32(v))
}
func (Sint32Codec) Size(v int32) int32 { return int32(wire.SizeVarint(uint64(wire.EncodeZigZag32(v)))) }
func (Sint32Codec) IsInitialized(int32) bool { return true }

var Sint32 Sint32Codec

// Int64 codes a proto "int64" field.
type Int64Codec struct{}

func (Int64Codec) WireType() wire.Type { return wire.VarintType }
func (Int64Codec) Read(r *wire.Reader) (int64, error) {
	v, err := r.ReadVarint64()
	return int64(v), err
}
func (Int64Codec) Write(w *wire.Writer, v int64) error { return w.WriteVarint64(uint64(v)) }
func (Int64Codec) Size(v int64) int32 { return int32(wire.SizeVarint(uint64(v))) }
func (Int64Codec) IsInitialized(int64) bool { return true }

var Int64 Int64Codec

// Uint64 codes a proto "uint64" field.
type Uint64Codec struct{}

func (Uint64Codec) WireType() wire.Type { return wire.VarintType }
func (Uint64Codec) Read(r *wire.Reader) (uint64, error) { return r.ReadVarint64() }
func (Uint64Codec) Write(w *wire.Writer, v uint64) error { return w.WriteVarint64(v) }
func (Uint64Codec) Size(v uint64) int32 { return int32(wire.SizeVarint(v)) }
func (Uint64Codec) IsInitialized(uint64) bool { return true }

var Uint64 Uint64Codec

// Sint64 codes a proto "sint64" field using zigzag encoding.
type Sint64Codec struct{}

func (Sint64Codec) WireType() wire.Type { return wire.VarintType }
func (Sint64Codec) Read(r *wire.Reader) (int64, error) {
	v, err := r.ReadVarint64()
	return wire.DecodeZigZag64(v), err
}
func (Sint64Codec) Write(w *wire.Writer, v int64) error {
	return w.WriteVarint64(wire.EncodeZigZag64(v))
}
func (Sint64Codec) Size(v int64) int32 { return int32(wire.SizeVarint(wire.EncodeZigZag64(v))) }
func (Sint64Codec) IsInitialized(int64) bool { return true }

var Sint64 Sint64Codec

// Bool codes a proto "bool" field as a one-byte varint.
type BoolCodec struct{}

func (BoolCodec) WireType() wire.Type { return wire.VarintType }
func (BoolCodec) Read(r *wire.Reader) (bool, error) {
	v, err := r.ReadVarint64()
	return v != 0, err
}
func (BoolCodec) Write(w *wire.Writer, v bool) error {
	if v {
		return w.WriteVarint64(1)
	}
	return w.WriteVarint64(0)
}
func (BoolCodec) Size(bool) int32 { return 1 }
func (BoolCodec) ConstSize() int32 { return 1 }
func (BoolCodec) IsInitialized(bool) bool { return true }

var Bool BoolCodec

// Fixed32 codes a proto "fixed32" field.
type Fixed32Codec struct{}

func (Fixed32Codec) WireType() wire.Type { return wire.Bit32Type }
func (Fixed32Codec) Read(r *wire.Reader) (uint32, error) { return r.ReadFixed32() }
func (Fixed32Codec) Write(w *wire.Writer, v uint32) error { return w.WriteFixed32(v) }
func (Fixed32Codec) Size(uint32) int32 { return 4 }
func (Fixed32Codec) ConstSize() int32 { return 4 }
func (Fixed32Codec) IsInitialized(uint32) bool { return true }

var Fixed32 Fixed32Codec

// Sfixed32 codes a proto "sfixed32" field.
type Sfixed32Codec struct{}

func (Sfixed32Codec) WireType() wire.Type { return wire.Bit32Type }
func (Sfixed32Codec) Read(r *wire.Reader) (int32, error) {
	v, err := r.ReadFixed32()
	return int32(v), err
}
func (Sfixed32Codec) Write(w *wire.Writer, v int32) error { return w.WriteFixed32(uint32(v)) }
func (Sfixed32Codec) Size(int32) int32 { return 4 }
func (Sfixed32Codec) ConstSize() int32 { return 4 }
func (Sfixed32Codec) IsInitialized(int32) bool { return true }

var Sfixed32 Sfixed32Codec

// Float codes a proto "float" field.
type FloatCodec struct{}

func (FloatCodec) WireType() wire.Type { return wire.Bit32Type }
func (FloatCodec) Read(r *wire.Reader) (float32, error) {
	v, err := r.ReadFixed32()
	return math.Float32frombits(v), err
}
func (FloatCodec) Write(w *wire.Writer, v float32) error {
	return w.WriteFixed32(math.Float32bits(v))
}
func (FloatCodec) Size(float32) int32 { return 4 }
func (FloatCodec) ConstSize() int32 { return 4 }
func (FloatCodec) IsInitialized(float32) bool { return true }

var Float FloatCodec

// Fixed64 codes a proto "fixed64" field.
type Fixed64Codec struct{}

func (Fixed64Codec) WireType() wire.Type { return wire.Bit64Type }
func (Fixed64Codec) Read(r *wire.Reader) (uint64, error) { return r.ReadFixed64() }
func (Fixed64Codec) Write(w *wire.Writer, v uint64) error { return w.WriteFixed64(v) }
func (Fixed64Codec) Size(uint64) int32 { return 8 }
func (Fixed64Codec) ConstSize() int32 { return 8 }
func (Fixed64Codec) IsInitialized(uint64) bool { return true }

var Fixed64 Fixed64Codec

// Sfixed64 codes a proto "sfixed64" field.
type Sfixed64Codec struct{}

func (Sfixed64Codec) WireType() wire.Type { return wire.Bit64Type }
func (Sfixed64Codec) Read(r *wire.Reader) (int64, error) {
	v, err := r.ReadFixed64()
	return int64(v), err
}
func (Sfixed64Codec) Write(w *wire.Writer, v int64) error { return w.WriteFixed64(uint64(v)) }
func (Sfixed64Codec) Size(int64) int32 { return 8 }
func (Sfixed64Codec) ConstSize() int32 { return 8 }
func (Sfixed64Codec) IsInitialized(int64) bool { return true }

var Sfixed64 Sfixed64Codec

// Double codes a proto "double" field.
type DoubleCodec struct{}

func (DoubleCodec) WireType() wire.Type { return wire.Bit64Type }
func (DoubleCodec) Read(r *wire.Reader) (float64, error) {
	v, err := r.ReadFixed64()
	return math.Float64frombits(v), err
}
func (DoubleCodec) Write(w *wire.Writer, v float64) error {
	return w.WriteFixed64(math.Float64bits(v))
}
func (DoubleCodec) Size(float64) int32 { return 8 }
func (DoubleCodec) ConstSize() int32 { return 8 }
func (DoubleCodec) IsInitialized(float64) bool { return true }

var Double DoubleCodec
