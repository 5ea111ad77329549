// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import "github.com/gopb/wireproto/wire"

// EnumCodec codes any named type whose underlying representation is
// int32 as a proto enum: a varint identical to Int32's encoding, since
// the wire format does not distinguish an enum from an int32 (unknown
// enum values round-trip transparently, which is why generated code
// does not reject them here).
type EnumCodec[T ~int32] struct{}

func (EnumCodec[T]) WireType() wire.Type { return wire.VarintType }

func (EnumCodec[T]) Read(r *wire.Reader) (T, error) {
	v, err := r.ReadVarint64()
	return T(int32(v)), err
}

func (EnumCodec[T]) Write(w *wire.Writer, v T) error {
	return w.WriteVarint64(uint64(int64(int32(v))))
}

func (EnumCodec[T]) Size(v T) int32 {
	return int32(wire.SizeVarint(uint64(int64(int32(v)))))
}

func (EnumCodec[T]) IsInitialized(T) bool { return true }

// Enum returns the Enum codec for T.
func Enum[T ~int32]() EnumCodec[T] { return EnumCodec[T]{} }
