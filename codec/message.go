// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/proto"
	"github.com/gopb/wireproto/wire"
)

// MessageCodec codes a nested message field: length-delimited, with the
// submessage's own CalculateSize/WriteTo/MergeFrom doing the work inside
// the pushed length limit. New constructs a zero-value *T to merge into;
// a nil New produces a codec that panics on Read, appropriate only for
// write-only uses (e.g. a Builder pass that never reads).
type MessageCodec[T proto.Message] struct {
	New func() T
}

// Message returns a MessageCodec for T, constructing new values with new.
func Message[T proto.Message](new func() T) MessageCodec[T] {
	return MessageCodec[T]{New: new}
}

func (MessageCodec[T]) WireType() wire.Type { return wire.LengthDelimitedType }

func (c MessageCodec[T]) Read(r *wire.Reader) (T, error) {
	v := c.New()
	l, err := r.PushLimit()
	if err != nil {
		return v, err
	}
	err = r.Recurse(func() error { return v.MergeFrom(r) })
	l.Pop()
	return v, err
}

func (MessageCodec[T]) Write(w *wire.Writer, v T) error {
	b := size.New()
	v.CalculateSize(b)
	n, _ := b.Len()
	if err := w.WriteLength(n); err != nil {
		return err
	}
	return v.WriteTo(w)
}

func (MessageCodec[T]) Size(v T) int32 {
	b := size.New()
	v.CalculateSize(b)
	n, _ := b.Len()
	return int32(wire.SizeVarint(uint64(n))) + n
}

func (MessageCodec[T]) IsInitialized(v T) bool { return v.IsInitialized() }

// GroupCodec codes a group field: StartGroup/EndGroup brackets instead of
// a length prefix. Unlike MessageCodec, Size and Write deal only with the
// bracketed fields; SizeField and WriteField in this package add the
// matching EndGroup tag around them.
type GroupCodec[T proto.Message] struct {
	New func() T
}

// Group returns a GroupCodec for T, constructing new values with new.
func Group[T proto.Message](new func() T) GroupCodec[T] {
	return GroupCodec[T]{New: new}
}

func (GroupCodec[T]) WireType() wire.Type { return wire.StartGroupType }

func (c GroupCodec[T]) Read(r *wire.Reader) (T, error) {
	v := c.New()
	err := v.MergeFrom(r)
	return v, err
}

func (GroupCodec[T]) Write(w *wire.Writer, v T) error {
	return v.WriteTo(w)
}

func (GroupCodec[T]) Size(v T) int32 {
	b := size.New()
	v.CalculateSize(b)
	n, _ := b.Len()
	return n
}

func (GroupCodec[T]) IsInitialized(v T) bool { return v.IsInitialized() }
