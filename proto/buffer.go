// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/wire"
)

// MarshalOptions configures Marshal.
type MarshalOptions struct {
	// AllowPartial permits marshaling a message with unset required
	// fields; by default Marshal returns a RequiredNotSetError instead.
	AllowPartial bool

	// Deterministic has no effect: Marshal never reads it, and map entries
	// and extension values are written in Go map iteration order either
	// way. The flag exists only for source compatibility with callers
	// migrating from the classic proto.Buffer marshaler.
	Deterministic bool
}

// Marshal returns the wire-format encoding of m.
func Marshal(m Message) ([]byte, error) {
	return MarshalOptions{}.Marshal(m)
}

// Marshal returns the wire-format encoding of m using the given options.
func (o MarshalOptions) Marshal(m Message) ([]byte, error) {
	if !o.AllowPartial && !m.IsInitialized() {
		return nil, &RequiredNotSetError{}
	}
	b := size.New()
	m.CalculateSize(b)
	n, _ := b.Len()
	buf := make([]byte, n)
	w := wire.NewUncheckedWriter(buf)
	if err := m.WriteTo(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnmarshalOptions configures Unmarshal.
type UnmarshalOptions struct {
	// AllowPartial accepts input that leaves required fields unset.
	AllowPartial bool

	// DiscardUnknown causes unrecognized fields to be dropped instead of
	// preserved in the message's unknown-field set.
	DiscardUnknown bool
}

// Unmarshal parses the wire-format message in b into m. m is not reset
// first; repeated scalar fields append and message fields merge, matching
// the wire format's merge semantics.
func Unmarshal(b []byte, m Message) error {
	return UnmarshalOptions{}.Unmarshal(b, m)
}

// Unmarshal parses the wire-format message in b into m using the given
// options.
func (o UnmarshalOptions) Unmarshal(b []byte, m Message) error {
	r := wire.NewReader(b)
	r.SetDiscardUnknown(o.DiscardUnknown)
	if err := m.MergeFrom(r); err != nil {
		return err
	}
	if !o.AllowPartial && !m.IsInitialized() {
		return &RequiredNotSetError{}
	}
	return nil
}

// Merge merges src into dst following the wire format's merge semantics:
// scalar fields are overwritten, message fields are recursively merged,
// and repeated fields are appended. It is implemented by round-tripping
// src through the wire format and replaying it into dst, which is exactly
// what a network merge of two wire-format payloads would do.
func Merge(dst, src Message) error {
	b, err := MarshalOptions{AllowPartial: true}.Marshal(src)
	if err != nil {
		return err
	}
	return UnmarshalOptions{AllowPartial: true}.Unmarshal(b, dst)
}

// Size returns the number of bytes Marshal would produce for m.
func Size(m Message) int32 {
	b := size.New()
	m.CalculateSize(b)
	n, _ := b.Len()
	return n
}

// Buffer is a reusable marshal/unmarshal scratch space, carried over from
// the classic proto.Buffer for callers that want to amortize allocation
// across repeated calls.
type Buffer struct {
	buf []byte
}

// NewBuffer allocates a Buffer initialized with the contents of e.
func NewBuffer(e []byte) *Buffer { return &Buffer{buf: e} }

// Reset empties the buffer, readying it for a new Marshal call.
func (p *Buffer) Reset() { p.buf = p.buf[:0] }

// SetBuf replaces the buffer's contents, readying it for a new Unmarshal
// call.
func (p *Buffer) SetBuf(s []byte) { p.buf = s }

// Bytes returns the buffer's current contents.
func (p *Buffer) Bytes() []byte { return p.buf }

// Marshal appends the wire-format encoding of m to the buffer.
func (p *Buffer) Marshal(m Message) error {
	b, err := Marshal(m)
	if err != nil {
		return err
	}
	p.buf = append(p.buf, b...)
	return nil
}

// Unmarshal parses the buffer's contents into m.
func (p *Buffer) Unmarshal(m Message) error {
	return Unmarshal(p.buf, m)
}
