// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package size implements two-pass size precomputation for the protocol
// buffers wire format: a Builder accumulates the byte count a message will
// occupy on the wire before it is actually written, so the writer can size
// its destination buffer exactly once.
package size

import "github.com/gopb/wireproto/wire"

// Builder accumulates a 32-bit byte count. By default arithmetic wraps on
// overflow (the fast path); construct with NewChecked to detect overflow
// instead, at the cost of a branch per addition.
type Builder struct {
	n        int32
	checked  bool
	overflow bool
}

// New returns a Builder with wrapping (unchecked) arithmetic, the default
// used on the hot path.
func New() *Builder { return &Builder{} }

// NewChecked returns a Builder that detects signed 32-bit overflow; once
// overflow occurs, Len reports ok=false and all further additions are
// no-ops.
func NewChecked() *Builder { return &Builder{checked: true} }

func (b *Builder) add(n int32) {
	if b.overflow {
		return
	}
	sum := b.n + n
	if b.checked && (n < 0 || sum < b.n) {
		b.overflow = true
		return
	}
	b.n = sum
}

// AddBytes adds n raw bytes to the accumulated size.
func (b *Builder) AddBytes(n int) { b.add(int32(n)) }

// AddTag adds the size of a field's tag.
func (b *Builder) AddTag(num wire.Number) { b.add(int32(wire.SizeTag(num))) }

// AddVarint adds the size of a varint-encoded value.
func (b *Builder) AddVarint(v uint64) { b.add(int32(wire.SizeVarint(v))) }

// AddLengthDelimited adds the size of a length prefix plus n payload
// bytes.
func (b *Builder) AddLengthDelimited(n int) {
	b.add(int32(wire.SizeVarint(uint64(n))))
	b.add(int32(n))
}

// Len returns the accumulated size. ok is false only for a checked
// Builder that has overflowed.
func (b *Builder) Len() (int32, bool) {
	if b.checked && b.overflow {
		return 0, false
	}
	return b.n, true
}
