// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "io"

const defaultWriteBufferSize = 8 * 1024

// Writer is a push-encoder for the protocol buffers wire format. It comes
// in three variants with identical observable semantics but different
// safety/cost trade-offs: a bounds-checked slice writer, an unchecked
// slice writer for use after an exact size precomputation, and a buffered
// stream writer. A Writer is scoped to a single encoding operation and is
// not safe for concurrent use.
type Writer struct {
	buf       []byte // fixed destination (bounded and unchecked variants)
	pos       int    // next write position within buf
	unchecked bool

	dst       io.Writer // non-nil for the buffered stream variant
	streamBuf []byte
}

// NewSliceWriter returns a Writer that writes into the fixed-capacity
// slice buf starting at index 0, returning io.ErrShortWrite once buf is
// exhausted.
func NewSliceWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// NewUncheckedWriter returns a Writer that writes into buf without bounds
// checks. The caller must have sized buf by an exact prior call to a
// Builder's size computation; writing past the end of buf panics.
func NewUncheckedWriter(buf []byte) *Writer {
	return &Writer{buf: buf, unchecked: true}
}

// NewStreamWriter returns a Writer that buffers writes and flushes to dst
// when the internal buffer fills; payloads larger than the buffer bypass
// it and are written directly to dst.
func NewStreamWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst, streamBuf: make([]byte, 0, defaultWriteBufferSize)}
}

// Bytes returns the bytes written so far. It is only meaningful for the
// slice-backed variants; calling it on a stream writer returns nil.
func (w *Writer) Bytes() []byte {
	if w.dst != nil {
		return nil
	}
	return w.buf[:w.pos]
}

func (w *Writer) write(p []byte) error {
	if w.dst != nil {
		return w.writeStream(p)
	}
	if !w.unchecked && w.pos+len(p) > len(w.buf) {
		return io.ErrShortWrite
	}
	copy(w.buf[w.pos:], p)
	w.pos += len(p)
	return nil
}

func (w *Writer) writeStream(p []byte) error {
	if len(p) > cap(w.streamBuf) {
		if err := w.Flush(); err != nil {
			return err
		}
		if _, err := w.dst.Write(p); err != nil {
			return &IoError{err}
		}
		return nil
	}
	if len(w.streamBuf)+len(p) > cap(w.streamBuf) {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	w.streamBuf = append(w.streamBuf, p...)
	return nil
}

// Flush forces any buffered bytes to the underlying destination. It is a
// no-op for the slice-backed variants.
func (w *Writer) Flush() error {
	if w.dst == nil || len(w.streamBuf) == 0 {
		return nil
	}
	if _, err := w.dst.Write(w.streamBuf); err != nil {
		return &IoError{err}
	}
	w.streamBuf = w.streamBuf[:0]
	return nil
}

// WriteVarint64 writes x as a 1..10 byte LEB128 varint.
func (w *Writer) WriteVarint64(x uint64) error {
	var tmp [10]byte
	n := 0
	for x >= 0x80 {
		tmp[n] = byte(x) | 0x80
		x >>= 7
		n++
	}
	tmp[n] = byte(x)
	n++
	return w.write(tmp[:n])
}

// WriteVarint32 writes x as a varint. Negative-valued Int32 fields must be
// sign-extended to 64 bits by the caller (codec.Int32 does this) so that
// they encode as the canonical 10-byte form.
func (w *Writer) WriteVarint32(x uint32) error {
	return w.WriteVarint64(uint64(x))
}

// WriteFixed32 writes x as 4 little-endian bytes.
func (w *Writer) WriteFixed32(x uint32) error {
	var b [4]byte
	b[0] = byte(x)
	b[1] = byte(x >> 8)
	b[2] = byte(x >> 16)
	b[3] = byte(x >> 24)
	return w.write(b[:])
}

// WriteFixed64 writes x as 8 little-endian bytes.
func (w *Writer) WriteFixed64(x uint64) error {
	var b [8]byte
	b[0] = byte(x)
	b[1] = byte(x >> 8)
	b[2] = byte(x >> 16)
	b[3] = byte(x >> 24)
	b[4] = byte(x >> 32)
	b[5] = byte(x >> 40)
	b[6] = byte(x >> 48)
	b[7] = byte(x >> 56)
	return w.write(b[:])
}

// WriteTag writes a field's tag.
func (w *Writer) WriteTag(num Number, typ Type) error {
	return w.WriteVarint64(uint64(EncodeTag(num, typ)))
}

// WriteLength writes a length prefix. Negative lengths (the result of an
// overflowed size computation) are rejected.
func (w *Writer) WriteLength(n int32) error {
	if n < 0 {
		return ErrValueTooLarge
	}
	return w.WriteVarint64(uint64(n))
}

// WriteBytes writes a length prefix followed by b.
func (w *Writer) WriteBytes(b []byte) error {
	if len(b) > 1<<31-1 {
		return ErrValueTooLarge
	}
	if err := w.WriteLength(int32(len(b))); err != nil {
		return err
	}
	return w.write(b)
}
