// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire_test

import (
	"bytes"
	"io"
	"testing"
	"testing/quick"

	"github.com/gopb/wireproto/wire"
)

func TestVarintRoundTrip(t *testing.T) {
	f := func(x uint64) bool {
		var buf bytes.Buffer
		w := wire.NewStreamWriter(&buf)
		if err := w.WriteVarint64(x); err != nil {
			t.Fatalf("WriteVarint64(%d): %v", x, err)
		}
		if err := w.Flush(); err != nil {
			t.Fatal(err)
		}
		if got, want := buf.Len(), wire.SizeVarint(x); got != want {
			t.Errorf("SizeVarint(%d) = %d, but wrote %d bytes", x, want, got)
		}
		r := wire.NewReader(buf.Bytes())
		got, err := r.ReadVarint64()
		if err != nil {
			t.Fatalf("ReadVarint64: %v", err)
		}
		return got == x
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSizeVarintTable(t *testing.T) {
	cases := []struct {
		v    uint64
		size int
	}{
		{0, 1}, {1, 1}, {127, 1},
		{128, 2}, {16383, 2},
		{16384, 3}, {1<<21 - 1, 3},
		{1 << 21, 4},
		{1<<63 - 1, 9},
		{1 << 63, 10},
		{^uint64(0), 10},
	}
	for _, c := range cases {
		if got := wire.SizeVarint(c.v); got != c.size {
			t.Errorf("SizeVarint(%d) = %d, want %d", c.v, got, c.size)
		}
	}
}

func TestZigZag32RoundTrip(t *testing.T) {
	f := func(v int32) bool {
		return wire.DecodeZigZag32(wire.EncodeZigZag32(v)) == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestZigZag64RoundTrip(t *testing.T) {
	f := func(v int64) bool {
		return wire.DecodeZigZag64(wire.EncodeZigZag64(v)) == v
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestZigZagFavorsSmallMagnitudes(t *testing.T) {
	if wire.SizeVarint(uint64(wire.EncodeZigZag32(-1))) != 1 {
		t.Error("zigzag(-1) should fit in one byte")
	}
	if wire.SizeVarint(uint64(wire.EncodeZigZag32(1))) != 1 {
		t.Error("zigzag(1) should fit in one byte")
	}
}

func TestFixedRoundTrip(t *testing.T) {
	f32 := func(v uint32) bool {
		var buf bytes.Buffer
		w := wire.NewStreamWriter(&buf)
		w.WriteFixed32(v)
		w.Flush()
		if buf.Len() != 4 {
			return false
		}
		r := wire.NewReader(buf.Bytes())
		got, err := r.ReadFixed32()
		return err == nil && got == v
	}
	if err := quick.Check(f32, nil); err != nil {
		t.Error(err)
	}

	f64 := func(v uint64) bool {
		var buf bytes.Buffer
		w := wire.NewStreamWriter(&buf)
		w.WriteFixed64(v)
		w.Flush()
		if buf.Len() != 8 {
			return false
		}
		r := wire.NewReader(buf.Bytes())
		got, err := r.ReadFixed64()
		return err == nil && got == v
	}
	if err := quick.Check(f64, nil); err != nil {
		t.Error(err)
	}
}

func TestTagRoundTrip(t *testing.T) {
	tag := wire.EncodeTag(5, wire.LengthDelimitedType)
	if tag.Number() != 5 {
		t.Errorf("Number() = %d, want 5", tag.Number())
	}
	if tag.Type() != wire.LengthDelimitedType {
		t.Errorf("Type() = %v, want LengthDelimitedType", tag.Type())
	}
	if !tag.Valid() {
		t.Error("tag should be valid")
	}
}

func TestTagRejectsFieldZero(t *testing.T) {
	tag := wire.EncodeTag(0, wire.VarintType)
	if tag.Valid() {
		t.Error("field number 0 should be invalid")
	}
}

func TestTagRejectsReservedWireTypes(t *testing.T) {
	for _, raw := range []uint64{6, 7} {
		tag := wire.Tag(uint64(1)<<3 | raw)
		if tag.Valid() {
			t.Errorf("wire type %d should be invalid", raw)
		}
	}
}

// TestMalformedVarintElevenBytes exercises the boundary where a 10-byte
// varint with its continuation bit still set must be rejected without
// reading an eleventh byte.
func TestMalformedVarintElevenBytes(t *testing.T) {
	raw := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	r := wire.NewReader(raw)
	_, err := r.ReadVarint64()
	if err != wire.ErrMalformedVarint {
		t.Fatalf("err = %v, want ErrMalformedVarint", err)
	}
}

func TestEmptyMessageIsZeroBytes(t *testing.T) {
	r := wire.NewReader(nil)
	_, ok, err := r.ReadTag()
	if err != nil || ok {
		t.Fatalf("ReadTag on empty input: ok=%v err=%v, want ok=false err=nil", ok, err)
	}
}

func TestSingleByteVarint(t *testing.T) {
	r := wire.NewReader([]byte{0x01})
	v, err := r.ReadVarint64()
	if err != nil || v != 1 {
		t.Fatalf("ReadVarint64 = %d, %v, want 1, nil", v, err)
	}
}

func TestPushLimitForAll(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewStreamWriter(&buf)
	for _, v := range []uint64{1, 2, 3} {
		w.WriteVarint64(v)
	}
	w.Flush()

	r := wire.NewReader(buf.Bytes())
	l, err := r.PushLimitN(int32(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	var got []uint64
	err = l.ForAll(func() error {
		v, err := r.ReadVarint64()
		got = append(got, v)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestRecursionLimit(t *testing.T) {
	r := wire.NewReader(nil)
	r.SetRecursionLimit(2)

	depth := 0
	var recurse func() error
	recurse = func() error {
		depth++
		return r.Recurse(recurse)
	}
	err := r.Recurse(recurse)
	if err != wire.ErrRecursionLimitExceeded {
		t.Fatalf("err = %v, want ErrRecursionLimitExceeded", err)
	}
}

func TestDanglingGroupIsTruncationError(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewStreamWriter(&buf)
	w.WriteTag(1, wire.StartGroupType) // no matching EndGroup
	w.Flush()

	r := wire.NewReader(buf.Bytes())
	// Consume the StartGroup tag first, as every ReadGroup caller does.
	if _, _, err := r.ReadTag(); err != nil {
		t.Fatal(err)
	}
	err := r.ReadGroup(1, func(r *wire.Reader) error {
		_, _, err := r.ReadTag()
		return err
	})
	ioErr, ok := err.(*wire.IoError)
	if !ok || ioErr.Cause != io.ErrUnexpectedEOF {
		t.Fatalf("err = %v, want IoError(io.ErrUnexpectedEOF)", err)
	}
}

func TestUncheckedWriterExactSize(t *testing.T) {
	n := wire.SizeVarint(300) + 4
	buf := make([]byte, n)
	w := wire.NewUncheckedWriter(buf)
	if err := w.WriteVarint64(300); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteFixed32(0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	if len(w.Bytes()) != n {
		t.Errorf("wrote %d bytes, want exactly %d", len(w.Bytes()), n)
	}
}

func TestSliceWriterShortWrite(t *testing.T) {
	w := wire.NewSliceWriter(make([]byte, 1))
	if err := w.WriteFixed32(1); err != io.ErrShortWrite {
		t.Fatalf("err = %v, want io.ErrShortWrite", err)
	}
}

// TestNestedLimitDebitsOuterBudget exercises a limit pushed inside another
// limit, followed by more data under the outer limit: popping the inner
// limit must debit the bytes it consumed from the restored outer budget,
// not simply restore the outer's pre-push value, or the trailing data
// looks like it belongs to an enclosing bounded scope that has already
// been satisfied.
func TestNestedLimitDebitsOuterBudget(t *testing.T) {
	// inner = a one-byte length-delimited blob holding varint(42).
	inner := []byte{0x01, 0x2a}
	// trailing = one more varint(7) living under the same outer limit,
	// after the inner blob.
	trailing := []byte{0x07}
	outerPayload := append(append([]byte{}, inner...), trailing...)

	r := wire.NewReader(outerPayload)
	outer, err := r.PushLimitN(int32(len(outerPayload)))
	if err != nil {
		t.Fatal(err)
	}

	innerLimit, err := r.PushLimit() // reads the 0x01 length prefix
	if err != nil {
		t.Fatal(err)
	}
	v, err := r.ReadVarint64()
	if err != nil {
		t.Fatal(err)
	}
	if v != 42 {
		t.Fatalf("inner value = %d, want 42", v)
	}
	innerLimit.Pop()

	if got, want := r.Len(), len(trailing); got != want {
		t.Fatalf("outer Len() after inner Pop = %d, want %d (inner's consumed bytes must be debited from outer)", got, want)
	}

	v, err = r.ReadVarint64()
	if err != nil {
		t.Fatal(err)
	}
	if v != 7 {
		t.Fatalf("trailing value = %d, want 7", v)
	}
	if got := r.Len(); got != 0 {
		t.Fatalf("outer Len() after consuming trailing data = %d, want 0", got)
	}
	outer.Pop()
}

// TestStreamReaderBeyondBufferCapacity exercises NewStreamReader with an
// input several times larger than its internal buffer, so a decode must
// refill (and correctly compact) more than once to complete.
func TestStreamReaderBeyondBufferCapacity(t *testing.T) {
	var buf bytes.Buffer
	w := wire.NewStreamWriter(&buf)
	const count = 4000 // at several bytes each, comfortably exceeds an 8 KiB buffer
	want := make([]uint64, count)
	for i := range want {
		v := uint64(i) * 1000003
		want[i] = v
		if err := w.WriteVarint64(v); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() <= 8*1024 {
		t.Fatalf("test input is only %d bytes, want it to exceed the stream buffer size", buf.Len())
	}

	r := wire.NewStreamReader(bytes.NewReader(buf.Bytes()))
	for i, w := range want {
		got, err := r.ReadVarint64()
		if err != nil {
			t.Fatalf("ReadVarint64 #%d: %v", i, err)
		}
		if got != w {
			t.Fatalf("value #%d = %d, want %d", i, got, w)
		}
	}
	if _, ok, err := r.ReadTag(); err != nil || ok {
		t.Fatalf("expected clean end of stream, got ok=%v err=%v", ok, err)
	}
}

// TestStreamReaderLargeLengthDelimited exercises ReadBytes for a payload
// larger than the stream buffer, which must be satisfied directly from
// the source rather than the internal buffer.
func TestStreamReaderLargeLengthDelimited(t *testing.T) {
	payload := make([]byte, 20000)
	for i := range payload {
		payload[i] = byte(i)
	}
	var buf bytes.Buffer
	w := wire.NewStreamWriter(&buf)
	if err := w.WriteBytes(payload); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	r := wire.NewStreamReader(bytes.NewReader(buf.Bytes()))
	got, err := r.ReadBytes()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(payload) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(payload))
	}
	for i := range payload {
		if got[i] != payload[i] {
			t.Fatalf("byte %d = %x, want %x", i, got[i], payload[i])
		}
	}
}
