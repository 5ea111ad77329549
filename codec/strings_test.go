// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"testing"
	"testing/quick"

	"github.com/gopb/wireproto/codec"
	"github.com/gopb/wireproto/wire"
)

func TestStringRoundTrip(t *testing.T) {
	f := func(v string) bool { return roundTrip(t, codec.String, v) == v }
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	f := func(v []byte) bool {
		got := roundTrip(t, codec.Bytes, v)
		if len(got) != len(v) {
			return false
		}
		for i := range v {
			if got[i] != v[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	c := codec.StringCodec{Field: "name"}
	n := codec.SizeField[string](codec.String, 1, string([]byte{0xff, 0xfe}))
	buf := make([]byte, n)
	w := wire.NewUncheckedWriter(buf)
	codec.WriteField(w, codec.Bytes, 1, []byte{0xff, 0xfe})

	r := wire.NewReader(w.Bytes())
	if _, _, err := r.ReadTag(); err != nil {
		t.Fatal(err)
	}
	_, err := c.Read(r)
	e, ok := err.(*wire.InvalidStringError)
	if !ok {
		t.Fatalf("err = %v (%T), want *wire.InvalidStringError", err, err)
	}
	if !e.InvalidUTF8() {
		t.Error("InvalidUTF8() should report true")
	}
}
