// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extension_test

import (
	"testing"

	"github.com/gopb/wireproto/codec"
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/extension"
	"github.com/gopb/wireproto/internal/testmsg"
	"github.com/gopb/wireproto/wire"
)

func TestEntryGetSetClear(t *testing.T) {
	id := &extension.Identifier[string]{ExtendedType: "pkg.M", Field: 100, Codec: codec.String}
	e := extension.For(id)

	var s extension.Set
	if e.Has(&s) {
		t.Fatal("unset extension should report Has=false")
	}
	if got := e.Get(&s); got != "" {
		t.Errorf("Get on unset extension = %q, want zero value", got)
	}

	e.Set(&s, "hello")
	if !e.Has(&s) {
		t.Fatal("Has should report true after Set")
	}
	if got := e.Get(&s); got != "hello" {
		t.Errorf("Get = %q, want hello", got)
	}

	e.Clear(&s)
	if e.Has(&s) {
		t.Fatal("Has should report false after Clear")
	}
}

func TestEntryDefault(t *testing.T) {
	def := "fallback"
	id := &extension.Identifier[string]{ExtendedType: "pkg.M", Field: 100, Codec: codec.String, Default: &def}
	e := extension.For(id)

	var s extension.Set
	if got := e.Get(&s); got != def {
		t.Errorf("Get with default = %q, want %q", got, def)
	}
}

func TestSetSizeWriteRoundTrip(t *testing.T) {
	id := &extension.Identifier[int32]{ExtendedType: "pkg.M", Field: 5, Codec: codec.Int32}
	e := extension.For(id)

	var s extension.Set
	e.Set(&s, 42)

	b := size.New()
	s.CalculateSize(b)
	n, _ := b.Len()
	buf := make([]byte, n)
	w := wire.NewUncheckedWriter(buf)
	if err := s.WriteTo(w); err != nil {
		t.Fatal(err)
	}

	r := wire.NewReader(w.Bytes())
	tag, ok, err := r.ReadTag()
	if err != nil || !ok {
		t.Fatal(err)
	}
	if tag.Number() != 5 {
		t.Fatalf("tag.Number() = %d, want 5", tag.Number())
	}
	v, err := codec.Int32.Read(r)
	if err != nil || v != 42 {
		t.Fatalf("got %d, %v, want 42, nil", v, err)
	}
}

func TestMergeFieldOnlyHandlesItsOwnFieldNumber(t *testing.T) {
	id := &extension.Identifier[int32]{ExtendedType: "pkg.M", Field: 5, Codec: codec.Int32}

	n := codec.SizeField(codec.Int32, 5, int32(7))
	buf := make([]byte, n)
	w := wire.NewUncheckedWriter(buf)
	codec.WriteField(w, codec.Int32, 5, int32(7))

	r := wire.NewReader(w.Bytes())
	tag, ok, err := r.ReadTag()
	if err != nil || !ok {
		t.Fatal(err)
	}

	var s extension.Set
	handled, err := extension.MergeField(&s, id, r, tag.Number()+1)
	if handled || err != nil {
		t.Fatalf("mismatched field number should be unhandled, got handled=%v err=%v", handled, err)
	}

	handled, err = extension.MergeField(&s, id, r, tag.Number())
	if !handled || err != nil {
		t.Fatalf("matching field number should be handled, got handled=%v err=%v", handled, err)
	}
	if got := extension.For(id).Get(&s); got != 7 {
		t.Errorf("Get() = %d, want 7", got)
	}
}

// TestMergeFieldRecursivelyMergesMessageValue covers a message-typed
// extension: a repeated field occurrence must merge into the value
// already stored for that field, the same as any other singular message
// field, rather than discarding it wholesale.
func TestMergeFieldRecursivelyMergesMessageValue(t *testing.T) {
	vc := codec.Message(func() *testmsg.Scalars { return &testmsg.Scalars{} })
	id := &extension.Identifier[*testmsg.Scalars]{ExtendedType: "pkg.M", Field: 9, Codec: vc}

	write := func(v *testmsg.Scalars) []byte {
		n := codec.SizeField(vc, 9, v)
		buf := make([]byte, n)
		w := wire.NewUncheckedWriter(buf)
		if err := codec.WriteField(w, vc, 9, v); err != nil {
			t.Fatal(err)
		}
		return w.Bytes()
	}

	entry1 := write(&testmsg.Scalars{I32: 1})
	entry2 := write(&testmsg.Scalars{Str: "hello"}) // I32 absent, must not clobber
	combined := append(append([]byte{}, entry1...), entry2...)

	var s extension.Set
	r := wire.NewReader(combined)
	for {
		tag, ok, err := r.ReadTag()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		if _, err := extension.MergeField(&s, id, r, tag.Number()); err != nil {
			t.Fatal(err)
		}
	}

	got := extension.For(id).Get(&s)
	if got.I32 != 1 || got.Str != "hello" {
		t.Errorf("Get() = %+v, want I32=1 Str=hello (message-valued extensions must merge, not replace)", got)
	}
}

func TestSetClone(t *testing.T) {
	id := &extension.Identifier[int32]{ExtendedType: "pkg.M", Field: 5, Codec: codec.Int32}
	e := extension.For(id)

	var s extension.Set
	e.Set(&s, 1)
	clone := s.Clone()
	e.Set(&s, 2)

	if got := e.Get(clone); got != 1 {
		t.Errorf("clone value = %d, want 1 (unaffected by later Set on original)", got)
	}
	if got := e.Get(&s); got != 2 {
		t.Errorf("original value = %d, want 2", got)
	}
}
