// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto_test

import (
	"testing"

	"github.com/gopb/wireproto/internal/testmsg"
	"github.com/gopb/wireproto/proto"
)

func TestMarshalRequiredNotSet(t *testing.T) {
	ev := &testmsg.Event{}
	if _, err := proto.Marshal(ev); err == nil {
		t.Fatal("expected RequiredNotSetError for a fully unset Event")
	}
}

func TestMarshalAllowPartial(t *testing.T) {
	ev := &testmsg.Event{}
	if _, err := (proto.MarshalOptions{AllowPartial: true}).Marshal(ev); err != nil {
		t.Fatalf("AllowPartial Marshal: %v", err)
	}
}

func TestUnmarshalRequiredNotSet(t *testing.T) {
	ev := &testmsg.Event{}
	empty, err := (proto.MarshalOptions{AllowPartial: true}).Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	got := &testmsg.Event{}
	if err := proto.Unmarshal(empty, got); err == nil {
		t.Fatal("expected RequiredNotSetError unmarshaling an empty Event")
	}
}

func TestBufferMarshalUnmarshal(t *testing.T) {
	scalars := &testmsg.Scalars{I32: 7, Str: "hi"}
	buf := proto.NewBuffer(nil)
	if err := buf.Marshal(scalars); err != nil {
		t.Fatal(err)
	}
	got := &testmsg.Scalars{}
	unbuf := proto.NewBuffer(buf.Bytes())
	if err := unbuf.Unmarshal(got); err != nil {
		t.Fatal(err)
	}
	if got.I32 != 7 || got.Str != "hi" {
		t.Errorf("got %+v", got)
	}
}

func TestMergeRoundTrip(t *testing.T) {
	src := &testmsg.Scalars{I32: 1, Str: "a"}
	dst := &testmsg.Scalars{Bool: true}
	if err := proto.Merge(dst, src); err != nil {
		t.Fatal(err)
	}
	if dst.I32 != 1 || dst.Str != "a" || !dst.Bool {
		t.Errorf("dst after merge = %+v, want I32=1 Str=a Bool=true (fields absent from src must not clobber dst)", dst)
	}
}

func TestSizeMatchesMarshalLength(t *testing.T) {
	m := &testmsg.Scalars{I32: 12345, Str: "hello world"}
	b, err := proto.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := proto.Size(m), int32(len(b)); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
}
