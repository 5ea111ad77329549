// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field_test

import (
	"testing"

	"github.com/gopb/wireproto/codec"
	"github.com/gopb/wireproto/field"
	"github.com/gopb/wireproto/wire"
)

func TestEachDispatchesAndSkipsUnconsumed(t *testing.T) {
	var buf []byte
	for _, fv := range []struct {
		num wire.Number
		v   int32
	}{{1, 10}, {2, 20}, {3, 30}} {
		n := codec.SizeField(codec.Int32, fv.num, fv.v)
		tmp := make([]byte, n)
		w := wire.NewUncheckedWriter(tmp)
		codec.WriteField(w, codec.Int32, fv.num, fv.v)
		buf = append(buf, w.Bytes()...)
	}

	var consumedField1 int32
	var sawField2, sawField3 bool
	r := wire.NewReader(buf)
	err := field.Each(r, func(num wire.Number, typ wire.Type) (bool, error) {
		switch num {
		case 1:
			v, err := codec.Int32.Read(r)
			if err != nil {
				return true, err
			}
			consumedField1 = v
			return true, nil
		case 2:
			sawField2 = true
			return false, nil // let Each skip it
		case 3:
			sawField3 = true
			return false, nil
		}
		return false, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if consumedField1 != 10 {
		t.Errorf("field 1 = %d, want 10", consumedField1)
	}
	if !sawField2 || !sawField3 {
		t.Error("expected callback invoked for fields 2 and 3")
	}
}
