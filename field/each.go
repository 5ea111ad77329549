// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "github.com/gopb/wireproto/wire"

// Each reads successive top-level fields from r, invoking fn with each
// field's number and wire type. fn returns consumed=true if it read (or
// explicitly skipped) the field's value itself; when it returns false,
// Each calls r.Skip on the caller's behalf, the same "did you take it, or
// should I discard it" protocol a hand-rolled decode loop follows field
// by field.
func Each(r *wire.Reader, fn func(num wire.Number, typ wire.Type) (consumed bool, err error)) error {
	for {
		t, ok, err := r.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		consumed, err := fn(t.Number(), t.Type())
		if err != nil {
			return err
		}
		if !consumed {
			if err := r.Skip(); err != nil {
				return err
			}
		}
	}
}
