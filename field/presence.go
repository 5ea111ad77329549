// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "github.com/gopb/wireproto/internal/set"

// Presence tracks which of a message's proto3 "optional" scalar fields
// have been explicitly set, as a compact bitmap indexed by each field's
// position in declaration order (not its wire field number). This gives
// has-been-set semantics to scalar fields without paying for one pointer
// or one bool per field.
type Presence struct {
	bits set.Ints
}

// Has reports whether the field at index i has been set.
func (p *Presence) Has(i int) bool { return p.bits.Has(uint64(i)) }

// Set marks the field at index i as present.
func (p *Presence) Set(i int) { p.bits.Set(uint64(i)) }

// Clear marks the field at index i as absent.
func (p *Presence) Clear(i int) { p.bits.Clear(uint64(i)) }

// Len returns the number of fields currently marked present.
func (p *Presence) Len() int { return p.bits.Len() }
