// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proto ties the wire engine together into the contract that
// generated data-class code implements, and exposes the package-level
// Marshal/Unmarshal/Merge entry points built on top of it.
package proto

import (
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/wire"
)

// Message is the contract a generated (or hand-written) protocol buffer
// type implements to plug into the wire engine. Only this package, and
// the codec/field/extension packages building on top of it, should need
// to call these methods directly; everything else should go through
// Marshal/Unmarshal/Merge.
//
// MergeFrom reads fields from r in a loop until ReadTag reports a clean
// stop, dispatching matched field numbers to their codec and delegating
// unmatched ones, in order, to the message's extension set, then its
// unknown-field set, then Reader.Skip.
//
// CalculateSize folds the size of every populated field, extension, and
// unknown field into b.
//
// WriteTo mirrors MergeFrom, writing populated fields in field-number
// order (the wire format does not require any particular order).
//
// IsInitialized reports whether every required field, recursively, is
// populated.
type Message interface {
	MergeFrom(r *wire.Reader) error
	CalculateSize(b *size.Builder)
	WriteTo(w *wire.Writer) error
	IsInitialized() bool
}

// RequiredNotSetError is returned by Marshal when a required field was
// never set, or by Unmarshal when wire data is missing one.
type RequiredNotSetError struct{ Field string }

func (e *RequiredNotSetError) Error() string {
	if e.Field == "" {
		return "proto: required field not set"
	}
	return "proto: required field " + e.Field + " not set"
}

// RequiredNotSet reports true so that callers accumulating non-fatal
// errors (see internal/errors.NonFatal) can recognize and batch this
// error kind rather than aborting immediately.
func (e *RequiredNotSetError) RequiredNotSet() bool { return true }
