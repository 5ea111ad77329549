// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extension implements proto2-style extension fields: a
// registry of identifiers declared against a particular message type and
// field number, and a Set that stores the extension values actually
// present on one message instance.
package extension

import "github.com/gopb/wireproto/codec"

// Identifier names one extension: the message type it extends, the field
// number it occupies within that type's extension ranges, and the codec
// used to read, write, and size its value. Generated code declares one
// package-level Identifier per extension field.
type Identifier[T any] struct {
	ExtendedType string
	Field        int32
	Codec        codec.Codec[T]

	// Default is returned by Entry.Get when the extension is unset. Left
	// nil, the zero value of T is used instead.
	Default *T
}
