// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testmsg

import (
	"github.com/gopb/wireproto/codec"
	"github.com/gopb/wireproto/extension"
)

// NoteExtension is a sample extension field on Event, declared the way a
// ".proto extend Event { optional string note = 100; }" block would
// generate one.
var NoteExtension = &extension.Identifier[string]{
	ExtendedType: EventTypeName,
	Field:        100,
	Codec:        codec.String,
}

// NoteEntry is the typed accessor for NoteExtension.
var NoteEntry = extension.For(NoteExtension)

func init() {
	RegisterEventExtension("testmsg.NoteExtension", NoteExtension)
}
