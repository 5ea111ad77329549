// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testmsg

import (
	"github.com/gopb/wireproto/codec"
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/extension"
	"github.com/gopb/wireproto/field"
	"github.com/gopb/wireproto/internal/scalar"
	"github.com/gopb/wireproto/proto"
	"github.com/gopb/wireproto/wire"
)

const (
	eventFieldID   wire.Number = 1 // required
	eventFieldKind wire.Number = 2 // required, enum

	// eventExtensionRangeStart..End mirrors a proto2 "extensions 100 to
	// 199" declaration.
	eventExtensionRangeStart = 100
	eventExtensionRangeEnd   = 199
)

// Kind is a small proto2-style enum.
type Kind int32

const (
	KindUnknown Kind = 0
	KindCreate  Kind = 1
	KindDelete  Kind = 2
)

var kindCodec = codec.Enum[Kind]()

// Event is a proto2-style message with two required fields and a
// declared extension range, exercising RequiredNotSetError and the
// extension package end to end.
type Event struct {
	ID   *int32 // required
	Kind *Kind  // required

	Extensions extension.Set

	unknown field.UnknownFields
}

// EventRegistry is the process-wide registry extensions of Event are
// declared against.
var EventRegistry = extension.NewRegistry()

// EventTypeName is the extended-type name Event's extensions register
// under.
const EventTypeName = "testmsg.Event"

// IsExtensionField reports whether num falls within Event's declared
// extension range.
func IsExtensionField(num wire.Number) bool {
	return num >= eventExtensionRangeStart && num <= eventExtensionRangeEnd
}

func (m *Event) MergeFrom(r *wire.Reader) error {
	return field.Each(r, func(num wire.Number, typ wire.Type) (bool, error) {
		switch num {
		case eventFieldID:
			v, err := codec.Int32.Read(r)
			if err != nil {
				return true, err
			}
			m.ID = scalar.Int32(v)
			return true, nil
		case eventFieldKind:
			v, err := kindCodec.Read(r)
			if err != nil {
				return true, err
			}
			m.Kind = &v
			return true, nil
		}
		if IsExtensionField(num) {
			handled, err := extensionMergeField(&m.Extensions, num, r)
			if handled {
				return true, err
			}
		}
		return true, m.unknown.TryMerge(r, wire.EncodeTag(num, typ))
	})
}

// extensionMergeField dispatches a field occurrence against every
// extension registered for Event, used the same way generated code would
// try each known extension identifier in turn before falling back to
// unknown-field storage.
func extensionMergeField(s *extension.Set, num wire.Number, r *wire.Reader) (bool, error) {
	for _, id := range registeredEventExtensions {
		if handled, err := id.merge(s, num, r); handled {
			return true, err
		}
	}
	return false, nil
}

// eventExtensionEntry type-erases extension.MergeField over a concrete
// Identifier[T] so Event's merge loop can hold a slice of them.
type eventExtensionEntry interface {
	merge(s *extension.Set, num wire.Number, r *wire.Reader) (bool, error)
}

type eventExtensionIdentifier[T any] struct {
	id *extension.Identifier[T]
}

func (e eventExtensionIdentifier[T]) merge(s *extension.Set, num wire.Number, r *wire.Reader) (bool, error) {
	return extension.MergeField(s, e.id, r, num)
}

var registeredEventExtensions []eventExtensionEntry

// RegisterEventExtension declares id against EventRegistry and makes it
// available to Event's merge dispatch; it panics if id's field number
// conflicts with an extension already registered for Event, the same
// "fail loudly at init time" behavior generated registration code relies
// on.
func RegisterEventExtension[T any](name string, id *extension.Identifier[T]) {
	if err := EventRegistry.Register(name, EventTypeName, id.Field); err != nil {
		panic(err)
	}
	registeredEventExtensions = append(registeredEventExtensions, eventExtensionIdentifier[T]{id: id})
}

func (m *Event) CalculateSize(b *size.Builder) {
	if m.ID != nil {
		b.AddBytes(int(codec.SizeField(codec.Int32, eventFieldID, *m.ID)))
	}
	if m.Kind != nil {
		b.AddBytes(int(codec.SizeField(kindCodec, eventFieldKind, *m.Kind)))
	}
	m.Extensions.CalculateSize(b)
	m.unknown.CalculateSize(b)
}

func (m *Event) WriteTo(w *wire.Writer) error {
	if m.ID != nil {
		if err := codec.WriteField(w, codec.Int32, eventFieldID, *m.ID); err != nil {
			return err
		}
	}
	if m.Kind != nil {
		if err := codec.WriteField(w, kindCodec, eventFieldKind, *m.Kind); err != nil {
			return err
		}
	}
	if err := m.Extensions.WriteTo(w); err != nil {
		return err
	}
	return m.unknown.WriteTo(w)
}

func (m *Event) IsInitialized() bool {
	return m.ID != nil && m.Kind != nil && m.Extensions.IsInitialized()
}

var _ proto.Message = (*Event)(nil)
var _ proto.Message = (*Tree)(nil)
var _ proto.Message = (*Scalars)(nil)
var _ proto.Message = (*Leaf)(nil)
var _ proto.Message = (*Detail)(nil)
