// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extension

import (
	"github.com/gopb/wireproto/codec"
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/proto"
	"github.com/gopb/wireproto/wire"
)

// entry is the type-erased vtable every stored extension value implements,
// letting Set hold a heterogeneous collection of extValue[T] for whatever
// T each Identifier[T] names, without reflection.
type entry interface {
	size(b *size.Builder, num wire.Number)
	writeTo(w *wire.Writer, num wire.Number) error
	clone() entry
	isInitialized() bool
}

type extValue[T any] struct {
	c codec.Codec[T]
	v T
}

func (e extValue[T]) size(b *size.Builder, num wire.Number) {
	b.AddBytes(int(codec.SizeField(e.c, num, e.v)))
}

func (e extValue[T]) writeTo(w *wire.Writer, num wire.Number) error {
	return codec.WriteField(w, e.c, num, e.v)
}

func (e extValue[T]) clone() entry { return e }

func (e extValue[T]) isInitialized() bool { return e.c.IsInitialized(e.v) }

// Set holds the extension values actually present on one message
// instance, keyed by field number. A zero Set is ready to use.
type Set struct {
	values map[wire.Number]entry
}

// Entry is a typed accessor bound to one Identifier, used to Get, Set, and
// Clear its value within a particular Set.
type Entry[T any] struct {
	id *Identifier[T]
}

// For returns an Entry bound to id, usable against any Set that extends
// the same message type.
func For[T any](id *Identifier[T]) Entry[T] {
	return Entry[T]{id: id}
}

// Has reports whether s carries a value for this extension.
func (a Entry[T]) Has(s *Set) bool {
	if s == nil || s.values == nil {
		return false
	}
	_, ok := s.values[wire.Number(a.id.Field)]
	return ok
}

// Get returns the extension's value in s, or its declared default (or the
// zero value of T, if no default was declared) if unset.
func (a Entry[T]) Get(s *Set) T {
	if s != nil && s.values != nil {
		if e, ok := s.values[wire.Number(a.id.Field)]; ok {
			return e.(extValue[T]).v
		}
	}
	if a.id.Default != nil {
		return *a.id.Default
	}
	var zero T
	return zero
}

// Set installs v as this extension's value in s.
func (a Entry[T]) Set(s *Set, v T) {
	if s.values == nil {
		s.values = make(map[wire.Number]entry)
	}
	s.values[wire.Number(a.id.Field)] = extValue[T]{c: a.id.Codec, v: v}
}

// Clear removes this extension's value from s.
func (a Entry[T]) Clear(s *Set) {
	if s.values != nil {
		delete(s.values, wire.Number(a.id.Field))
	}
}

// MergeField attempts to merge one field occurrence into s under id,
// reporting handled=false if num does not match id's field number so the
// caller can try the next registered extension, then fall back to the
// message's unknown-field set. A repeated occurrence of a message-typed
// extension recursively merges into the value already stored in s, the
// same as any other singular message field; for scalar T the new value
// simply replaces the old one.
func MergeField[T any](s *Set, id *Identifier[T], r *wire.Reader, num wire.Number) (handled bool, err error) {
	if num != wire.Number(id.Field) {
		return false, nil
	}
	v, err := id.Codec.Read(r)
	if err != nil {
		return true, err
	}
	e := For(id)
	if e.Has(s) {
		if dst, ok := any(e.Get(s)).(proto.Message); ok {
			if src, ok := any(v).(proto.Message); ok {
				if err := proto.Merge(dst, src); err != nil {
					return true, err
				}
				return true, nil
			}
		}
	}
	e.Set(s, v)
	return true, nil
}

// CalculateSize folds the size of every set extension value into b.
func (s *Set) CalculateSize(b *size.Builder) {
	if s == nil {
		return
	}
	for num, e := range s.values {
		e.size(b, num)
	}
}

// WriteTo writes every set extension value.
func (s *Set) WriteTo(w *wire.Writer) error {
	if s == nil {
		return nil
	}
	for num, e := range s.values {
		if err := e.writeTo(w, num); err != nil {
			return err
		}
	}
	return nil
}

// IsInitialized reports whether every set extension value is initialized.
func (s *Set) IsInitialized() bool {
	if s == nil {
		return true
	}
	for _, e := range s.values {
		if !e.isInitialized() {
			return false
		}
	}
	return true
}

// Clone returns a deep-enough copy of s: each stored value is copied by
// value (extValue[T] holds T directly), matching the shallow-copy
// semantics Go assignment already gives scalar and message-pointer
// extension values.
func (s *Set) Clone() *Set {
	if s == nil || s.values == nil {
		return &Set{}
	}
	out := &Set{values: make(map[wire.Number]entry, len(s.values))}
	for num, e := range s.values {
		out.values[num] = e.clone()
	}
	return out
}

// Len returns the number of set extension values.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}
