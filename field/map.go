// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/gopb/wireproto/codec"
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/proto"
	"github.com/gopb/wireproto/wire"
)

const (
	mapKeyNumber   wire.Number = 1
	mapValueNumber wire.Number = 2
)

// Map is a map field's storage: each wire occurrence is a length-delimited
// two-field submessage (key at field 1, value at field 2), decoded entry
// by entry and merged into a plain Go map.
type Map[K comparable, V any] struct {
	kc     codec.Codec[K]
	vc     codec.Codec[V]
	Values map[K]V
}

// NewMap returns an empty Map field using kc and vc to code keys and
// values.
func NewMap[K comparable, V any](kc codec.Codec[K], vc codec.Codec[V]) *Map[K, V] {
	return &Map[K, V]{kc: kc, vc: vc, Values: make(map[K]V)}
}

// MergeEntry merges one map-entry occurrence (the LengthDelimited tag has
// already been consumed by the caller) into the map. A decoded key
// already present in the map recursively merges the new value into the
// existing one when V is itself a message type, the same as any other
// singular message field; for scalar V the new value simply replaces the
// old one.
func (f *Map[K, V]) MergeEntry(r *wire.Reader) error {
	var key K
	var haveKey bool
	var value V
	haveValue := false

	l, err := r.PushLimit()
	if err != nil {
		return err
	}
	err = func() error {
		for {
			t, ok, err := r.ReadTag()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			switch t.Number() {
			case mapKeyNumber:
				key, err = f.kc.Read(r)
				if err != nil {
					return err
				}
				haveKey = true
			case mapValueNumber:
				value, err = f.vc.Read(r)
				if err != nil {
					return err
				}
				haveValue = true
			default:
				if err := r.Skip(); err != nil {
					return err
				}
			}
		}
	}()
	l.Pop()
	if err != nil {
		return err
	}
	if !haveKey {
		key = zeroOf[K]()
	}
	if !haveValue {
		value = zeroOf[V]()
	}
	if f.Values == nil {
		f.Values = make(map[K]V)
	}
	if haveValue {
		if existing, ok := f.Values[key]; ok {
			if dst, ok := any(existing).(proto.Message); ok {
				if src, ok := any(value).(proto.Message); ok {
					if err := proto.Merge(dst, src); err != nil {
						return err
					}
					return nil
				}
			}
		}
	}
	f.Values[key] = value
	return nil
}

func zeroOf[T any]() T {
	var z T
	return z
}

// CalculateSize folds the size of every entry under field number num into
// b. Map iteration order is unspecified, matching the wire format's lack
// of any ordering guarantee for map entries.
func (f *Map[K, V]) CalculateSize(b *size.Builder, num wire.Number) {
	for k, v := range f.Values {
		entry := size.New()
		entry.AddTag(mapKeyNumber)
		entry.AddBytes(int(f.kc.Size(k)))
		entry.AddTag(mapValueNumber)
		entry.AddBytes(int(f.vc.Size(v)))
		n, _ := entry.Len()
		b.AddTag(num)
		b.AddLengthDelimited(int(n))
	}
}

// WriteTo writes every entry under field number num. Both the key and the
// value are always written, even when they equal their type's zero value,
// so that a round trip never silently drops an entry.
func (f *Map[K, V]) WriteTo(w *wire.Writer, num wire.Number) error {
	for k, v := range f.Values {
		entry := size.New()
		entry.AddTag(mapKeyNumber)
		entry.AddBytes(int(f.kc.Size(k)))
		entry.AddTag(mapValueNumber)
		entry.AddBytes(int(f.vc.Size(v)))
		n, _ := entry.Len()

		if err := w.WriteTag(num, wire.LengthDelimitedType); err != nil {
			return err
		}
		if err := w.WriteLength(n); err != nil {
			return err
		}
		if err := codec.WriteField(w, f.kc, mapKeyNumber, k); err != nil {
			return err
		}
		if err := codec.WriteField(w, f.vc, mapValueNumber, v); err != nil {
			return err
		}
	}
	return nil
}

// IsInitialized reports whether every value is initialized (map keys are
// always scalar and therefore always initialized).
func (f *Map[K, V]) IsInitialized() bool {
	for _, v := range f.Values {
		if !f.vc.IsInitialized(v) {
			return false
		}
	}
	return true
}

// Len returns the number of entries.
func (f *Map[K, V]) Len() int { return len(f.Values) }
