// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testmsg

import (
	"github.com/gopb/wireproto/codec"
	"github.com/gopb/wireproto/codec/size"
	"github.com/gopb/wireproto/field"
	"github.com/gopb/wireproto/proto"
	"github.com/gopb/wireproto/wire"
)

const (
	leafFieldName wire.Number = 1
)

// Leaf is the smallest possible nested message: one string field.
type Leaf struct {
	Name string

	unknown field.UnknownFields
}

func newLeaf() *Leaf { return &Leaf{} }

func (m *Leaf) MergeFrom(r *wire.Reader) error {
	return field.Each(r, func(num wire.Number, typ wire.Type) (bool, error) {
		if num == leafFieldName {
			v, err := codec.String.Read(r)
			if err != nil {
				return true, err
			}
			m.Name = v
			return true, nil
		}
		return true, m.unknown.TryMerge(r, wire.EncodeTag(num, typ))
	})
}

func (m *Leaf) CalculateSize(b *size.Builder) {
	if m.Name != "" {
		b.AddBytes(int(codec.SizeField(codec.String, leafFieldName, m.Name)))
	}
	m.unknown.CalculateSize(b)
}

func (m *Leaf) WriteTo(w *wire.Writer) error {
	if m.Name != "" {
		if err := codec.WriteField(w, codec.String, leafFieldName, m.Name); err != nil {
			return err
		}
	}
	return m.unknown.WriteTo(w)
}

func (m *Leaf) IsInitialized() bool { return true }

const (
	treeFieldChild    wire.Number = 1
	treeFieldChildren wire.Number = 2
	treeFieldTags     wire.Number = 3 // repeated packed int32
	treeFieldAttrs    wire.Number = 4 // map<string, int32>
	treeFieldDetail   wire.Number = 5 // group
)

// Tree covers a singular nested message, a repeated nested message, a
// packed repeated scalar, a string-to-int32 map, and a group field.
type Tree struct {
	Child    *Leaf
	Children *field.Repeated[*Leaf]
	Tags     *field.Repeated[int32]
	Attrs    *field.Map[string, int32]
	Detail   *Detail

	unknown field.UnknownFields
}

// NewTree returns a Tree with its container fields ready to populate.
func NewTree() *Tree {
	return &Tree{
		Children: field.NewRepeated(codec.Message(newLeaf)),
		Tags:     field.NewRepeated[int32](codec.Int32),
		Attrs:    field.NewMap[string, int32](codec.String, codec.Int32),
	}
}

// Detail is a group field (legacy proto2 syntax: StartGroup/EndGroup
// brackets instead of a length prefix).
type Detail struct {
	Note string

	unknown field.UnknownFields
}

const detailFieldNote wire.Number = 1

func newDetail() *Detail { return &Detail{} }

func (m *Detail) MergeFrom(r *wire.Reader) error {
	return field.Each(r, func(num wire.Number, typ wire.Type) (bool, error) {
		if num == detailFieldNote {
			v, err := codec.String.Read(r)
			if err != nil {
				return true, err
			}
			m.Note = v
			return true, nil
		}
		return true, m.unknown.TryMerge(r, wire.EncodeTag(num, typ))
	})
}

func (m *Detail) CalculateSize(b *size.Builder) {
	if m.Note != "" {
		b.AddBytes(int(codec.SizeField(codec.String, detailFieldNote, m.Note)))
	}
	m.unknown.CalculateSize(b)
}

func (m *Detail) WriteTo(w *wire.Writer) error {
	if m.Note != "" {
		if err := codec.WriteField(w, codec.String, detailFieldNote, m.Note); err != nil {
			return err
		}
	}
	return m.unknown.WriteTo(w)
}

func (m *Detail) IsInitialized() bool { return true }

var leafCodec = codec.Message(newLeaf)
var detailGroupCodec = codec.Group(newDetail)

func (m *Tree) MergeFrom(r *wire.Reader) error {
	return field.Each(r, func(num wire.Number, typ wire.Type) (bool, error) {
		switch num {
		case treeFieldChild:
			v, err := leafCodec.Read(r)
			if err != nil {
				return true, err
			}
			if m.Child != nil {
				return true, proto.Merge(m.Child, v)
			}
			m.Child = v
			return true, nil
		case treeFieldChildren:
			if m.Children == nil {
				m.Children = field.NewRepeated(leafCodec)
			}
			return true, m.Children.MergeEntry(r, typ)
		case treeFieldTags:
			if m.Tags == nil {
				m.Tags = field.NewRepeated[int32](codec.Int32)
			}
			return true, m.Tags.MergeEntry(r, typ)
		case treeFieldAttrs:
			if m.Attrs == nil {
				m.Attrs = field.NewMap[string, int32](codec.String, codec.Int32)
			}
			return true, m.Attrs.MergeEntry(r)
		case treeFieldDetail:
			v, err := codec.ReadGroupField(r, detailGroupCodec, num)
			if err != nil {
				return true, err
			}
			if m.Detail != nil {
				return true, proto.Merge(m.Detail, v)
			}
			m.Detail = v
			return true, nil
		}
		return true, m.unknown.TryMerge(r, wire.EncodeTag(num, typ))
	})
}

func (m *Tree) CalculateSize(b *size.Builder) {
	if m.Child != nil {
		b.AddBytes(int(codec.SizeField(leafCodec, treeFieldChild, m.Child)))
	}
	if m.Children != nil {
		m.Children.CalculateSize(b, treeFieldChildren)
	}
	if m.Tags != nil {
		m.Tags.CalculateSize(b, treeFieldTags)
	}
	if m.Attrs != nil {
		m.Attrs.CalculateSize(b, treeFieldAttrs)
	}
	if m.Detail != nil {
		b.AddBytes(int(codec.SizeField(detailGroupCodec, treeFieldDetail, m.Detail)))
	}
	m.unknown.CalculateSize(b)
}

func (m *Tree) WriteTo(w *wire.Writer) error {
	if m.Child != nil {
		if err := codec.WriteField(w, leafCodec, treeFieldChild, m.Child); err != nil {
			return err
		}
	}
	if m.Children != nil {
		if err := m.Children.WriteTo(w, treeFieldChildren); err != nil {
			return err
		}
	}
	if m.Tags != nil {
		if err := m.Tags.WriteTo(w, treeFieldTags); err != nil {
			return err
		}
	}
	if m.Attrs != nil {
		if err := m.Attrs.WriteTo(w, treeFieldAttrs); err != nil {
			return err
		}
	}
	if m.Detail != nil {
		if err := codec.WriteField(w, detailGroupCodec, treeFieldDetail, m.Detail); err != nil {
			return err
		}
	}
	return m.unknown.WriteTo(w)
}

func (m *Tree) IsInitialized() bool {
	if m.Child != nil && !m.Child.IsInitialized() {
		return false
	}
	if m.Children != nil && !m.Children.IsInitialized() {
		return false
	}
	if m.Detail != nil && !m.Detail.IsInitialized() {
		return false
	}
	return true
}
