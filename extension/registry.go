// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extension

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/gopb/wireproto/internal/set"
)

// Registry tracks every Identifier declared against a message type,
// detecting the one mistake that cannot be caught at compile time: two
// extensions claiming the same field number on the same extended type.
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[registryKey]registered
	types   set.Strings // every extendedType seen by Register, for Types

	// group memoizes concurrent first-time Resolve calls for the same
	// key onto a single lookup, matching the "resolve once, many
	// decoders reuse it" access pattern of a shared process-wide
	// extension registry.
	group singleflight.Group
}

type registryKey struct {
	extendedType string
	field        int32
}

type registered struct {
	name string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]registered)}
}

// Register declares the extension at field of extendedType under a
// human-readable name (used in conflict error messages and reported by
// Resolve). It returns an error if another
// extension is already registered for the same extended type and field
// number.
func (r *Registry) Register(name string, extendedType string, field int32) error {
	key := registryKey{extendedType: extendedType, field: field}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.entries[key]; ok {
		return fmt.Errorf("extension: field %d of %s already registered as %s, cannot also register %s",
			field, extendedType, existing.name, name)
	}
	r.entries[key] = registered{name: name}
	r.types.Set(extendedType)
	return nil
}

// Types returns the number of distinct message types that carry at least
// one registered extension.
func (r *Registry) Types() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.types.Len()
}

// Resolve reports the name under which the given extended-type/field pair
// is registered, and whether anything is registered there at all.
// Concurrent Resolve calls for the same key are coalesced into a single
// map lookup via the registry's singleflight group.
func (r *Registry) Resolve(extendedType string, field int32) (name string, ok bool) {
	key := registryKey{extendedType: extendedType, field: field}
	v, err, _ := r.group.Do(fmt.Sprintf("%s\x00%d", extendedType, field), func() (interface{}, error) {
		r.mu.RLock()
		defer r.mu.RUnlock()
		reg, found := r.entries[key]
		return resolveResult{name: reg.name, ok: found}, nil
	})
	if err != nil {
		return "", false
	}
	res := v.(resolveResult)
	return res.name, res.ok
}

type resolveResult struct {
	name string
	ok   bool
}
