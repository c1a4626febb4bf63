// Package ecs holds the link/trait aggregation: a Link is an identity plus a
// heterogeneous set of traits indexed by typed keys. Traits are plain data;
// all behaviour lives in routines.
package ecs

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrDuplicateTrait is raised when a Link is constructed with two traits
	// sharing a key.
	ErrDuplicateTrait = errors.New("duplicate trait key")
	// ErrMissingTrait is raised by Must when a required trait is absent.
	ErrMissingTrait = errors.New("missing trait")
)

type keyID uint32

var nextKeyID atomic.Uint32

// TraitKey identifies one trait slot. Keys compare by identity, never by name.
type TraitKey interface {
	keyID() keyID
	Name() string
}

// Trait is a key bound to a value (or a bare marker) ready to be attached to
// a Link.
type Trait interface {
	bind() binding
}

type binding struct {
	id    keyID
	name  string
	value any
}

func (b binding) bind() binding { return b }

// Key is a typed trait key. The trait value is stored by pointer so every
// routine reading it observes the same instance.
type Key[T any] struct {
	id   keyID
	name string
}

// NewKey creates a unique key for traits of type T. The name is only used in
// diagnostics.
func NewKey[T any](name string) *Key[T] {
	return &Key[T]{id: keyID(nextKeyID.Add(1)), name: name}
}

func (k *Key[T]) keyID() keyID { return k.id }

// Name returns the diagnostic name of the key.
func (k *Key[T]) Name() string { return k.name }

// Of binds a copy of v to the key.
func (k *Key[T]) Of(v T) Trait {
	return binding{id: k.id, name: k.name, value: &v}
}

// Ptr binds v itself to the key.
func (k *Key[T]) Ptr(v *T) Trait {
	return binding{id: k.id, name: k.name, value: v}
}

// Marker is a payload-free key used to tag a link with a capability. A marker
// is its own trait.
type Marker struct {
	id   keyID
	name string
}

type present struct{}

// NewMarker creates a unique marker key.
func NewMarker(name string) *Marker {
	return &Marker{id: keyID(nextKeyID.Add(1)), name: name}
}

func (m *Marker) keyID() keyID { return m.id }

// Name returns the diagnostic name of the marker.
func (m *Marker) Name() string { return m.name }

func (m *Marker) bind() binding {
	return binding{id: m.id, name: m.name, value: present{}}
}
