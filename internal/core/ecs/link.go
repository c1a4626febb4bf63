package ecs

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// Link is an entity identity bundling zero or more traits. The trait set may
// change over the link's lifetime; the identity never does.
type Link struct {
	id     ulid.ULID
	traits map[keyID]any
	names  map[keyID]string
	owner  any
}

// NewLink creates a link from an initial list of traits and markers.
// Two traits with the same key is a content definition bug and panics.
func NewLink(traits ...Trait) *Link {
	l := &Link{
		id:     ulid.Make(),
		traits: make(map[keyID]any, len(traits)),
		names:  make(map[keyID]string, len(traits)),
	}
	for _, t := range traits {
		b := t.bind()
		if _, dup := l.traits[b.id]; dup {
			panic(fmt.Errorf("%w: %s", ErrDuplicateTrait, b.name))
		}
		l.traits[b.id] = b.value
		l.names[b.id] = b.name
	}
	return l
}

// ID returns the link's stable identity.
func (l *Link) ID() ulid.ULID {
	return l.id
}

// String implements fmt.Stringer for log fields.
func (l *Link) String() string {
	return l.id.String()
}

// Has reports whether the key is present.
func (l *Link) Has(k TraitKey) bool {
	_, ok := l.traits[k.keyID()]
	return ok
}

// HasAll reports whether every key is present. It is the routine/link
// matching predicate.
func (l *Link) HasAll(keys ...TraitKey) bool {
	for _, k := range keys {
		if _, ok := l.traits[k.keyID()]; !ok {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one key is present.
func (l *Link) HasAny(keys ...TraitKey) bool {
	for _, k := range keys {
		if _, ok := l.traits[k.keyID()]; ok {
			return true
		}
	}
	return false
}

// Attach adds a trait after construction, replacing any trait already stored
// under the same key.
func (l *Link) Attach(t Trait) {
	b := t.bind()
	l.traits[b.id] = b.value
	l.names[b.id] = b.name
}

// Detach removes the trait stored under k, if any.
func (l *Link) Detach(k TraitKey) {
	delete(l.traits, k.keyID())
	delete(l.names, k.keyID())
}

// Keys returns the diagnostic names of the attached traits.
func (l *Link) Keys() []string {
	out := make([]string, 0, len(l.names))
	for _, n := range l.names {
		out = append(out, n)
	}
	return out
}

// Len returns the number of attached traits.
func (l *Link) Len() int {
	return len(l.traits)
}

// Bind records the universe (or any other owner) the link now belongs to.
// A link belongs to at most one owner at a time.
func (l *Link) Bind(owner any) bool {
	if l.owner != nil && l.owner != owner {
		return false
	}
	l.owner = owner
	return true
}

// Unbind clears the owner if it is the given one.
func (l *Link) Unbind(owner any) {
	if l.owner == owner {
		l.owner = nil
	}
}

// Owner returns the current owner, or nil.
func (l *Link) Owner() any {
	return l.owner
}

// Live reports whether the link currently belongs to an owner.
func (l *Link) Live() bool {
	return l.owner != nil
}
