package ecs

// LinkSet is an insertion-ordered set of links with O(1) add, remove and
// membership. Removal leaves a hole that is compacted on the next Snapshot,
// so iteration order stays the order links were added.
type LinkSet struct {
	items []*Link
	index map[*Link]int
	holes int
}

// NewLinkSet creates an empty set.
func NewLinkSet() *LinkSet {
	return &LinkSet{
		items: make([]*Link, 0, 32),
		index: make(map[*Link]int, 32),
	}
}

// Add inserts l. It returns false if l was already present.
func (s *LinkSet) Add(l *Link) bool {
	if _, ok := s.index[l]; ok {
		return false
	}
	s.index[l] = len(s.items)
	s.items = append(s.items, l)
	return true
}

// Remove deletes l. It returns false if l was not present.
func (s *LinkSet) Remove(l *Link) bool {
	i, ok := s.index[l]
	if !ok {
		return false
	}
	delete(s.index, l)
	s.items[i] = nil
	s.holes++
	if s.holes > 32 && s.holes > len(s.items)/2 {
		s.compact()
	}
	return true
}

// Contains reports membership.
func (s *LinkSet) Contains(l *Link) bool {
	_, ok := s.index[l]
	return ok
}

// Len returns the number of members.
func (s *LinkSet) Len() int {
	return len(s.index)
}

// Snapshot returns a stable copy of the members in insertion order. Callers
// may add to or remove from the set while iterating the copy.
func (s *LinkSet) Snapshot() []*Link {
	if s.holes > 0 {
		s.compact()
	}
	out := make([]*Link, len(s.items))
	copy(out, s.items)
	return out
}

// Clear removes every member.
func (s *LinkSet) Clear() {
	s.items = s.items[:0]
	clear(s.index)
	s.holes = 0
}

func (s *LinkSet) compact() {
	n := 0
	for _, l := range s.items {
		if l == nil {
			continue
		}
		s.items[n] = l
		s.index[l] = n
		n++
	}
	clear(s.items[n:])
	s.items = s.items[:n]
	s.holes = 0
}
