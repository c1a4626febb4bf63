package ecs

// IDPool hands out small integer ids to links lazily, on first use, in
// monotonically increasing order. A pool is owned by one consumer (the
// collision registry) so independent simulations never share ids.
type IDPool struct {
	ids  map[*Link]uint32
	next uint32
}

// NewIDPool creates an empty pool. The first id handed out is 1.
func NewIDPool() *IDPool {
	return &IDPool{
		ids:  make(map[*Link]uint32, 64),
		next: 1,
	}
}

// ID returns the id of l, assigning the next one if l has none yet.
func (p *IDPool) ID(l *Link) uint32 {
	if id, ok := p.ids[l]; ok {
		return id
	}
	id := p.next
	p.next++
	p.ids[l] = id
	return id
}

// Lookup returns the id of l without assigning one.
func (p *IDPool) Lookup(l *Link) (uint32, bool) {
	id, ok := p.ids[l]
	return id, ok
}

// Forget drops the id of l. Ids are never reused.
func (p *IDPool) Forget(l *Link) {
	delete(p.ids, l)
}

// Len returns the number of links currently holding an id.
func (p *IDPool) Len() int {
	return len(p.ids)
}

// Reset forgets every assignment and restarts numbering.
func (p *IDPool) Reset() {
	clear(p.ids)
	p.next = 1
}
