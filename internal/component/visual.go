package component

// Visual is the opaque descriptor handed to the render sink.
type Visual struct {
	Glyph  rune
	Color  string
	Radius float64
	Sprite string
}

// Archetype records which content definition built the link.
type Archetype struct {
	Name string
}
