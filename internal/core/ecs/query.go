package ecs

import "fmt"

// Get returns the trait stored under k.
func Get[T any](l *Link, k *Key[T]) (*T, bool) {
	v, ok := l.traits[k.id].(*T)
	return v, ok
}

// Must returns the trait stored under k and panics when it is absent.
func Must[T any](l *Link, k *Key[T]) *T {
	v, ok := Get(l, k)
	if !ok {
		panic(fmt.Errorf("%w: %s on link %s", ErrMissingTrait, k.name, l.id))
	}
	return v
}

// Get2 returns two traits positionally; absent ones are nil.
func Get2[A, B any](l *Link, ka *Key[A], kb *Key[B]) (*A, *B) {
	a, _ := Get(l, ka)
	b, _ := Get(l, kb)
	return a, b
}

// Get3 returns three traits positionally; absent ones are nil.
func Get3[A, B, C any](l *Link, ka *Key[A], kb *Key[B], kc *Key[C]) (*A, *B, *C) {
	a, _ := Get(l, ka)
	b, _ := Get(l, kb)
	c, _ := Get(l, kc)
	return a, b, c
}

// Each2 calls fn for every link in links carrying both traits.
func Each2[A, B any](links []*Link, ka *Key[A], kb *Key[B], fn func(*Link, *A, *B)) {
	for _, l := range links {
		a, b := Get2(l, ka, kb)
		if a != nil && b != nil {
			fn(l, a, b)
		}
	}
}
