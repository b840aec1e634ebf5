// Package vectorkit holds algorithm helpers that work with any vector.Vector or vector.ConstVector.
// Every helper visits the elements in sequence order, and each element at most once.
package vectorkit

import "go.llib.dev/containers/pkg/vector"

// Find returns an iterator to the first element equal to value,
// or the end iterator when no such element exists.
func Find[T comparable](v vector.ConstVector[T], value T) vector.ConstIterator[T] {
	return FindIf(v, func(e T) bool { return e == value })
}

// FindIf returns an iterator to the first element that satisfies the predicate,
// or the end iterator when none does.
func FindIf[T any](v vector.ConstVector[T], pred func(T) bool) vector.ConstIterator[T] {
	it := vector.ConstBegin(v)
	for ; it.Pos() < vector.Len(v); it.Inc() {
		if pred(it.Value()) {
			break
		}
	}
	return it
}

func Has[T comparable](v vector.ConstVector[T], value T) bool {
	return Find(v, value).Pos() < vector.Len(v)
}

func HasIf[T any](v vector.ConstVector[T], pred func(T) bool) bool {
	return FindIf(v, pred).Pos() < vector.Len(v)
}

// ForEach calls op with a pointer to every element, so op may mutate them in place.
func ForEach[T any](v vector.Vector[T], op func(*T)) {
	for _, ptr := range vector.All(v) {
		op(ptr)
	}
}

func ForEachConst[T any](v vector.ConstVector[T], op func(T)) {
	for _, e := range vector.ConstAll(v) {
		op(e)
	}
}

// ForEachIf calls op with every element that satisfies the predicate.
func ForEachIf[T any](v vector.Vector[T], pred func(T) bool, op func(*T)) {
	for _, ptr := range vector.All(v) {
		if pred(*ptr) {
			op(ptr)
		}
	}
}

func ForEachIfConst[T any](v vector.ConstVector[T], pred func(T) bool, op func(T)) {
	for _, e := range vector.ConstAll(v) {
		if pred(e) {
			op(e)
		}
	}
}

// ForEachIfRange walks the [begin, end) range and hands every iterator
// that points to an element satisfying the predicate to op.
// The walk also stops at the end of the vector, even when end is not comparable with begin.
func ForEachIfRange[T any](begin, end vector.Iterator[T], pred func(T) bool, op func(vector.Iterator[T])) {
	for it := begin; it.NotEqual(end) && it.Pos() < vector.Len(it.Vector()); it.Inc() {
		if pred(*it.Value()) {
			op(it)
		}
	}
}
