package vector

import (
	"iter"
	"slices"
)

// References is a vector of pointers to elements owned by someone else.
// It never owns its elements, keeping the referents alive and valid is the caller's job.
type References[T any] struct {
	refs []*T
}

// MakeReferences returns a References that points to the given elements.
func MakeReferences[T any](refs ...*T) *References[T] {
	var r References[T]
	r.Append(refs...)
	return &r
}

func (r *References[T]) Get(index int) *T {
	checkIndex(r, index)
	return r.refs[index]
}

func (r *References[T]) GetFront() *T {
	checkNotEmpty(r, "front")
	return r.refs[0]
}

func (r *References[T]) GetBack() *T {
	checkNotEmpty(r, "back")
	return r.refs[len(r.refs)-1]
}

func (r *References[T]) GetSize() int {
	if r == nil {
		return 0
	}
	return len(r.refs)
}

// Append adds references to the end of the vector.
// Appending a nil reference panics with ErrNilReference.
func (r *References[T]) Append(refs ...*T) {
	for i, ref := range refs {
		if ref == nil {
			panic(ErrNilReference.F("nil reference at argument %d", i))
		}
	}
	r.refs = append(r.refs, refs...)
}

// Remove drops the first reference that points to the same element as elem.
// The elements' values are not compared, only their identity.
// It reports whether a reference was removed.
func (r *References[T]) Remove(elem *T) bool {
	index := r.indexOf(elem)
	if index < 0 {
		return false
	}
	r.refs = slices.Delete(r.refs, index, index+1)
	return true
}

// Contains reports whether elem is referenced by identity.
func (r *References[T]) Contains(elem *T) bool {
	return 0 <= r.indexOf(elem)
}

func (r *References[T]) indexOf(elem *T) int {
	if elem == nil {
		return -1
	}
	return slices.Index(r.refs, elem)
}

// Clear drops every reference, the referents are not affected.
func (r *References[T]) Clear() {
	clear(r.refs)
	r.refs = nil
}

// Clone returns a References that points to the same elements.
func (r *References[T]) Clone() *References[T] {
	return &References[T]{refs: slices.Clone(r.refs)}
}

// Move transfers the references into a new References and leaves r empty.
func (r *References[T]) Move() *References[T] {
	out := &References[T]{refs: r.refs}
	r.refs = nil
	return out
}

func (r *References[T]) At(index int) *T            { return At[T](r, index) }
func (r *References[T]) Front() *T                  { return Front[T](r) }
func (r *References[T]) Back() *T                   { return Back[T](r) }
func (r *References[T]) Len() int                   { return r.GetSize() }
func (r *References[T]) IsEmpty() bool              { return IsEmpty(r) }
func (r *References[T]) Lookup(index int) (T, bool) { return Lookup[T](r, index) }
func (r *References[T]) Begin() Iterator[T]         { return Begin[T](r) }
func (r *References[T]) End() Iterator[T]           { return End[T](r) }
func (r *References[T]) CBegin() ConstIterator[T]   { return ConstBegin(AsConst[T](r)) }
func (r *References[T]) CEnd() ConstIterator[T]     { return ConstEnd(AsConst[T](r)) }
func (r *References[T]) All() iter.Seq2[int, *T]    { return All[T](r) }
func (r *References[T]) Values() iter.Seq[*T]       { return Values[T](r) }
func (r *References[T]) ToSlice() []T               { return ToSlice[T](r) }
