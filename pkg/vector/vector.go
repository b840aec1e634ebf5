// Package vector implements indexed sequence containers that share a single access contract.
//
// A type becomes a vector by implementing four primitives: Get, GetFront, GetBack and GetSize.
// Indexing, front/back access, size, emptiness and iteration are all derived from these,
// so Storage, References, View and Slice behave the same way from the consumer's point of view.
//
// Views and slices are aliases and not copies.
// They are only valid while the structure of their backing vector doesn't change.
package vector

import (
	"iter"
	"reflect"
)

// Vector is the mutable sequence contract.
// Get, GetFront and GetBack return a pointer to the element storage,
// so writing through the pointer mutates the element in place.
type Vector[T any] interface {
	Get(index int) *T
	GetFront() *T
	GetBack() *T
	Sizer
}

// ConstVector is the read-only sequence contract.
type ConstVector[T any] interface {
	Get(index int) T
	GetFront() T
	GetBack() T
	Sizer
}

// Sizer is implemented by every vector, GetSize is its number of elements.
type Sizer interface {
	GetSize() int
}

// At returns the element at the given index.
// It panics with ErrOutOfBounds when index is not within [0, Len(v)).
func At[T any](v Vector[T], index int) *T {
	checkIndex(v, index)
	return v.Get(index)
}

func ConstAt[T any](v ConstVector[T], index int) T {
	checkIndex(v, index)
	return v.Get(index)
}

// Front returns the first element of a non-empty vector.
func Front[T any](v Vector[T]) *T {
	checkNotEmpty(v, "front")
	return v.GetFront()
}

func ConstFront[T any](v ConstVector[T]) T {
	checkNotEmpty(v, "front")
	return v.GetFront()
}

// Back returns the last element of a non-empty vector.
func Back[T any](v Vector[T]) *T {
	checkNotEmpty(v, "back")
	return v.GetBack()
}

func ConstBack[T any](v ConstVector[T]) T {
	checkNotEmpty(v, "back")
	return v.GetBack()
}

func Len(v Sizer) int {
	return v.GetSize()
}

func IsEmpty(v Sizer) bool {
	return v.GetSize() == 0
}

// Lookup is the checked form of At.
func Lookup[T any](v Vector[T], index int) (T, bool) {
	if index < 0 || v.GetSize() <= index {
		var zero T
		return zero, false
	}
	return *v.Get(index), true
}

func ConstLookup[T any](v ConstVector[T], index int) (T, bool) {
	if index < 0 || v.GetSize() <= index {
		var zero T
		return zero, false
	}
	return v.Get(index), true
}

// Begin returns an iterator that points to the first element.
func Begin[T any](v Vector[T]) Iterator[T] {
	return NewIterator(v, 0)
}

// End returns the one-past-the-last sentinel iterator.
func End[T any](v Vector[T]) Iterator[T] {
	return NewIterator(v, v.GetSize())
}

func ConstBegin[T any](v ConstVector[T]) ConstIterator[T] {
	return NewConstIterator(v, 0)
}

func ConstEnd[T any](v ConstVector[T]) ConstIterator[T] {
	return NewConstIterator(v, v.GetSize())
}

// All iterates over the index and element pointer pairs in sequence order.
// The size is evaluated before every step.
func All[T any](v Vector[T]) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.GetSize(); i++ {
			if !yield(i, v.Get(i)) {
				return
			}
		}
	}
}

func ConstAll[T any](v ConstVector[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.GetSize(); i++ {
			if !yield(i, v.Get(i)) {
				return
			}
		}
	}
}

func Values[T any](v Vector[T]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, ptr := range All(v) {
			if !yield(ptr) {
				return
			}
		}
	}
}

func ConstValues[T any](v ConstVector[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range ConstAll(v) {
			if !yield(e) {
				return
			}
		}
	}
}

// ToSlice copies the elements of the vector into a new slice.
func ToSlice[T any](v Vector[T]) []T {
	out := make([]T, 0, v.GetSize())
	for _, ptr := range All(v) {
		out = append(out, *ptr)
	}
	return out
}

func ConstToSlice[T any](v ConstVector[T]) []T {
	out := make([]T, 0, v.GetSize())
	for _, e := range ConstAll(v) {
		out = append(out, e)
	}
	return out
}

// AsConst exposes a mutable vector through the read-only contract.
// Adapters made from the same vector are the same instance from an iterator's point of view.
func AsConst[T any](v Vector[T]) ConstVector[T] {
	return constAdapter[T]{v: v}
}

type constAdapter[T any] struct{ v Vector[T] }

func (a constAdapter[T]) Get(index int) T { return *a.v.Get(index) }
func (a constAdapter[T]) GetFront() T     { return *a.v.GetFront() }
func (a constAdapter[T]) GetBack() T      { return *a.v.GetBack() }
func (a constAdapter[T]) GetSize() int    { return a.v.GetSize() }
func (a constAdapter[T]) identity() any   { return a.v }

type aliased interface{ identity() any }

func checkIndex(v Sizer, index int) {
	if size := v.GetSize(); index < 0 || size <= index {
		panic(outOfBounds(index, size))
	}
}

func checkNotEmpty(v Sizer, what string) {
	if v.GetSize() == 0 {
		panic(ErrOutOfBounds.F("%s of an empty vector", what))
	}
}

// sameVector reports whether a and b are the identical vector instance.
func sameVector(a, b any) (same bool) {
	for {
		al, ok := a.(aliased)
		if !ok {
			break
		}
		a = al.identity()
	}
	for {
		al, ok := b.(aliased)
		if !ok {
			break
		}
		b = al.identity()
	}
	if a == nil || b == nil {
		return false
	}
	typ := reflect.TypeOf(a)
	if typ != reflect.TypeOf(b) {
		return false
	}
	switch typ.Kind() {
	case reflect.Slice:
		// value typed slice vectors are the same when they share the backing array and the length
		av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	case reflect.Map, reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !typ.Comparable() {
		return false
	}
	// a struct that holds an incomparable dynamic value still panics on ==
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
