package vector

import (
	"iter"
	"slices"
)

// Storage is a vector that owns its elements.
//
// Every element is allocated on its own, so pointers returned by Get stay valid across Append.
// A Storage must not be copied after first use, use Clone to duplicate the elements, or Move to transfer them.
type Storage[T any] struct {
	_ noCopy

	objects []*T
}

// Cloner is implemented by element types that need more than a value copy to be duplicated.
type Cloner[T any] interface {
	Clone() T
}

// MakeStorage returns a Storage that owns a copy of every given value.
func MakeStorage[T any](vs ...T) *Storage[T] {
	var s Storage[T]
	s.Append(vs...)
	return &s
}

func (s *Storage[T]) Get(index int) *T {
	checkIndex(s, index)
	return s.objects[index]
}

func (s *Storage[T]) GetFront() *T {
	checkNotEmpty(s, "front")
	return s.objects[0]
}

func (s *Storage[T]) GetBack() *T {
	checkNotEmpty(s, "back")
	return s.objects[len(s.objects)-1]
}

func (s *Storage[T]) GetSize() int {
	if s == nil {
		return 0
	}
	return len(s.objects)
}

// Append takes ownership of a copy of each value.
func (s *Storage[T]) Append(vs ...T) {
	for _, v := range vs {
		s.objects = append(s.objects, own(v))
	}
}

// Emplace inserts v right before the position of the given iterator.
// Every iterator, View and Slice issued before the call should be considered invalid afterwards.
func (s *Storage[T]) Emplace(position Iterator[T], v T) error {
	if !sameVector(position.vec, s) {
		return ErrIteratorMismatch.F("the iterator doesn't belong to this storage")
	}
	if position.pos < 0 || len(s.objects) < position.pos {
		return ErrOutOfBounds.F("emplace position %d is out of range [0, %d]", position.pos, len(s.objects))
	}
	s.objects = slices.Insert(s.objects, position.pos, own(v))
	return nil
}

// Clear releases every owned element.
func (s *Storage[T]) Clear() {
	clear(s.objects)
	s.objects = nil
}

// Clone returns a new Storage with a duplicate of every element, in the original order.
// Elements implementing Cloner[T] are duplicated with their Clone method.
func (s *Storage[T]) Clone() *Storage[T] {
	out := &Storage[T]{objects: make([]*T, 0, len(s.objects))}
	for _, ptr := range s.objects {
		var v = *ptr
		if c, ok := any(v).(Cloner[T]); ok {
			v = c.Clone()
		}
		out.objects = append(out.objects, own(v))
	}
	return out
}

// Move transfers the owned elements into a new Storage and leaves s empty.
func (s *Storage[T]) Move() *Storage[T] {
	out := &Storage[T]{objects: s.objects}
	s.objects = nil
	return out
}

func (s *Storage[T]) At(index int) *T            { return At[T](s, index) }
func (s *Storage[T]) Front() *T                  { return Front[T](s) }
func (s *Storage[T]) Back() *T                   { return Back[T](s) }
func (s *Storage[T]) Len() int                   { return s.GetSize() }
func (s *Storage[T]) IsEmpty() bool              { return IsEmpty(s) }
func (s *Storage[T]) Lookup(index int) (T, bool) { return Lookup[T](s, index) }
func (s *Storage[T]) Begin() Iterator[T]         { return Begin[T](s) }
func (s *Storage[T]) End() Iterator[T]           { return End[T](s) }
func (s *Storage[T]) CBegin() ConstIterator[T]   { return ConstBegin(AsConst[T](s)) }
func (s *Storage[T]) CEnd() ConstIterator[T]     { return ConstEnd(AsConst[T](s)) }
func (s *Storage[T]) All() iter.Seq2[int, *T]    { return All[T](s) }
func (s *Storage[T]) Values() iter.Seq[*T]       { return Values[T](s) }
func (s *Storage[T]) ToSlice() []T               { return ToSlice[T](s) }

func own[T any](v T) *T {
	ptr := new(T)
	*ptr = v
	return ptr
}

// noCopy may be embedded into structs which must not be copied after the first use.
// See https://golang.org/issues/8005#issuecomment-190753527 for details.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
