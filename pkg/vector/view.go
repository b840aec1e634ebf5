package vector

import "iter"

// View aliases a backing vector without copying it.
// Every access is forwarded to the backing vector at the same index,
// so the size of a View always matches the current size of its backing vector,
// and writing through a View writes the backing element.
type View[T any] struct {
	base Vector[T]
}

func NewView[T any](base Vector[T]) *View[T] {
	return &View[T]{base: base}
}

func (v *View[T]) Get(index int) *T { return v.base.Get(index) }
func (v *View[T]) GetFront() *T     { return v.base.GetFront() }
func (v *View[T]) GetBack() *T      { return v.base.GetBack() }
func (v *View[T]) GetSize() int     { return v.base.GetSize() }

func (v *View[T]) At(index int) *T            { return At[T](v, index) }
func (v *View[T]) Front() *T                  { return Front[T](v) }
func (v *View[T]) Back() *T                   { return Back[T](v) }
func (v *View[T]) Len() int                   { return v.GetSize() }
func (v *View[T]) IsEmpty() bool              { return IsEmpty(v) }
func (v *View[T]) Lookup(index int) (T, bool) { return Lookup[T](v, index) }
func (v *View[T]) Begin() Iterator[T]         { return Begin[T](v) }
func (v *View[T]) End() Iterator[T]           { return End[T](v) }
func (v *View[T]) CBegin() ConstIterator[T]   { return ConstBegin(AsConst[T](v)) }
func (v *View[T]) CEnd() ConstIterator[T]     { return ConstEnd(AsConst[T](v)) }
func (v *View[T]) All() iter.Seq2[int, *T]    { return All[T](v) }
func (v *View[T]) Values() iter.Seq[*T]       { return Values[T](v) }
func (v *View[T]) ToSlice() []T               { return ToSlice[T](v) }

// ConstView is the read-only View.
// To make a read-only view of a mutable vector, use NewConstView(AsConst(v)).
type ConstView[T any] struct {
	base ConstVector[T]
}

func NewConstView[T any](base ConstVector[T]) *ConstView[T] {
	return &ConstView[T]{base: base}
}

func (v *ConstView[T]) Get(index int) T { return v.base.Get(index) }
func (v *ConstView[T]) GetFront() T     { return v.base.GetFront() }
func (v *ConstView[T]) GetBack() T      { return v.base.GetBack() }
func (v *ConstView[T]) GetSize() int    { return v.base.GetSize() }

func (v *ConstView[T]) At(index int) T             { return ConstAt[T](v, index) }
func (v *ConstView[T]) Front() T                   { return ConstFront[T](v) }
func (v *ConstView[T]) Back() T                    { return ConstBack[T](v) }
func (v *ConstView[T]) Len() int                   { return v.GetSize() }
func (v *ConstView[T]) IsEmpty() bool              { return IsEmpty(v) }
func (v *ConstView[T]) Lookup(index int) (T, bool) { return ConstLookup[T](v, index) }
func (v *ConstView[T]) Begin() ConstIterator[T]    { return ConstBegin[T](v) }
func (v *ConstView[T]) End() ConstIterator[T]      { return ConstEnd[T](v) }
func (v *ConstView[T]) All() iter.Seq2[int, T]     { return ConstAll[T](v) }
func (v *ConstView[T]) Values() iter.Seq[T]        { return ConstValues[T](v) }
func (v *ConstView[T]) ToSlice() []T               { return ConstToSlice[T](v) }
