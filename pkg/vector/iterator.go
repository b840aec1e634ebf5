package vector

// Iterator is a random access cursor over a Vector.
//
// Inc and Dec saturate at the vector's bounds, so a loop that keeps stepping never overshoots.
// Advance, Retreat, Plus and Minus are not saturated,
// keeping the position in range is the caller's responsibility when they are used.
//
// Two iterators are only comparable when they were issued by the identical vector instance
// and the vector's size hasn't changed since they were issued.
// Non comparable iterators are never equal and never ordered.
// A structural change that keeps the size, like a reallocation, is not detected.
type Iterator[T any] struct {
	vec  Vector[T]
	pos  int
	size int
}

// NewIterator returns an iterator at pos, where pos must be within [0, Len(v)].
func NewIterator[T any](v Vector[T], pos int) Iterator[T] {
	size := v.GetSize()
	if pos < 0 || size < pos {
		panic(ErrOutOfBounds.F("iterator position %d is out of range [0, %d]", pos, size))
	}
	return Iterator[T]{vec: v, pos: pos, size: size}
}

func (it Iterator[T]) Pos() int { return it.pos }

// Vector returns the vector the iterator walks.
func (it Iterator[T]) Vector() Vector[T] { return it.vec }

// Inc is the prefix increment. Incrementing the end iterator is a no-op.
func (it *Iterator[T]) Inc() *Iterator[T] {
	if it.pos < it.vec.GetSize() {
		it.pos++
	}
	return it
}

// PostInc increments the iterator and returns its previous state.
func (it *Iterator[T]) PostInc() Iterator[T] {
	prev := *it
	it.Inc()
	return prev
}

// Dec is the prefix decrement. Decrementing the begin iterator is a no-op.
func (it *Iterator[T]) Dec() *Iterator[T] {
	if 0 < it.pos {
		it.pos--
	}
	return it
}

func (it *Iterator[T]) PostDec() Iterator[T] {
	prev := *it
	it.Dec()
	return prev
}

// Advance moves the iterator by n positions without any bound check.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.pos += n
	return it
}

// Retreat moves the iterator back by n positions without any bound check.
func (it *Iterator[T]) Retreat(n int) *Iterator[T] {
	it.pos -= n
	return it
}

func (it Iterator[T]) Plus(n int) Iterator[T] {
	it.pos += n
	return it
}

func (it Iterator[T]) Minus(n int) Iterator[T] {
	it.pos -= n
	return it
}

// Distance returns it - from, which is only meaningful for comparable iterators.
func (it Iterator[T]) Distance(from Iterator[T]) int {
	return it.pos - from.pos
}

// Value dereferences the iterator.
// Dereferencing the end iterator, or an iterator moved out of range, panics with ErrOutOfBounds.
func (it Iterator[T]) Value() *T {
	return At(it.vec, it.pos)
}

func (it Iterator[T]) Comparable(oth Iterator[T]) bool {
	return isComparable(it.vec, oth.vec, it.size, oth.size)
}

func (it Iterator[T]) Equal(oth Iterator[T]) bool {
	return it.Comparable(oth) && it.pos == oth.pos
}

func (it Iterator[T]) NotEqual(oth Iterator[T]) bool {
	return !it.Equal(oth)
}

func (it Iterator[T]) Less(oth Iterator[T]) bool {
	return it.Comparable(oth) && it.pos < oth.pos
}

func (it Iterator[T]) LessOrEqual(oth Iterator[T]) bool {
	return it.Comparable(oth) && it.pos <= oth.pos
}

func (it Iterator[T]) Greater(oth Iterator[T]) bool {
	return it.Comparable(oth) && it.pos > oth.pos
}

func (it Iterator[T]) GreaterOrEqual(oth Iterator[T]) bool {
	return it.Comparable(oth) && it.pos >= oth.pos
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	vec  ConstVector[T]
	pos  int
	size int
}

func NewConstIterator[T any](v ConstVector[T], pos int) ConstIterator[T] {
	size := v.GetSize()
	if pos < 0 || size < pos {
		panic(ErrOutOfBounds.F("iterator position %d is out of range [0, %d]", pos, size))
	}
	return ConstIterator[T]{vec: v, pos: pos, size: size}
}

func (it ConstIterator[T]) Pos() int { return it.pos }

func (it ConstIterator[T]) Vector() ConstVector[T] { return it.vec }

func (it *ConstIterator[T]) Inc() *ConstIterator[T] {
	if it.pos < it.vec.GetSize() {
		it.pos++
	}
	return it
}

func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	prev := *it
	it.Inc()
	return prev
}

func (it *ConstIterator[T]) Dec() *ConstIterator[T] {
	if 0 < it.pos {
		it.pos--
	}
	return it
}

func (it *ConstIterator[T]) PostDec() ConstIterator[T] {
	prev := *it
	it.Dec()
	return prev
}

func (it *ConstIterator[T]) Advance(n int) *ConstIterator[T] {
	it.pos += n
	return it
}

func (it *ConstIterator[T]) Retreat(n int) *ConstIterator[T] {
	it.pos -= n
	return it
}

func (it ConstIterator[T]) Plus(n int) ConstIterator[T] {
	it.pos += n
	return it
}

func (it ConstIterator[T]) Minus(n int) ConstIterator[T] {
	it.pos -= n
	return it
}

func (it ConstIterator[T]) Distance(from ConstIterator[T]) int {
	return it.pos - from.pos
}

func (it ConstIterator[T]) Value() T {
	return ConstAt(it.vec, it.pos)
}

func (it ConstIterator[T]) Comparable(oth ConstIterator[T]) bool {
	return isComparable(it.vec, oth.vec, it.size, oth.size)
}

func (it ConstIterator[T]) Equal(oth ConstIterator[T]) bool {
	return it.Comparable(oth) && it.pos == oth.pos
}

func (it ConstIterator[T]) NotEqual(oth ConstIterator[T]) bool {
	return !it.Equal(oth)
}

func (it ConstIterator[T]) Less(oth ConstIterator[T]) bool {
	return it.Comparable(oth) && it.pos < oth.pos
}

func (it ConstIterator[T]) LessOrEqual(oth ConstIterator[T]) bool {
	return it.Comparable(oth) && it.pos <= oth.pos
}

func (it ConstIterator[T]) Greater(oth ConstIterator[T]) bool {
	return it.Comparable(oth) && it.pos > oth.pos
}

func (it ConstIterator[T]) GreaterOrEqual(oth ConstIterator[T]) bool {
	return it.Comparable(oth) && it.pos >= oth.pos
}

func isComparable(a, b Sizer, aSize, bSize int) bool {
	if aSize != bSize || !sameVector(a, b) {
		return false
	}
	return a.GetSize() == aSize
}
