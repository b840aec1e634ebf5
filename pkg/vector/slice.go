package vector

import (
	"iter"

	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

// Slice exposes the [start, end) range of a backing vector, taking every stride-th element.
// Index i of the Slice maps to index start+i*stride of the backing vector.
//
// A Slice shares the storage of its backing vector.
// After a structural change of the backing vector (Emplace, Clear...), the Slice should be considered invalid.
// Accessing an element that is no longer inside the backing vector panics with ErrOutOfBounds.
type Slice[T any] struct {
	base Vector[T]
	bounds
}

// NewSlice makes a Slice over base.
// It returns an ErrInvalidSlice error when start, end or the stride is not compatible with base.
func NewSlice[T any](base Vector[T], start, end int, opts ...SliceOption) (*Slice[T], error) {
	b, err := makeBounds(base, start, end, opts)
	if err != nil {
		return nil, err
	}
	return &Slice[T]{base: base, bounds: b}, nil
}

func (s *Slice[T]) Get(index int) *T {
	return s.base.Get(s.backingIndex(s.base, index))
}

func (s *Slice[T]) GetFront() *T {
	checkNotEmpty(s, "front")
	return s.Get(0)
}

func (s *Slice[T]) GetBack() *T {
	checkNotEmpty(s, "back")
	return s.Get(s.GetSize() - 1)
}

func (s *Slice[T]) At(index int) *T            { return At[T](s, index) }
func (s *Slice[T]) Front() *T                  { return Front[T](s) }
func (s *Slice[T]) Back() *T                   { return Back[T](s) }
func (s *Slice[T]) Len() int                   { return s.GetSize() }
func (s *Slice[T]) IsEmpty() bool              { return IsEmpty(s) }
func (s *Slice[T]) Lookup(index int) (T, bool) { return Lookup[T](s, index) }
func (s *Slice[T]) Begin() Iterator[T]         { return Begin[T](s) }
func (s *Slice[T]) End() Iterator[T]           { return End[T](s) }
func (s *Slice[T]) CBegin() ConstIterator[T]   { return ConstBegin(AsConst[T](s)) }
func (s *Slice[T]) CEnd() ConstIterator[T]     { return ConstEnd(AsConst[T](s)) }
func (s *Slice[T]) All() iter.Seq2[int, *T]    { return All[T](s) }
func (s *Slice[T]) Values() iter.Seq[*T]       { return Values[T](s) }
func (s *Slice[T]) ToSlice() []T               { return ToSlice[T](s) }

// ConstSlice is the read-only Slice.
type ConstSlice[T any] struct {
	base ConstVector[T]
	bounds
}

func NewConstSlice[T any](base ConstVector[T], start, end int, opts ...SliceOption) (*ConstSlice[T], error) {
	b, err := makeBounds(base, start, end, opts)
	if err != nil {
		return nil, err
	}
	return &ConstSlice[T]{base: base, bounds: b}, nil
}

// ConstSliceOf makes a read-only slice over a mutable vector.
func ConstSliceOf[T any](base Vector[T], start, end int, opts ...SliceOption) (*ConstSlice[T], error) {
	return NewConstSlice(AsConst(base), start, end, opts...)
}

func (s *ConstSlice[T]) Get(index int) T {
	return s.base.Get(s.backingIndex(s.base, index))
}

func (s *ConstSlice[T]) GetFront() T {
	checkNotEmpty(s, "front")
	return s.Get(0)
}

func (s *ConstSlice[T]) GetBack() T {
	checkNotEmpty(s, "back")
	return s.Get(s.GetSize() - 1)
}

func (s *ConstSlice[T]) At(index int) T             { return ConstAt[T](s, index) }
func (s *ConstSlice[T]) Front() T                   { return ConstFront[T](s) }
func (s *ConstSlice[T]) Back() T                    { return ConstBack[T](s) }
func (s *ConstSlice[T]) Len() int                   { return s.GetSize() }
func (s *ConstSlice[T]) IsEmpty() bool              { return IsEmpty(s) }
func (s *ConstSlice[T]) Lookup(index int) (T, bool) { return ConstLookup[T](s, index) }
func (s *ConstSlice[T]) Begin() ConstIterator[T]    { return ConstBegin[T](s) }
func (s *ConstSlice[T]) End() ConstIterator[T]      { return ConstEnd[T](s) }
func (s *ConstSlice[T]) All() iter.Seq2[int, T]     { return ConstAll[T](s) }
func (s *ConstSlice[T]) Values() iter.Seq[T]        { return ConstValues[T](s) }
func (s *ConstSlice[T]) ToSlice() []T               { return ConstToSlice[T](s) }

type SliceOption interface {
	option.Option[SliceConfig]
}

type SliceConfig struct {
	// Stride is the step between two selected elements of the backing vector.
	//
	// Default: 1
	Stride int
}

var _ SliceOption = SliceConfig{}

func (c *SliceConfig) Init() { c.Stride = 1 }

func (c SliceConfig) Configure(t *SliceConfig) {
	t.Stride = zerokit.Coalesce(c.Stride, t.Stride)
}

// Stride sets the step between two selected elements.
func Stride(n int) SliceOption {
	return option.Func[SliceConfig](func(c *SliceConfig) { c.Stride = n })
}

type bounds struct {
	start  int
	end    int
	stride int
}

func makeBounds(base Sizer, start, end int, opts []SliceOption) (bounds, error) {
	c := option.ToConfig[SliceConfig](opts)
	size := base.GetSize()
	switch {
	case start < 0:
		return bounds{}, ErrInvalidSlice.F("start (%d) must not be negative", start)
	case end < start:
		return bounds{}, ErrInvalidSlice.F("start (%d) must not be greater than end (%d)", start, end)
	case size < end:
		return bounds{}, ErrInvalidSlice.F("end (%d) must not be greater than the backing vector's size (%d)", end, size)
	case c.Stride < 1:
		return bounds{}, ErrInvalidSlice.F("stride (%d) must be at least 1", c.Stride)
	}
	return bounds{start: start, end: end, stride: c.Stride}, nil
}

// Bounds returns the configuration of the slice.
func (b bounds) Bounds() (start, end, stride int) {
	return b.start, b.end, b.stride
}

// GetSize is the number of selected elements: ceil((end-start)/stride).
func (b bounds) GetSize() int {
	if d := b.end - b.start; d > 0 {
		return (d-1)/b.stride + 1
	}
	return 0
}

func (b bounds) backingIndex(base Sizer, index int) int {
	checkIndex(b, index)
	bi := b.start + index*b.stride
	if size := base.GetSize(); size <= bi {
		panic(ErrOutOfBounds.F("slice index %d maps to %d, which is no longer inside the backing vector of size %d", index, bi, size))
	}
	return bi
}
