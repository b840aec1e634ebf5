package vector_test

import (
	"testing"

	"go.llib.dev/containers/pkg/vector"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func TestIterator(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
	})
	storage := let.Var(s, func(t *testcase.T) *vector.Storage[int] {
		return vector.MakeStorage(values.Get(t)...)
	})

	s.Test("NewIterator rejects a position outside of [0, size]", func(t *testcase.T) {
		size := len(values.Get(t))
		assert.Panic(t, func() { vector.NewIterator[int](storage.Get(t), -1) })
		assert.Panic(t, func() { vector.NewIterator[int](storage.Get(t), size+1) })
		assert.NotPanic(t, func() { vector.NewIterator[int](storage.Get(t), size) })
	})

	s.Describe("#Inc", func(s *testcase.Spec) {
		s.Test("incrementing the end iterator is a no-op", func(t *testcase.T) {
			end := storage.Get(t).End()
			end.Inc().Inc()
			assert.True(t, end.Equal(storage.Get(t).End()))
		})

		s.Test("the returned iterator is the incremented one", func(t *testcase.T) {
			it := storage.Get(t).Begin()
			assert.Equal(t, 1, it.Inc().Pos())
			assert.Equal(t, 1, it.Pos())
		})

		s.Test("post increment returns the previous state", func(t *testcase.T) {
			it := storage.Get(t).Begin()
			prev := it.PostInc()
			assert.Equal(t, 0, prev.Pos())
			assert.Equal(t, 1, it.Pos())
			assert.Equal(t, values.Get(t)[0], *prev.Value())
		})
	})

	s.Describe("#Dec", func(s *testcase.Spec) {
		s.Test("decrementing the begin iterator is a no-op", func(t *testcase.T) {
			begin := storage.Get(t).Begin()
			begin.Dec()
			assert.Equal(t, 0, begin.Pos())
			assert.True(t, begin.Equal(storage.Get(t).Begin()))
		})

		s.Test("the last element is reachable by decrementing the end", func(t *testcase.T) {
			it := storage.Get(t).End()
			last := it.PostDec()
			assert.Equal(t, len(values.Get(t)), last.Pos())
			assert.Equal(t, values.Get(t)[len(values.Get(t))-1], *it.Value())
		})
	})

	s.Describe("offsets", func(s *testcase.Spec) {
		s.Test("offsets are not clamped", func(t *testcase.T) {
			n := len(values.Get(t))
			it := storage.Get(t).Begin().Plus(n + 3)
			assert.Equal(t, n+3, it.Pos())
			assert.Equal(t, -2, storage.Get(t).Begin().Minus(2).Pos())

			it.Retreat(n + 3)
			assert.True(t, it.Equal(storage.Get(t).Begin()))
			it.Advance(n)
			assert.True(t, it.Equal(storage.Get(t).End()))
		})

		s.Test("dereferencing an iterator moved out of range panics", func(t *testcase.T) {
			it := storage.Get(t).End().Plus(1)
			out := assert.Panic(t, func() { it.Value() })
			assert.ErrorIs(t, out.(error), vector.ErrOutOfBounds)
			assert.Panic(t, func() { storage.Get(t).End().Value() })
		})

		s.Test("distance", func(t *testcase.T) {
			begin, end := storage.Get(t).Begin(), storage.Get(t).End()
			assert.Equal(t, len(values.Get(t)), end.Distance(begin))
			assert.Equal(t, -len(values.Get(t)), begin.Distance(end))
		})
	})

	s.Describe("comparison", func(s *testcase.Spec) {
		s.Test("iterators are ordered by their position", func(t *testcase.T) {
			begin, end := storage.Get(t).Begin(), storage.Get(t).End()
			assert.True(t, begin.Less(end))
			assert.True(t, end.Greater(begin))
			assert.False(t, begin.Greater(end))
			assert.True(t, begin.NotEqual(end))
		})

		s.Test("iterators of distinct vectors with equal content are not comparable", func(t *testcase.T) {
			oth := vector.MakeStorage(values.Get(t)...)
			begin := storage.Get(t).Begin()
			assert.False(t, begin.Comparable(oth.Begin()))
			assert.False(t, begin.Equal(oth.Begin()))
			assert.True(t, begin.NotEqual(oth.Begin()))
			assert.False(t, begin.LessOrEqual(oth.End()))
			assert.False(t, begin.GreaterOrEqual(oth.Begin()))
		})

		s.Test("iterators issued before a size change are no longer comparable", func(t *testcase.T) {
			begin := storage.Get(t).Begin()
			storage.Get(t).Append(t.Random.Int())
			assert.False(t, begin.Comparable(storage.Get(t).Begin()))
			assert.False(t, begin.Comparable(begin))
			assert.True(t, storage.Get(t).Begin().Comparable(storage.Get(t).End()))
		})

		s.Test("const iterators of adapters over the same vector are comparable", func(t *testcase.T) {
			a := vector.ConstBegin(vector.AsConst[int](storage.Get(t)))
			b := storage.Get(t).CEnd()
			assert.True(t, a.Comparable(b))
			assert.True(t, a.Less(b))
		})
	})

	s.Describe("ConstIterator", func(s *testcase.Spec) {
		s.Test("iterators of the same value typed vector are comparable", func(t *testcase.T) {
			v := intSeq(values.Get(t))
			begin, end := vector.ConstBegin[int](v), vector.ConstEnd[int](v)
			assert.True(t, begin.Comparable(end))
			assert.True(t, end.Equal(vector.ConstEnd[int](v)))
			assert.True(t, begin.Plus(len(v)).Equal(end))

			oth := intSeq(append([]int(nil), values.Get(t)...))
			assert.False(t, begin.Comparable(vector.ConstBegin[int](oth)))
		})


		s.Test("walks the vector by value", func(t *testcase.T) {
			var got []int
			for it, end := storage.Get(t).CBegin(), storage.Get(t).CEnd(); it.NotEqual(end); it.Inc() {
				got = append(got, it.Value())
			}
			assert.Equal(t, values.Get(t), got)
		})

		s.Test("saturates at both ends", func(t *testcase.T) {
			end := storage.Get(t).CEnd()
			end.Inc()
			assert.Equal(t, len(values.Get(t)), end.Pos())
			begin := storage.Get(t).CBegin()
			begin.Dec()
			assert.Equal(t, 0, begin.Pos())
		})
	})
}

type intSeq []int

func (s intSeq) Get(i int) int { return s[i] }
func (s intSeq) GetFront() int { return s[0] }
func (s intSeq) GetBack() int  { return s[len(s)-1] }
func (s intSeq) GetSize() int  { return len(s) }
