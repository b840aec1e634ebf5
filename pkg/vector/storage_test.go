package vector_test

import (
	"slices"
	"testing"

	"go.llib.dev/containers/pkg/vector"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

type Document struct {
	Tags []string
}

func (d Document) Clone() Document {
	return Document{Tags: slices.Clone(d.Tags)}
}

func TestStorage(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
	})
	storage := let.Var(s, func(t *testcase.T) *vector.Storage[int] {
		return vector.MakeStorage(values.Get(t)...)
	})

	s.Test("smoke", func(t *testcase.T) {
		var v vector.Storage[int]
		assert.True(t, v.IsEmpty())

		v.Append(1, 2)
		v.Append(3)
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, []int{1, 2, 3}, v.ToSlice())
		assert.Equal(t, 1, *v.Front())
		assert.Equal(t, 3, *v.Back())

		*v.At(1) = 42
		assert.Equal(t, []int{1, 42, 3}, v.ToSlice())

		v.Clear()
		assert.True(t, v.IsEmpty())
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		s.Test("element pointers remain valid while the storage grows", func(t *testcase.T) {
			ptr := storage.Get(t).At(0)
			t.Random.Repeat(16, 64, func() { storage.Get(t).Append(t.Random.Int()) })
			assert.True(t, ptr == storage.Get(t).At(0))
			assert.Equal(t, values.Get(t)[0], *ptr)
		})

		s.Test("the storage owns a copy of the value", func(t *testcase.T) {
			v := t.Random.Int()
			storage.Get(t).Append(v)
			v++
			assert.Equal(t, v-1, *storage.Get(t).Back())
		})
	})

	s.Describe("#Emplace", func(s *testcase.Spec) {
		s.Test("the value is inserted before the position", func(t *testcase.T) {
			v := vector.MakeStorage(1, 2, 3)
			it := v.Begin()
			it.Inc()
			assert.NoError(t, v.Emplace(it, 9))
			assert.Equal(t, []int{1, 9, 2, 3}, v.ToSlice())
		})

		s.Test("emplacing at the end appends", func(t *testcase.T) {
			v := vector.MakeStorage(1, 2)
			assert.NoError(t, v.Emplace(v.End(), 3))
			assert.Equal(t, []int{1, 2, 3}, v.ToSlice())
		})

		s.Test("emplacing at the beginning prepends", func(t *testcase.T) {
			v := vector.MakeStorage(1, 2)
			assert.NoError(t, v.Emplace(v.Begin(), 0))
			assert.Equal(t, []int{0, 1, 2}, v.ToSlice())
		})

		s.Test("an iterator of another storage is rejected", func(t *testcase.T) {
			v := vector.MakeStorage(1, 2)
			oth := vector.MakeStorage(1, 2)
			assert.ErrorIs(t, v.Emplace(oth.Begin(), 0), vector.ErrIteratorMismatch)
			assert.Equal(t, []int{1, 2}, v.ToSlice())
		})

		s.Test("an iterator of a view over the storage is rejected", func(t *testcase.T) {
			v := vector.MakeStorage(1, 2)
			view := vector.NewView[int](v)
			assert.ErrorIs(t, v.Emplace(view.Begin(), 0), vector.ErrIteratorMismatch)
		})

		s.Test("a position moved out of range is rejected", func(t *testcase.T) {
			v := vector.MakeStorage(1, 2)
			assert.ErrorIs(t, v.Emplace(v.End().Plus(1), 0), vector.ErrOutOfBounds)
			assert.ErrorIs(t, v.Emplace(v.Begin().Minus(1), 0), vector.ErrOutOfBounds)
		})
	})

	s.Describe("#Clone", func(s *testcase.Spec) {
		s.Test("the clone holds the same values in the same order", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), storage.Get(t).Clone().ToSlice())
		})

		s.Test("the clone is independent from the original", func(t *testcase.T) {
			clone := storage.Get(t).Clone()
			*clone.Front() = values.Get(t)[0] + 1
			clone.Append(t.Random.Int())
			assert.Equal(t, values.Get(t), storage.Get(t).ToSlice())
		})

		s.Test("elements implementing Cloner are duplicated with their Clone method", func(t *testcase.T) {
			v := vector.MakeStorage(Document{Tags: []string{"foo", "bar"}})
			clone := v.Clone()
			v.Front().Tags[0] = "baz"
			assert.Equal(t, []string{"foo", "bar"}, clone.Front().Tags)
		})
	})

	s.Describe("#Move", func(s *testcase.Spec) {
		s.Test("the elements are transferred and the source is left empty", func(t *testcase.T) {
			ptr := storage.Get(t).At(0)
			moved := storage.Get(t).Move()
			assert.True(t, storage.Get(t).IsEmpty())
			assert.Equal(t, values.Get(t), moved.ToSlice())
			assert.True(t, ptr == moved.At(0))
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		s.Test("the storage becomes empty and reusable", func(t *testcase.T) {
			storage.Get(t).Clear()
			assert.Equal(t, 0, storage.Get(t).Len())
			storage.Get(t).Append(42)
			assert.Equal(t, []int{42}, storage.Get(t).ToSlice())
		})
	})

	s.Describe("#CBegin", func(s *testcase.Spec) {
		s.Test("const iterators of the storage are comparable with each other", func(t *testcase.T) {
			begin, end := storage.Get(t).CBegin(), storage.Get(t).CEnd()
			assert.True(t, begin.Comparable(end))
			assert.Equal(t, len(values.Get(t)), end.Distance(begin))
			assert.Equal(t, values.Get(t)[0], begin.Value())
		})
	})
}
