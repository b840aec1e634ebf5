// Package vectorcontract holds the behavioural contracts of the vector.Vector and vector.ConstVector interfaces.
// Any implementation can be verified with them:
//
//	vectorcontract.Vector[int](func(tb testing.TB) vectorcontract.Subject[int] { ... }).Test(t)
package vectorcontract

import (
	"fmt"
	"reflect"
	"testing"

	"go.llib.dev/containers/pkg/vector"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// Subject is a vector under test, along with the elements it is expected to hold, in order.
type Subject[T any] struct {
	Vector vector.Vector[T]
	Values []T
}

type ConstSubject[T any] struct {
	Vector vector.ConstVector[T]
	Values []T
}

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeElem creates a new element value.
	// By default a random value is made with the testcase random generator.
	MakeElem func(testing.TB) T
}

var _ Option[int] = Config[int]{}

func (c Config[T]) Configure(t *Config[T]) {
	if c.MakeElem != nil {
		t.MakeElem = c.MakeElem
	}
}

func (c Config[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	return testcase.ToT(&tb).Random.Make(*new(T)).(T)
}

// Vector is the contract of the mutable vector.Vector interface.
func Vector[T any](mk contract.Make[Subject[T]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[T]](opts)

	subject := let.Var(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("size reflects the number of elements", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, len(sub.Values), vector.Len(sub.Vector))
		assert.Equal(t, len(sub.Values) == 0, vector.IsEmpty(sub.Vector))
	})

	s.Test("indexing returns the elements in order", func(t *testcase.T) {
		sub := subject.Get(t)
		for i, exp := range sub.Values {
			assert.Equal(t, exp, *vector.At(sub.Vector, i))
			got, ok := vector.Lookup(sub.Vector, i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("front and back are the first and the last element", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Values) == 0 {
			t.Skip("the subject is empty")
		}
		assert.Equal(t, sub.Values[0], *vector.Front(sub.Vector))
		assert.Equal(t, sub.Values[len(sub.Values)-1], *vector.Back(sub.Vector))
	})

	s.Test("out of range access is a precondition failure", func(t *testcase.T) {
		sub := subject.Get(t)
		index := len(sub.Values) + t.Random.IntBetween(0, 42)
		out := assert.Panic(t, func() { vector.At(sub.Vector, index) })
		err, ok := out.(error)
		assert.True(t, ok, "panic value was expected to be an error")
		assert.ErrorIs(t, err, vector.ErrOutOfBounds)

		_, found := vector.Lookup(sub.Vector, index)
		assert.False(t, found)
		_, found = vector.Lookup(sub.Vector, -1)
		assert.False(t, found)
	})

	s.Test("iterating from begin to end visits every element in order", func(t *testcase.T) {
		sub := subject.Get(t)
		var got []T
		for it, end := vector.Begin(sub.Vector), vector.End(sub.Vector); it.NotEqual(end); it.Inc() {
			got = append(got, *it.Value())
		}
		assert.Equal(t, len(sub.Values), len(got))
		for i := range sub.Values {
			assert.Equal(t, sub.Values[i], got[i])
		}
		assert.Equal(t, len(sub.Values), vector.End(sub.Vector).Distance(vector.Begin(sub.Vector)))
	})

	s.Test("range iteration matches indexing", func(t *testcase.T) {
		sub := subject.Get(t)
		for i, ptr := range vector.All(sub.Vector) {
			assert.Equal(t, vector.At(sub.Vector, i), ptr, "the same element storage was expected")
		}
		assert.Equal(t, len(sub.Values), iterkit.Count(vector.Values(sub.Vector)))
	})

	s.Test("writing through an element pointer mutates the element in place", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Values) == 0 {
			t.Skip("the subject is empty")
		}
		index := t.Random.IntN(len(sub.Values))
		exp := c.makeElem(t)
		*vector.At(sub.Vector, index) = exp
		assert.Equal(t, exp, *sub.Vector.Get(index))
	})

	s.Test("stepping over the bounds saturates", func(t *testcase.T) {
		sub := subject.Get(t)
		end := vector.End(sub.Vector)
		t.Random.Repeat(1, 3, func() { end.Inc() })
		assert.Equal(t, len(sub.Values), end.Pos())
		assert.True(t, end.Equal(vector.End(sub.Vector)))

		begin := vector.Begin(sub.Vector)
		t.Random.Repeat(1, 3, func() { begin.Dec() })
		assert.Equal(t, 0, begin.Pos())
	})

	s.Test("iterators of the same vector are comparable", func(t *testcase.T) {
		sub := subject.Get(t)
		begin, end := vector.Begin(sub.Vector), vector.End(sub.Vector)
		assert.True(t, begin.Comparable(end))
		assert.True(t, begin.LessOrEqual(end))
		assert.True(t, end.GreaterOrEqual(begin))
		assert.Equal(t, len(sub.Values) == 0, begin.Equal(end))
	})

	return s.AsSuite(fmt.Sprintf("Vector[%s]", typeName[T]()))
}

// ConstVector is the contract of the read-only vector.ConstVector interface.
func ConstVector[T any](mk contract.Make[ConstSubject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := let.Var(s, func(t *testcase.T) ConstSubject[T] {
		return mk(t)
	})

	s.Test("size reflects the number of elements", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, len(sub.Values), vector.Len(sub.Vector))
		assert.Equal(t, len(sub.Values) == 0, vector.IsEmpty(sub.Vector))
	})

	s.Test("indexing returns the elements in order", func(t *testcase.T) {
		sub := subject.Get(t)
		for i, exp := range sub.Values {
			assert.Equal(t, exp, vector.ConstAt(sub.Vector, i))
		}
		got := vector.ConstToSlice(sub.Vector)
		assert.Equal(t, len(sub.Values), len(got))
		for i := range got {
			assert.Equal(t, sub.Values[i], got[i])
		}
	})

	s.Test("front and back are the first and the last element", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Values) == 0 {
			t.Skip("the subject is empty")
		}
		assert.Equal(t, sub.Values[0], vector.ConstFront(sub.Vector))
		assert.Equal(t, sub.Values[len(sub.Values)-1], vector.ConstBack(sub.Vector))
	})

	s.Test("out of range access is a precondition failure", func(t *testcase.T) {
		sub := subject.Get(t)
		index := len(sub.Values) + t.Random.IntBetween(0, 42)
		out := assert.Panic(t, func() { vector.ConstAt(sub.Vector, index) })
		err, ok := out.(error)
		assert.True(t, ok, "panic value was expected to be an error")
		assert.ErrorIs(t, err, vector.ErrOutOfBounds)
	})

	s.Test("iterating from begin to end visits every element in order", func(t *testcase.T) {
		sub := subject.Get(t)
		var got []T
		for it, end := vector.ConstBegin(sub.Vector), vector.ConstEnd(sub.Vector); it.NotEqual(end); it.Inc() {
			got = append(got, it.Value())
		}
		assert.Equal(t, len(sub.Values), len(got))
		for i := range sub.Values {
			assert.Equal(t, sub.Values[i], got[i])
		}
		assert.Equal(t, len(sub.Values), iterkit.Count(vector.ConstValues(sub.Vector)))
	})

	s.Test("stepping over the bounds saturates", func(t *testcase.T) {
		sub := subject.Get(t)
		end := vector.ConstEnd(sub.Vector)
		t.Random.Repeat(1, 3, func() { end.Inc() })
		assert.Equal(t, len(sub.Values), end.Pos())

		begin := vector.ConstBegin(sub.Vector)
		t.Random.Repeat(1, 3, func() { begin.Dec() })
		assert.Equal(t, 0, begin.Pos())
	})

	return s.AsSuite(fmt.Sprintf("ConstVector[%s]", typeName[T]()))
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
