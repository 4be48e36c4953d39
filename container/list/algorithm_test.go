package list

import (
	"slices"
	"testing"

	"github.com/segmentio/linkedlist/compare"
	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestReverse(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		list := New[int]()
		Reverse(list)
		assertList(t, list)
	})

	t.Run("Single", func(t *testing.T) {
		list := New(42)
		Reverse(list)
		assertList(t, list, 42)
	})

	t.Run("Values", func(t *testing.T) {
		list := New(1, 2, 3, 4, 5)
		Reverse(list)
		assertList(t, list, 5, 4, 3, 2, 1)
	})

	t.Run("Involution", func(t *testing.T) {
		list := New(1, 2, 3, 4, 5)
		front, back := list.Front(), list.Back()

		Reverse(list)
		check.True(t, list.Front() == back)
		check.True(t, list.Back() == front)

		Reverse(list)
		check.True(t, list.Front() == front)
		check.True(t, list.Back() == back)
		assertList(t, list, 1, 2, 3, 4, 5)
	})

	t.Run("MutateAfterReverse", func(t *testing.T) {
		list := New(1, 2, 3)
		Reverse(list)

		check.True(t, list.InsertAt(1, 10) == nil)
		list.PushBack(0)
		assertList(t, list, 3, 10, 2, 1, 0)
	})
}

func TestMergeSorted(t *testing.T) {
	t.Run("Interleaved", func(t *testing.T) {
		merged := MergeSorted(New(1, 3, 5), New(2, 4, 6))
		assertList(t, merged, 1, 2, 3, 4, 5, 6)
	})

	t.Run("OneEmpty", func(t *testing.T) {
		a := New(1, 2, 3)
		assertList(t, MergeSorted(a, New[int]()), 1, 2, 3)
		assertList(t, MergeSorted(New[int](), a), 1, 2, 3)
		assertList(t, a, 1, 2, 3)
	})

	t.Run("BothEmpty", func(t *testing.T) {
		assertList(t, MergeSorted(New[int](), New[int]()))
	})

	t.Run("InputsUnchanged", func(t *testing.T) {
		a, b := New(1, 4, 9), New(2, 3, 10, 11)
		front := a.Front()

		merged := MergeSorted(a, b)
		assertList(t, merged, 1, 2, 3, 4, 9, 10, 11)
		assertList(t, a, 1, 4, 9)
		assertList(t, b, 2, 3, 10, 11)
		check.True(t, a.Front() == front)
		check.True(t, merged.Front() != front)
	})

	t.Run("TiesTakeSecondFirst", func(t *testing.T) {
		type item struct {
			key  int
			from string
		}
		cmp := func(x, y item) int { return compare.Function(x.key, y.key) }

		a := New(item{1, "a"}, item{2, "a"})
		b := New(item{1, "b"}, item{2, "b"})

		got := MergeSortedFunc(a, b, cmp).Values()
		want := []item{{1, "b"}, {1, "a"}, {2, "b"}, {2, "a"}}
		check.True(t, slices.Equal(got, want))
	})

	t.Run("Descending", func(t *testing.T) {
		cmp := compare.Reverse(compare.Function[string])
		merged := MergeSortedFunc(New("z", "m", "a"), New("y", "b"), cmp)
		check.True(t, slices.Equal(merged.Values(), []string{"z", "y", "m", "b", "a"}))
	})

	t.Run("NilComparison", func(t *testing.T) {
		defer func() { check.True(t, recover() != nil) }()
		MergeSortedFunc(New(1), New(2), nil)
	})
}

func TestPivot(t *testing.T) {
	t.Run("Partition", func(t *testing.T) {
		list := New(5, 1, 8, 2, 9)
		Pivot(list, 4)
		assertList(t, list, 1, 2, 5, 8, 9)
	})

	t.Run("KeepsElements", func(t *testing.T) {
		list := New(5, 1, 8, 2, 9)
		elems := map[*Element[int]]bool{}
		for e := list.Front(); e != nil; e = e.Next() {
			elems[e] = true
		}

		Pivot(list, 4)
		for e := list.Front(); e != nil; e = e.Next() {
			check.True(t, elems[e])
		}
	})

	t.Run("Empty", func(t *testing.T) {
		list := New[int]()
		Pivot(list, 4)
		assertList(t, list)
	})

	t.Run("AllLess", func(t *testing.T) {
		list := New(3, 1, 2)
		Pivot(list, 10)
		assertList(t, list, 3, 1, 2)
	})

	t.Run("AllGreaterOrEqual", func(t *testing.T) {
		list := New(4, 7, 4, 5)
		Pivot(list, 4)
		assertList(t, list, 4, 7, 4, 5)
	})

	t.Run("Stable", func(t *testing.T) {
		list := New(6, 3, 4, 0, 9, 3, 5)
		Pivot(list, 4)
		assertList(t, list, 3, 0, 3, 6, 4, 9, 5)
	})

	t.Run("MutateAfterPivot", func(t *testing.T) {
		list := New(5, 1, 8, 2, 9)
		Pivot(list, 4)

		v, err := list.PopBack()
		check.True(t, err == nil)
		assert.Equal(t, 9, v)

		v, err = list.RemoveAt(1)
		check.True(t, err == nil)
		assert.Equal(t, 2, v)
		assertList(t, list, 1, 5, 8)
	})
}

func TestAverage(t *testing.T) {
	check.Equal(t, 0.0, Average(New[int]()))
	check.Equal(t, 2.0, Average(New(1, 2, 3)))
	check.Equal(t, 2.5, Average(New(1, 2, 3, 4)))
	check.Equal(t, 0.25, Average(New(0.5, -0.5, 1.0, 0.0)))
}
