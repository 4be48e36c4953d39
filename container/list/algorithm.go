package list

import (
	"fmt"

	"github.com/segmentio/linkedlist/compare"
	"github.com/segmentio/linkedlist/container"
	"golang.org/x/exp/constraints"
)

// Reverse reverses the order of the elements of l in place. The elements keep
// their identity, only their links are exchanged.
//
// Complexity: O(n)
func Reverse[T any](l *List[T]) {
	for e := l.head; e != nil; {
		next := e.next
		e.next, e.prev = e.prev, next
		e = next
	}
	l.head, l.tail = l.tail, l.head
}

// MergeSorted returns a new list containing the values of a and b in ascending
// order. Both lists must already be sorted in ascending order, which is not
// verified; the inputs are not modified.
//
// When values of a and b are equal, the value from b is inserted first.
//
// Complexity: O(a.Len() + b.Len())
func MergeSorted[T constraints.Ordered](a, b *List[T]) *List[T] {
	return MergeSortedFunc(a, b, compare.Function[T])
}

// MergeSortedFunc is like MergeSorted but uses cmp to order the values.
func MergeSortedFunc[T any](a, b *List[T], cmp func(T, T) int) *List[T] {
	if cmp == nil {
		panic(fmt.Errorf("cannot merge lists of %T values without a comparison function", *new(T)))
	}

	merged := new(List[T])
	x, y := a.head, b.head

	for x != nil && y != nil {
		if cmp(x.Value, y.Value) < 0 {
			merged.PushBack(x.Value)
			x = x.next
		} else {
			merged.PushBack(y.Value)
			y = y.next
		}
	}

	for ; x != nil; x = x.next {
		merged.PushBack(x.Value)
	}
	for ; y != nil; y = y.next {
		merged.PushBack(y.Value)
	}
	return merged
}

// Pivot reorganizes l in place so that all values strictly lower than value
// come first, followed by the values greater or equal. The relative order of
// the values within each group is preserved, and the elements of the list are
// reused rather than reallocated.
//
// Pivoting an empty list is a no-op.
//
// Complexity: O(n)
func Pivot[T constraints.Ordered](l *List[T], value T) {
	PivotFunc(l, value, compare.Function[T])
}

// PivotFunc is like Pivot but uses cmp to order the values.
func PivotFunc[T any](l *List[T], value T, cmp func(T, T) int) {
	if cmp == nil {
		panic(fmt.Errorf("cannot pivot a list of %T values without a comparison function", value))
	}

	var less, rest List[T]

	for e := l.head; e != nil; {
		next := e.next
		e.prev, e.next = nil, nil
		if cmp(e.Value, value) < 0 {
			less.pushBack(e)
		} else {
			rest.pushBack(e)
		}
		e = next
	}

	// Either partition may be empty, pushBackList handles both cases.
	less.pushBackList(&rest)
	*l = less
}

// Average returns the arithmetic mean of the values of l, or zero if the list is
// empty.
//
// Complexity: O(n)
func Average[T container.Number](l *List[T]) float64 {
	if l.size == 0 {
		return 0
	}
	sum := 0.0
	for e := l.head; e != nil; e = e.next {
		sum += float64(e.Value)
	}
	return sum / float64(l.size)
}
