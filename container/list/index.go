package list

import "github.com/segmentio/linkedlist/container"

// Get returns the value at the given index of the list.
//
// The method returns an error wrapping container.ErrIndexOutOfRange if index is
// negative or not lower than the list length.
//
// Complexity: O(n/2)
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, container.OutOfRange(index, l.size)
	}
	return l.at(index).Value, nil
}

// Set replaces the value at the given index of the list.
//
// The method returns an error wrapping container.ErrIndexOutOfRange if index is
// negative or not lower than the list length.
//
// Complexity: O(n/2)
func (l *List[T]) Set(index int, v T) error {
	if index < 0 || index >= l.size {
		return container.OutOfRange(index, l.size)
	}
	l.at(index).Value = v
	return nil
}

// InsertAt inserts v so it ends up at the given index of the list. Inserting at
// index zero or at the list length is equivalent to calling PushFront or
// PushBack.
//
// The method returns an error wrapping container.ErrIndexOutOfRange if index is
// negative or greater than the list length.
//
// Complexity: O(n/2)
func (l *List[T]) InsertAt(index int, v T) error {
	switch {
	case index < 0 || index > l.size:
		return container.OutOfRange(index, l.size)
	case index == 0:
		l.PushFront(v)
	case index == l.size:
		l.PushBack(v)
	default:
		l.insertBefore(&Element[T]{Value: v}, l.at(index))
	}
	return nil
}

// RemoveAt removes the element at the given index of the list and returns its
// value.
//
// The method returns an error wrapping container.ErrIndexOutOfRange if index is
// negative or not lower than the list length.
//
// Complexity: O(n/2)
func (l *List[T]) RemoveAt(index int) (T, error) {
	switch {
	case index < 0 || index >= l.size:
		var zero T
		return zero, container.OutOfRange(index, l.size)
	case index == 0:
		return l.PopFront()
	case index == l.size-1:
		return l.PopBack()
	}
	e := l.at(index)
	l.remove(e)
	return e.Value, nil
}

// at returns the element at index, which must be in range. Indexes in the first
// half of the list are reached from the front, the others from the back.
func (l *List[T]) at(index int) *Element[T] {
	if 2*index < l.size {
		e := l.head
		for i := 0; i < index; i++ {
			e = e.next
		}
		return e
	}
	e := l.tail
	for i := l.size - 1; i > index; i-- {
		e = e.prev
	}
	return e
}
